package model

// WindowTarget is a top-level window that passed the locator's filters.
// It is produced fresh for every dispatch and never stored.
type WindowTarget struct {
	Handle  uintptr `yaml:"handle"  json:"handle"`
	Title   string  `yaml:"title"   json:"title"`
	Process string  `yaml:"process" json:"process"`
	PID     int     `yaml:"pid"     json:"pid"`
}

// MonitorGeometry is a monitor rectangle in virtual-desktop pixels.
// Right and Bottom are exclusive.
type MonitorGeometry struct {
	Left   int `yaml:"left"   json:"left"`
	Top    int `yaml:"top"    json:"top"`
	Right  int `yaml:"right"  json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
}

// Width returns the monitor width in pixels.
func (m MonitorGeometry) Width() int { return m.Right - m.Left }

// Height returns the monitor height in pixels.
func (m MonitorGeometry) Height() int { return m.Bottom - m.Top }
