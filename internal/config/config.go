// Package config builds the process-wide configuration from defaults, an
// optional YAML or TOML file and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG config home.
const AppName = "pcremote"

// SearchNames are tried in order under the XDG config directories.
var SearchNames = []string{
	AppName + "/config.yaml",
	AppName + "/config.yml",
	AppName + "/config.toml",
}

// Config is the immutable runtime configuration. Build it once at startup and
// pass it by pointer; nothing mutates it afterwards.
type Config struct {
	Serial  SerialConfig  `yaml:"serial"  toml:"serial"  json:"serial"`
	Targets TargetConfig  `yaml:"targets" toml:"targets" json:"targets"`
	Input   InputConfig   `yaml:"input"   toml:"input"   json:"input"`
	Restore []LaunchSpec  `yaml:"restore" toml:"restore" json:"restore"`
	Logging LoggingConfig `yaml:"logging" toml:"logging" json:"logging"`

	// Source is where the configuration came from: "defaults" or a file path.
	Source string `yaml:"-" toml:"-" json:"source"`
}

// SerialConfig describes the link to the controller board.
type SerialConfig struct {
	Port          string `yaml:"port"             toml:"port"             json:"port"`
	Baud          int    `yaml:"baud"             toml:"baud"             json:"baud"`
	SettleMs      int    `yaml:"settle_ms"        toml:"settle_ms"        json:"settle_ms"`
	PollMs        int    `yaml:"poll_ms"          toml:"poll_ms"          json:"poll_ms"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"  toml:"read_timeout_ms"  json:"read_timeout_ms"`
}

// TargetConfig controls window targeting.
type TargetConfig struct {
	// Processes is the executable allow-list, matched case-insensitively.
	Processes    []string `yaml:"processes"     toml:"processes"     json:"processes"`
	MonitorIndex int      `yaml:"monitor_index" toml:"monitor_index" json:"monitor_index"`
}

// InputConfig holds synthetic input timing.
type InputConfig struct {
	FocusSettleMs      int `yaml:"focus_settle_ms"      toml:"focus_settle_ms"      json:"focus_settle_ms"`
	KeyDelayMs         int `yaml:"key_delay_ms"         toml:"key_delay_ms"         json:"key_delay_ms"`
	CompositeSettleMs  int `yaml:"composite_settle_ms"  toml:"composite_settle_ms"  json:"composite_settle_ms"`
	VolumeStepDelayMs  int `yaml:"volume_step_delay_ms" toml:"volume_step_delay_ms" json:"volume_step_delay_ms"`
	VolumeFloorPresses int `yaml:"volume_floor_presses" toml:"volume_floor_presses" json:"volume_floor_presses"`
}

// LaunchSpec is one browser the restore action tries to start.
type LaunchSpec struct {
	Name string   `yaml:"name" toml:"name" json:"name"`
	Exe  string   `yaml:"exe"  toml:"exe"  json:"exe"`
	Args []string `yaml:"args" toml:"args" json:"args"`
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string `yaml:"level"  toml:"level"  json:"level"`
	Format string `yaml:"format" toml:"format" json:"format"`
}

// Default returns the baseline configuration used when no overrides are supplied.
func Default() Config {
	return Config{
		Serial: SerialConfig{
			Port:          "COM3",
			Baud:          115200,
			SettleMs:      2000,
			PollMs:        100,
			ReadTimeoutMs: 100,
		},
		Targets: TargetConfig{
			Processes:    []string{"chrome.exe", "firefox.exe", "msedge.exe", "brave.exe"},
			MonitorIndex: 1,
		},
		Input: InputConfig{
			FocusSettleMs:      50,
			KeyDelayMs:         10,
			CompositeSettleMs:  300,
			VolumeStepDelayMs:  20,
			VolumeFloorPresses: 50,
		},
		Restore: []LaunchSpec{
			{Name: "Chrome", Exe: "chrome.exe", Args: []string{"--restore-last-session"}},
			{Name: "Firefox", Exe: "firefox.exe", Args: []string{"-restore"}},
			{Name: "Edge", Exe: "msedge.exe", Args: []string{"--restore-last-session"}},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Source: "defaults",
	}
}

// Load returns the defaults overlaid with the file at path. An empty path
// searches the XDG config directories; finding nothing there is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, ok := Discover()
		if !ok {
			return cfg, cfg.Validate()
		}
		path = found
	}

	// #nosec G304 - reading a user-supplied config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover returns the first config file found under the XDG config dirs.
func Discover() (string, bool) {
	for _, name := range SearchNames {
		if p, err := xdg.SearchConfigFile(name); err == nil {
			return p, true
		}
	}
	return "", false
}

// DefaultPath is where a new config file would be written.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(SearchNames[0])
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config extension %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Marshal renders cfg in the format implied by the extension of path.
func Marshal(path string, cfg Config) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Marshal(cfg)
	default:
		return yaml.Marshal(cfg)
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Serial.Port) == "" {
		errs = append(errs, errors.New("serial.port must not be empty"))
	}
	if c.Serial.Baud <= 0 {
		errs = append(errs, fmt.Errorf("serial.baud must be positive, got %d", c.Serial.Baud))
	}
	if c.Serial.SettleMs < 0 || c.Serial.PollMs < 0 || c.Serial.ReadTimeoutMs < 0 {
		errs = append(errs, errors.New("serial delays must not be negative"))
	}
	if len(c.Targets.Processes) == 0 {
		errs = append(errs, errors.New("targets.processes must list at least one executable"))
	}
	for i, p := range c.Targets.Processes {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("targets.processes[%d] is empty", i))
		}
	}
	if c.Targets.MonitorIndex < 0 {
		errs = append(errs, fmt.Errorf("targets.monitor_index must not be negative, got %d", c.Targets.MonitorIndex))
	}
	in := c.Input
	if in.FocusSettleMs < 0 || in.KeyDelayMs < 0 || in.CompositeSettleMs < 0 || in.VolumeStepDelayMs < 0 {
		errs = append(errs, errors.New("input delays must not be negative"))
	}
	if in.VolumeFloorPresses < 0 {
		errs = append(errs, fmt.Errorf("input.volume_floor_presses must not be negative, got %d", in.VolumeFloorPresses))
	}
	for i, r := range c.Restore {
		if strings.TrimSpace(r.Exe) == "" {
			errs = append(errs, fmt.Errorf("restore[%d].exe must not be empty", i))
		}
	}
	if _, err := NormalizeLogLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := NormalizeLogFormat(c.Logging.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NormalizeLogLevel lower-cases level and checks it is supported.
func NormalizeLogLevel(level string) (string, error) {
	l := strings.ToLower(strings.TrimSpace(level))
	switch l {
	case "":
		return "info", nil
	case "debug", "info", "warn", "error":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported log level %q", level)
	}
}

// NormalizeLogFormat lower-cases format and checks it is supported.
func NormalizeLogFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "":
		return "text", nil
	case "text", "logfmt", "json":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported log format %q", format)
	}
}

// ms converts a millisecond setting to a duration.
func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func (s SerialConfig) Settle() time.Duration      { return ms(s.SettleMs) }
func (s SerialConfig) Poll() time.Duration        { return ms(s.PollMs) }
func (s SerialConfig) ReadTimeout() time.Duration { return ms(s.ReadTimeoutMs) }

func (in InputConfig) FocusSettle() time.Duration     { return ms(in.FocusSettleMs) }
func (in InputConfig) KeyDelay() time.Duration        { return ms(in.KeyDelayMs) }
func (in InputConfig) CompositeSettle() time.Duration { return ms(in.CompositeSettleMs) }
func (in InputConfig) VolumeStepDelay() time.Duration { return ms(in.VolumeStepDelayMs) }
