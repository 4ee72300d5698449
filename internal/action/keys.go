package action

import "github.com/mj1618/pcremote/internal/platform"

const (
	keyVolumeUp       = platform.KeyVolumeUp
	keyVolumeDown     = platform.KeyVolumeDown
	keyVolumeMute     = platform.KeyVolumeMute
	keyMediaPlayPause = platform.KeyMediaPlayPause
	keyMediaNext      = platform.KeyMediaNext
	keyMediaPrev      = platform.KeyMediaPrev

	showMaximize = platform.ShowMaximize
	showMinimize = platform.ShowMinimize
)

// shortcutSpec is a command that focuses the target and taps one combo.
type shortcutSpec struct {
	name string
	desc string
	mods []platform.Key
	key  platform.Key
}

// Seek distances are whatever the page binds these keys to.
var playbackShortcuts = []shortcutSpec{
	{"VIDEO_PLAY_PAUSE", "Toggle playback (Space)", nil, platform.KeySpace},
	{"VIDEO_RESTART", "Jump to the start of the video (Home)", nil, platform.KeyHome},
	{"VIDEO_FORWARD", "Seek forward (Right)", nil, platform.KeyRight},
	{"VIDEO_BACKWARD", "Seek backward (Left)", nil, platform.KeyLeft},
	{"VIDEO_FULLSCREEN", "Toggle player fullscreen (F)", nil, platform.KeyF},
	{"VIDEO_EXIT_FULLSCREEN", "Leave fullscreen (Escape)", nil, platform.KeyEscape},
	{"VIDEO_NEXT", "Next video (Shift+N)", []platform.Key{platform.KeyShift}, platform.KeyN},
	{"VIDEO_CAPTIONS", "Toggle captions (C)", nil, platform.KeyC},
}

var navigationShortcuts = []shortcutSpec{
	{"BROWSER_BACK", "Navigate back (Alt+Left)", []platform.Key{platform.KeyAlt}, platform.KeyLeft},
	{"BROWSER_FORWARD", "Navigate forward (Alt+Right)", []platform.Key{platform.KeyAlt}, platform.KeyRight},
	{"BROWSER_REFRESH", "Reload the page (F5)", nil, platform.KeyF5},
	{"BROWSER_HOME", "Open the home page (Alt+Home)", []platform.Key{platform.KeyAlt}, platform.KeyHome},
	{"BROWSER_NEW_TAB", "Open a new tab (Ctrl+T)", []platform.Key{platform.KeyControl}, platform.KeyT},
	{"BROWSER_CLOSE_TAB", "Close the current tab (Ctrl+W)", []platform.Key{platform.KeyControl}, platform.KeyW},
	{"BROWSER_NEXT_TAB", "Switch to the next tab (Ctrl+Tab)", []platform.Key{platform.KeyControl}, platform.KeyTab},
	{"BROWSER_PREV_TAB", "Switch to the previous tab (Ctrl+Shift+Tab)", []platform.Key{platform.KeyControl, platform.KeyShift}, platform.KeyTab},
	{"BROWSER_FULLSCREEN", "Toggle browser fullscreen (F11)", nil, platform.KeyF11},
}
