package binding

// SingleKeys holds every printable character reachable without a prefix on
// a US keyboard, shifted variants included.
const SingleKeys = "~!@#$%^&*()_+" +
	"`1234567890-=" +
	"qwertyuiop[]\\" +
	"QWERTYUIOP{}|" +
	"asdfghjkl;'" +
	"ASDFGHJKL:\"" +
	"zxcvbnm,./" +
	"ZXCVBNM<>?"

// SpecialKeys holds the named tmux keys that DisableAllKeys covers.
var SpecialKeys = []string{
	"BSpace", "BTab", "DC", "Down", "End", "Enter", "Escape",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10",
	"F11", "F12", "F13", "F14", "F15", "F16", "F17", "F18", "F19", "F20",
	"Home", "IC", "Left", "PageDown", "PageUp", "Right", "Space", "Tab", "Up",
	"KP*", "KP+", "KP-", "KP.", "KP/",
	"KP0", "KP1", "KP2", "KP3", "KP4", "KP5", "KP6", "KP7", "KP8", "KP9",
	"KPEnter",
}
