package vtscreen

// Callbacks receives the outward notifications a Screen emits while
// processing commands (spec §6). Every method is optional in spirit:
// NopCallbacks implements all of them as no-ops so a Screen can always
// be constructed with a valid, inert sink.
type Callbacks interface {
	// BufToggled fires when the active buffer switches between main
	// and alternate screen; isMain reports the buffer switched to.
	BufToggled(isMain bool)

	// Bell fires on BEL.
	Bell()

	// WriteToChild delivers bytes a device/status report wants sent
	// back to the child process (e.g. DA/DSR/DECRPM responses).
	WriteToChild(data []byte)

	// UseUTF8 fires when the UTF-8 vs. latin-1 decoding mode changes.
	UseUTF8(utf8 bool)

	// TitleChanged / IconChanged fire on OSC window-title/icon-name sets.
	TitleChanged(title string)
	IconChanged(icon string)

	// SetDynamicColor fires for OSC dynamic-color sets; an empty value
	// means "reset to default".
	SetDynamicColor(code uint32, value string)

	// SetColorTableColor fires for OSC palette-entry sets; an empty
	// value means "reset to default".
	SetColorTableColor(code uint32, value string)

	// RequestCapabilities passes an XTGETTCAP-style query through to
	// the host, unmodified.
	RequestCapabilities(query string)
}

// NopCallbacks is a valid, side-effect-free Callbacks implementation.
type NopCallbacks struct{}

func (NopCallbacks) BufToggled(bool)                  {}
func (NopCallbacks) Bell()                            {}
func (NopCallbacks) WriteToChild([]byte)              {}
func (NopCallbacks) UseUTF8(bool)                      {}
func (NopCallbacks) TitleChanged(string)               {}
func (NopCallbacks) IconChanged(string)                {}
func (NopCallbacks) SetDynamicColor(uint32, string)    {}
func (NopCallbacks) SetColorTableColor(uint32, string) {}
func (NopCallbacks) RequestCapabilities(string)         {}

var _ Callbacks = NopCallbacks{}
