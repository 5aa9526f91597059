package codec

import "fmt"

// Mode selects which surface the app opens into.
type Mode uint8

const (
	ModeEditor Mode = iota
	ModeJournal
	ModeTypewriter
)

func (m Mode) String() string {
	switch m {
	case ModeJournal:
		return "journal"
	case ModeTypewriter:
		return "typewriter"
	default:
		return "editor"
	}
}

// ParseMode maps a mode name back to its value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "editor":
		return ModeEditor, nil
	case "journal":
		return ModeJournal, nil
	case "typewriter":
		return ModeTypewriter, nil
	}
	return 0, fmt.Errorf("codec: unknown mode %q", s)
}

// Settings is the persisted user configuration. It is written on every
// change as a single three-byte record.
type Settings struct {
	DefaultMode     Mode
	Autosave        bool
	ShowLineNumbers bool
}

// DefaultSettings are the out-of-box preferences: editor mode, autosave
// on, line numbers off.
func DefaultSettings() Settings {
	return Settings{DefaultMode: ModeEditor, Autosave: true}
}

// EncodeSettings lays out the settings record: exactly three bytes, one
// each for default mode, autosave, and line numbers.
func EncodeSettings(s Settings) []byte {
	return []byte{byte(s.DefaultMode), boolByte(s.Autosave), boolByte(s.ShowLineNumbers)}
}

// DecodeSettings reads the settings record back. Anything other than
// exactly three bytes, each within its enumerated range, is malformed.
func DecodeSettings(data []byte) (Settings, error) {
	if len(data) != 3 {
		return Settings{}, fmt.Errorf("codec: settings record of %d bytes: %w", len(data), ErrMalformedRecord)
	}
	if data[0] > byte(ModeTypewriter) {
		return Settings{}, fmt.Errorf("codec: settings mode byte %d: %w", data[0], ErrMalformedRecord)
	}
	if data[1] > 1 {
		return Settings{}, fmt.Errorf("codec: settings autosave byte %d: %w", data[1], ErrMalformedRecord)
	}
	if data[2] > 1 {
		return Settings{}, fmt.Errorf("codec: settings line numbers byte %d: %w", data[2], ErrMalformedRecord)
	}
	return Settings{
		DefaultMode:     Mode(data[0]),
		Autosave:        data[1] == 1,
		ShowLineNumbers: data[2] == 1,
	}, nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
