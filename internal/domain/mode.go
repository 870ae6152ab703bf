package domain

import "strings"

// Mode selects the routing policy a user is travelling under
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeEmergency
	ModeRickshaw
	ModeFestival

	modeCount
)

// ModeCount is the number of defined modes
const ModeCount = int(modeCount)

var modeNames = [modeCount]string{
	ModeNormal:    "normal",
	ModeEmergency: "emergency",
	ModeRickshaw:  "rickshaw",
	ModeFestival:  "festival",
}

// Modes lists every defined mode in declaration order
func Modes() []Mode {
	return []Mode{ModeNormal, ModeEmergency, ModeRickshaw, ModeFestival}
}

// ParseMode maps a mode name to its Mode. Unknown names fall back to ModeNormal.
func ParseMode(s string) Mode {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i)
		}
	}
	return ModeNormal
}

// Valid reports whether m is one of the defined modes
func (m Mode) Valid() bool {
	return m < modeCount
}

func (m Mode) String() string {
	if !m.Valid() {
		return modeNames[ModeNormal]
	}
	return modeNames[m]
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	*m = ParseMode(string(text))
	return nil
}
