package mines

import "fmt"

// Difficulty selects one of three fixed board presets. Custom dimensions
// are not supported.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "expert":
		return Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Params returns the preset dimensions and mine count.
func (d Difficulty) Params() (rows, cols, mineCount int) {
	switch d {
	case Intermediate:
		return 16, 16, 40
	case Expert:
		return 16, 30, 99
	default:
		return 9, 9, 10
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) (err error) {
	*d, err = ParseDifficulty(string(text))
	return
}
