package house

import "fmt"

// Which side of a cell something is on, or which way an object faces.
type Dir int

const (
	N Dir = iota
	W
	E
	S

	NumDirs
)

func (d Dir) String() string {
	switch d {
	case N:
		return "N"
	case W:
		return "W"
	case E:
		return "E"
	case S:
		return "S"
	}
	return fmt.Sprintf("invalid dir (%d)", int(d))
}

func ParseDir(s string) (Dir, bool) {
	for d := N; d < NumDirs; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

func (d *Dir) UnmarshalText(text []byte) error {
	parsed, ok := ParseDir(string(text))
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = parsed
	return nil
}

func (d Dir) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
