package value

import "fmt"

// Target задаёт область действия скидки.
type Target string

const (
	TargetAll      Target = "all"
	TargetSelected Target = "selected"
)

func (t Target) String() string {
	return string(t)
}

func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetAll, "":
		return TargetAll, nil
	case TargetSelected:
		return TargetSelected, nil
	default:
		return "", fmt.Errorf("unknown discount target %q", s)
	}
}
