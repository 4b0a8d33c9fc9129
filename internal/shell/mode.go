package shell

import "fmt"

// Mode selects which list the ambiguous commands act on.
type Mode int

const (
	ReviewMode Mode = iota
	RecommendationMode
)

func (m Mode) String() string {
	switch m {
	case ReviewMode:
		return "review"
	case RecommendationMode:
		return "recommendation"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
