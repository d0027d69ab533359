package practice

import (
	"fmt"
	"strings"
)

// represents swim stroke of a practice menu
type Style string

const (
	StyleFree   Style = "Fr"
	StyleBack   Style = "Ba"
	StyleBreast Style = "Br"
	StyleFly    Style = "Fly"
	StyleMedley Style = "IM"
)

// human readable stroke name
func (s Style) Name() string {
	switch s {
	case StyleFree:
		return "Free"
	case StyleBack:
		return "Back"
	case StyleBreast:
		return "Breast"
	case StyleFly:
		return "Fly"
	case StyleMedley:
		return "Medley"
	default:
		return string(s)
	}
}

// ParseStyle accepts either the short code or the stroke name.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fr", "free":
		return StyleFree, nil
	case "ba", "back":
		return StyleBack, nil
	case "br", "breast":
		return StyleBreast, nil
	case "fly":
		return StyleFly, nil
	case "im", "medley":
		return StyleMedley, nil
	default:
		return "", fmt.Errorf("unknown style %q", s)
	}
}

// one recorded repetition time
type TimeEntry struct {
	SetNumber int     `json:"setNumber"`
	RepNumber int     `json:"repNumber"`
	Time      float64 `json:"time"`
}

// one structured practice instruction
type Menu struct {
	Style      Style       `json:"style"`
	Distance   int         `json:"distance"`
	Reps       int         `json:"reps"`
	Sets       int         `json:"sets"`
	CircleTime *int        `json:"circleTime"`
	Times      []TimeEntry `json:"times"`
}

// MaxSetNumber returns the highest set number in entries, at least 1.
func MaxSetNumber(entries []TimeEntry) int {
	highest := 1
	for _, e := range entries {
		if e.SetNumber > highest {
			highest = e.SetNumber
		}
	}
	return highest
}
