package ocrmenu

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ryuuhei0729/swimtime/internal/practice"
	"github.com/ryuuhei0729/swimtime/internal/timetoken"
)

// (1'30"), (1'30), (1:30), (1：30)
var circleRegex = regexp.MustCompile(`\((\d+)\s*['’:：]\s*(\d{1,2})\s*["”]?\)`)

// distance, reps and interval found in a block
type header struct {
	distance   int
	reps       int
	circleTime *int
}

func (h header) complete() bool {
	return h.distance > 0 && h.reps > 0
}

// extractHeader takes distance and reps from the first header line of the
// block and the interval from anywhere in it.
func extractHeader(b block) header {
	var h header

	for _, line := range b.lines {
		if !isHeader(line) {
			continue
		}
		if m := headerRegex.FindStringSubmatch(line); m != nil {
			h.distance, _ = strconv.Atoi(m[1])
			h.reps, _ = strconv.Atoi(m[2])
			break
		}
	}

	text := b.text()

	if m := circleRegex.FindStringSubmatch(text); m != nil {
		minutes, errM := strconv.Atoi(m[1])
		seconds, errS := strconv.Atoi(m[2])
		if errM == nil && errS == nil && minutes <= timetoken.MaxMinutes {
			total := minutes*60 + seconds
			h.circleTime = &total
		}
	}

	return h
}

var styleKeywords = []struct {
	style    practice.Style
	keywords []string
}{
	{practice.StyleFree, []string{"FR", "FREE", "フリー", "自由形"}},
	{practice.StyleBack, []string{"BA", "BACK", "バック", "背泳ぎ"}},
	{practice.StyleBreast, []string{"BR", "BREAST", "ブレスト", "平泳ぎ"}},
	{practice.StyleFly, []string{"FLY", "BUTTERFLY", "バタフライ"}},
	{practice.StyleMedley, []string{"IM", "MEDLEY", "メドレー", "個人メドレー"}},
}

// extractStyle returns the first style whose keyword occurs in text,
// freestyle when none does.
func extractStyle(text string) practice.Style {
	upper := strings.ToUpper(text)
	for _, sk := range styleKeywords {
		for _, kw := range sk.keywords {
			if strings.Contains(upper, kw) {
				return sk.style
			}
		}
	}
	return practice.StyleFree
}
