package ocrmenu

import (
	"regexp"
	"strings"

	"github.com/ryuuhei0729/swimtime/internal/practice"
	"github.com/ryuuhei0729/swimtime/internal/timetoken"
)

var (
	timeTokenRegex = regexp.MustCompile(`\d+-\d+(?:-\d+)?`)
	combinedRegex  = regexp.MustCompile(`^(\d+)-(\d{3,})-(\d+)$`)
)

// split points for "A-BBB-C" tokens where two times ran together
func splitCombined(token string) ([]string, bool) {
	m := combinedRegex.FindStringSubmatch(token)
	if m == nil {
		return []string{token}, false
	}
	first, middle, last := m[1], m[2], m[3]

	// the trailing two digits are the seconds of the second time
	cut := len(middle) - 2
	return []string{
		first + "-" + middle[:cut],
		middle[cut:] + "-" + last,
	}, true
}

// overflow limits per distance for bare seconds tokens
var overflowLimits = map[int]int{
	50:  60 * 100,
	100: 120 * 100,
}

// parseToken parses one OCR time token without carry-over context.
func parseToken(token string, distance int, diag *Diagnostics, blockIndex int) (float64, bool) {
	tok, err := timetoken.Tokenize(token)
	if err != nil {
		diag.warnf(blockIndex, "skipped token %q: %v", token, err)
		return 0, false
	}

	switch t := tok.(type) {
	case timetoken.ThreeField:
		return timetoken.Seconds(t.Minutes, t.Seconds, t.Hundredths), true
	case timetoken.TwoField:
		total := t.Seconds*100 + t.Hundredths
		if limit, ok := overflowLimits[distance]; ok && total >= limit {
			// re-expressed through minutes; the value does not change
			diag.warnf(blockIndex, "token %q is %dm overflow (>= %ds)", token, distance, limit/100)
			return timetoken.Seconds(total/6000, (total%6000)/100, total%100), true
		}
		return timetoken.Seconds(0, t.Seconds, t.Hundredths), true
	default:
		return 0, false
	}
}

// extractTimes numbers every line with time tokens as the next practice set.
func extractTimes(b block, distance int, diag *Diagnostics) []practice.TimeEntry {
	var times []practice.TimeEntry
	practiceSet := 1

	for _, line := range b.lines {
		if isRowIndex(line) || isHeader(line) {
			continue
		}

		matches := timeTokenRegex.FindAllString(line, -1)
		if len(matches) == 0 {
			continue
		}

		rep := 1
		for _, match := range matches {
			parts, split := splitCombined(match)
			if split {
				diag.warnf(b.index, "split %q into %s", match, strings.Join(parts, ", "))
			}
			for _, part := range parts {
				value, ok := parseToken(part, distance, diag, b.index)
				if !ok || value <= 0 {
					continue
				}
				times = append(times, practice.TimeEntry{
					SetNumber: practiceSet,
					RepNumber: rep,
					Time:      value,
				})
				rep++
			}
		}
		practiceSet++
	}

	return times
}
