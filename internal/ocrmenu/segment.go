package ocrmenu

import (
	"regexp"
	"strings"
)

var (
	ruleRegex     = regexp.MustCompile(`^[-_=]{3,}$`)
	headerRegex   = regexp.MustCompile(`(?i)(\d+)\s*[x×]\s*(\d+)`)
	rowIndexRegex = regexp.MustCompile(`^\d+$`)
)

// run of OCR lines believed to describe one practice menu
type block struct {
	index int
	lines []string
}

func (b block) text() string {
	return strings.Join(b.lines, "\n")
}

// splitLines trims every line and drops the blank ones.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isRule(line string) bool {
	return ruleRegex.MatchString(line)
}

// isHeader reports whether line carries a distance x reps header ahead of
// any time token, so "31-2x2 32-1" stays a time line.
func isHeader(line string) bool {
	loc := headerRegex.FindStringIndex(line)
	if loc == nil {
		return false
	}
	if tok := timeTokenRegex.FindStringIndex(line); tok != nil && tok[0] < loc[0] {
		return false
	}
	return true
}

func isRowIndex(line string) bool {
	return rowIndexRegex.MatchString(line)
}

// segment cuts the text into blocks at horizontal rules and at every
// header line that follows a non-empty block.
func segment(text string) []block {
	var blocks []block
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		blocks = append(blocks, block{index: len(blocks) + 1, lines: current})
		current = nil
	}

	for _, line := range splitLines(text) {
		if isRule(line) {
			flush()
			continue
		}
		if isHeader(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return blocks
}
