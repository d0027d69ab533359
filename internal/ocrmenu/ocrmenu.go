// Package ocrmenu turns raw OCR text of a practice whiteboard into
// structured practice menus. Extraction is best effort: blocks that do not
// resolve to a complete menu are dropped.
package ocrmenu

import (
	"fmt"

	"github.com/ryuuhei0729/swimtime/internal/practice"
)

// extracted practice menus
type Result struct {
	Menus []practice.Menu `json:"menus"`

	// not part of the output contract
	Diagnostics Diagnostics `json:"-"`
}

// counts and notes gathered while parsing
type Diagnostics struct {
	Blocks        int
	DroppedBlocks int
	Warnings      []string
}

func (d *Diagnostics) warnf(blockIndex int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.Warnings = append(d.Warnings, fmt.Sprintf("block %d: %s", blockIndex, msg))
}

// Parse extracts every complete practice menu from text. It never fails.
func Parse(text string) Result {
	res := Result{Menus: []practice.Menu{}}

	blocks := segment(text)
	res.Diagnostics.Blocks = len(blocks)

	for _, b := range blocks {
		menu, ok := parseBlock(b, &res.Diagnostics)
		if !ok {
			res.Diagnostics.DroppedBlocks++
			continue
		}
		res.Menus = append(res.Menus, menu)
	}

	return res
}

func parseBlock(b block, diag *Diagnostics) (practice.Menu, bool) {
	text := b.text()
	h := extractHeader(b)
	times := extractTimes(b, h.distance, diag)

	if !h.complete() {
		diag.warnf(b.index, "dropped: no distance x reps header")
		return practice.Menu{}, false
	}
	if len(times) == 0 {
		diag.warnf(b.index, "dropped: no times")
		return practice.Menu{}, false
	}

	return practice.Menu{
		Style:      extractStyle(text),
		Distance:   h.distance,
		Reps:       h.reps,
		Sets:       practice.MaxSetNumber(times),
		CircleTime: h.circleTime,
		Times:      times,
	}, true
}
