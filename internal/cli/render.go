package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ryuuhei0729/swimtime/internal/practice"
	"github.com/ryuuhei0729/swimtime/internal/timetoken"
)

// writeTable pads every column to its widest cell. Widths are display
// widths so full-width input like "31：2" stays aligned.
func writeTable(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func formatTime(t float64, precise bool) string {
	if precise {
		return timetoken.Precise(t)
	}
	return timetoken.Display(t)
}

func formatCircle(seconds *int) string {
	if seconds == nil {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", *seconds/60, *seconds%60)
}

// writeMenus prints every menu followed by its times grouped per set.
func writeMenus(w io.Writer, menus []practice.Menu, precise bool) error {
	if len(menus) == 0 {
		_, err := fmt.Fprintln(w, "No practice menus found")
		return err
	}

	for i, m := range menus {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		header := [][]string{
			{"menu", fmt.Sprintf("%d", i+1)},
			{"style", fmt.Sprintf("%s (%s)", m.Style.Name(), m.Style)},
			{"distance", fmt.Sprintf("%dm x %d", m.Distance, m.Reps)},
			{"sets", fmt.Sprintf("%d", m.Sets)},
			{"circle", formatCircle(m.CircleTime)},
		}
		if err := writeTable(w, header); err != nil {
			return err
		}

		rows := [][]string{}
		var row []string
		current := 0
		for _, e := range m.Times {
			if e.SetNumber != current {
				if row != nil {
					rows = append(rows, row)
				}
				current = e.SetNumber
				row = []string{fmt.Sprintf("set %d", e.SetNumber)}
			}
			row = append(row, formatTime(e.Time, precise))
		}
		if row != nil {
			rows = append(rows, row)
		}
		if err := writeTable(w, rows); err != nil {
			return err
		}
	}
	return nil
}
