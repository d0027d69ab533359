package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ryuuhei0729/swimtime/internal/practice"
	"github.com/ryuuhei0729/swimtime/internal/quicktime"
	"github.com/spf13/cobra"
)

var gridShapeRegex = regexp.MustCompile(`^(\d+)\s*[xX×]\s*(\d+)$`)

// one parsed input line
type quickEntry struct {
	Input  string            `json:"input"`
	OK     bool              `json:"ok"`
	Result *quicktime.Result `json:"result,omitempty"`
}

func newQuickCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick [token...]",
		Short: "Expand quick time tokens",
		Long: `Expand abbreviated lap times, carrying the tens digit and minutes of
the previous entry into the next one.

Tokens are read from the arguments, or one per line from stdin when no
arguments are given. A blank stdin line starts a new session.

Examples:
  swimtime quick 31-2 2-3 8-4 46-1
  swimtime quick 1-05-3 8-3 12-2 2-05-1
  swimtime quick --grid 2x4 31-2 2-3 4-0 5-1 30-5 1-1 2-8 3-0
  printf '31-2\n2-3\n' | swimtime quick --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuick(cmd, args)
		},
	}

	cmd.Flags().String("grid", "", "Fill a SETSxREPS grid (e.g., 2x4) and print its entries")
	cmd.Flags().Bool("json", false, "Print JSON instead of text")
	cmd.Flags().Bool("precise", false, "Show hundredths in text output")

	return cmd
}

func (a *app) runQuick(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		inputs = lines
	}

	shape, _ := cmd.Flags().GetString("grid")
	if shape != "" {
		sets, reps, err := parseGridShape(shape)
		if err != nil {
			return err
		}
		return a.runQuickGrid(cmd, inputs, sets, reps)
	}

	session := quicktime.NewSession()
	var entries []quickEntry

	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			if a.settings.ResetOnBlank {
				a.logger.Debugw("Blank line, resetting context")
				session.Reset()
			}
			continue
		}

		res, ok := session.Enter(in)
		if !ok {
			a.logger.Warnw("Not a quick time token", "input", in)
			entries = append(entries, quickEntry{Input: in})
			continue
		}
		a.logger.Debugw("Parsed quick time",
			"input", in,
			"time", res.Time,
			"minutes", res.Context.Minutes,
			"tens_digit", res.Context.TensDigit,
		)
		entries = append(entries, quickEntry{Input: in, OK: true, Result: &res})
	}

	out := cmd.OutOrStdout()
	if a.outputFormat(cmd) == "json" {
		if entries == nil {
			entries = []quickEntry{}
		}
		return writeJSON(out, entries)
	}

	precise := a.precise(cmd)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		if !e.OK {
			rows = append(rows, []string{e.Input, "invalid"})
			continue
		}
		rows = append(rows, []string{
			e.Input,
			formatTime(e.Result.Time, precise),
			fmt.Sprintf("m=%d t=%d", e.Result.Context.Minutes, e.Result.Context.TensDigit),
		})
	}
	return writeTable(out, rows)
}

func (a *app) runQuickGrid(cmd *cobra.Command, inputs []string, sets, reps int) error {
	grid, err := quicktime.NewGrid(sets, reps)
	if err != nil {
		return err
	}

	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}
		set, rep, ok := grid.Next()
		if !ok {
			a.logger.Warnw("Grid is full, ignoring remaining input", "input", in)
			break
		}
		if _, err := grid.Set(set, rep, in); err != nil {
			a.logger.Warnw("Skipping input", "input", in, "error", err)
		}
	}

	entries := grid.Entries()
	a.logger.Infow("Filled grid",
		"sets", grid.Sets(),
		"reps", grid.Reps(),
		"entries", len(entries),
	)

	out := cmd.OutOrStdout()
	if a.outputFormat(cmd) == "json" {
		if entries == nil {
			entries = []practice.TimeEntry{}
		}
		return writeJSON(out, entries)
	}

	precise := a.precise(cmd)
	rows := make([][]string, 0, grid.Sets())
	for s := 1; s <= grid.Sets(); s++ {
		row := []string{fmt.Sprintf("set %d", s)}
		for r := 1; r <= grid.Reps(); r++ {
			if t, ok := grid.Time(s, r); ok {
				row = append(row, formatTime(t, precise))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	return writeTable(out, rows)
}

func parseGridShape(shape string) (int, int, error) {
	m := gridShapeRegex.FindStringSubmatch(strings.TrimSpace(shape))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid grid %q: expected SETSxREPS (e.g., 2x4)", shape)
	}
	sets, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid sets %q: %w", m[1], err)
	}
	reps, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid reps %q: %w", m[2], err)
	}
	return sets, reps, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
