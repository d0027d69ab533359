package quicktime

import (
	"errors"
	"fmt"

	"github.com/ryuuhei0729/swimtime/internal/practice"
)

var (
	ErrOutOfRange   = errors.New("cell out of range")
	ErrNotQuickTime = errors.New("not a quick time token")
	ErrInvalidShape = errors.New("grid needs at least one set and one rep")
)

// Grid is a sets x reps table of lap times filled through one Session.
type Grid struct {
	sets    int
	reps    int
	cells   []float64
	filled  []bool
	session *Session
}

func NewGrid(sets, reps int) (*Grid, error) {
	if sets < 1 || reps < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, sets, reps)
	}
	return &Grid{
		sets:    sets,
		reps:    reps,
		cells:   make([]float64, sets*reps),
		filled:  make([]bool, sets*reps),
		session: NewSession(),
	}, nil
}

func (g *Grid) Sets() int { return g.sets }
func (g *Grid) Reps() int { return g.reps }

// Set parses input into the cell at set/rep (both 1-based). Unparsable
// input leaves the cell and the carried context untouched.
func (g *Grid) Set(set, rep int, input string) (Result, error) {
	idx, err := g.index(set, rep)
	if err != nil {
		return Result{}, err
	}
	res, ok := g.session.Enter(input)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrNotQuickTime, input)
	}
	g.cells[idx] = res.Time
	g.filled[idx] = true
	return res, nil
}

// Clear empties a single cell without touching the context.
func (g *Grid) Clear(set, rep int) error {
	idx, err := g.index(set, rep)
	if err != nil {
		return err
	}
	g.cells[idx] = 0
	g.filled[idx] = false
	return nil
}

// Time returns the stored time and whether the cell is filled.
func (g *Grid) Time(set, rep int) (float64, bool) {
	idx, err := g.index(set, rep)
	if err != nil {
		return 0, false
	}
	return g.cells[idx], g.filled[idx]
}

// Next returns the first empty cell in row-major order.
func (g *Grid) Next() (set, rep int, ok bool) {
	for i, f := range g.filled {
		if !f {
			return i/g.reps + 1, i%g.reps + 1, true
		}
	}
	return 0, 0, false
}

func (g *Grid) Context() Context {
	return g.session.Context()
}

// Reset clears every cell and the carried context.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = 0
		g.filled[i] = false
	}
	g.session.Reset()
}

// Entries returns the filled cells ordered by set then rep.
func (g *Grid) Entries() []practice.TimeEntry {
	var entries []practice.TimeEntry
	for i, f := range g.filled {
		if !f {
			continue
		}
		entries = append(entries, practice.TimeEntry{
			SetNumber: i/g.reps + 1,
			RepNumber: i%g.reps + 1,
			Time:      g.cells[i],
		})
	}
	return entries
}

func (g *Grid) index(set, rep int) (int, error) {
	if set < 1 || set > g.sets || rep < 1 || rep > g.reps {
		return 0, fmt.Errorf(
			"%w: set %d rep %d (grid is %dx%d)",
			ErrOutOfRange, set, rep, g.sets, g.reps,
		)
	}
	return (set-1)*g.reps + (rep - 1), nil
}
