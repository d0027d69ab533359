package ocrmenu

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ryuuhei0729/swimtime/internal/practice"
)

func TestParseSingleMenu(t *testing.T) {
	text := "100 x 5 (1'30\")\n31-2 32-1\n"

	res := Parse(text)
	if len(res.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(res.Menus))
	}

	m := res.Menus[0]
	if m.Distance != 100 || m.Reps != 5 {
		t.Errorf("expected 100 x 5, got %d x %d", m.Distance, m.Reps)
	}
	if m.CircleTime == nil || *m.CircleTime != 90 {
		t.Errorf("expected circle time 90, got %v", m.CircleTime)
	}
	if m.Sets != 1 {
		t.Errorf("expected 1 set, got %d", m.Sets)
	}
	if m.Style != practice.StyleFree {
		t.Errorf("expected style Fr, got %s", m.Style)
	}

	want := []practice.TimeEntry{
		{SetNumber: 1, RepNumber: 1, Time: 31.2},
		{SetNumber: 1, RepNumber: 2, Time: 32.1},
	}
	if !reflect.DeepEqual(m.Times, want) {
		t.Errorf("times = %+v, want %+v", m.Times, want)
	}
}

func TestParseLinesBecomeSets(t *testing.T) {
	text := `50x4 Fly (1:00)
1
31-2 32-1 30-9 31-5
2
32-0 31-8 31-1 30-7
`
	res := Parse(text)
	if len(res.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(res.Menus))
	}
	m := res.Menus[0]
	if m.Sets != 2 {
		t.Errorf("expected 2 sets, got %d", m.Sets)
	}
	if m.Style != practice.StyleFly {
		t.Errorf("expected style Fly, got %s", m.Style)
	}
	if m.CircleTime == nil || *m.CircleTime != 60 {
		t.Errorf("expected circle time 60, got %v", m.CircleTime)
	}
	if len(m.Times) != 8 {
		t.Fatalf("expected 8 times, got %d", len(m.Times))
	}
	last := m.Times[7]
	if last.SetNumber != 2 || last.RepNumber != 4 || last.Time != 30.7 {
		t.Errorf("last entry = %+v, want set 2 rep 4 time 30.7", last)
	}
}

func TestParseDropsBlockWithoutTimes(t *testing.T) {
	text := `100 x 5 (1'30")
easy swim
200 x 2
2-05-1 2-04-3
`
	res := Parse(text)
	if len(res.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(res.Menus))
	}
	if res.Menus[0].Distance != 200 {
		t.Errorf("expected the 200 menu to survive, got %d", res.Menus[0].Distance)
	}
	if res.Diagnostics.Blocks != 2 || res.Diagnostics.DroppedBlocks != 1 {
		t.Errorf("diagnostics = %+v, want 2 blocks 1 dropped", res.Diagnostics)
	}
	if res.Menus[0].Times[0].Time != 125.1 {
		t.Errorf("first time = %v, want 125.1", res.Menus[0].Times[0].Time)
	}
}

func TestParseDropsBlockWithoutHeader(t *testing.T) {
	res := Parse("31-2 32-1\n33-0\n")
	if len(res.Menus) != 0 {
		t.Errorf("expected no menus, got %d", len(res.Menus))
	}
	if res.Diagnostics.DroppedBlocks != 1 {
		t.Errorf("expected 1 dropped block, got %d", res.Diagnostics.DroppedBlocks)
	}
}

func TestParseSplitsConcatenatedToken(t *testing.T) {
	res := Parse("50 x 2\n17-125-4\n")
	if len(res.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(res.Menus))
	}
	want := []practice.TimeEntry{
		{SetNumber: 1, RepNumber: 1, Time: 17.1},
		{SetNumber: 1, RepNumber: 2, Time: 25.4},
	}
	if !reflect.DeepEqual(res.Menus[0].Times, want) {
		t.Errorf("times = %+v, want %+v", res.Menus[0].Times, want)
	}
}

func TestSplitCombined(t *testing.T) {
	tests := []struct {
		in    string
		want  []string
		split bool
	}{
		{"17-125-4", []string{"17-1", "25-4"}, true},
		{"17-1234-5", []string{"17-12", "34-5"}, true},
		{"1-05-3", []string{"1-05-3"}, false},
		{"31-2", []string{"31-2"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, split := splitCombined(tt.in)
			if split != tt.split || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCombined(%q) = %v, %v; want %v, %v",
					tt.in, got, split, tt.want, tt.split)
			}
		})
	}
}

func TestParseHorizontalRules(t *testing.T) {
	text := `25x8 Ba
14-0 14-2
-----
Kick
25x8
15-1
=====
`
	res := Parse(text)
	if res.Diagnostics.Blocks != 3 {
		t.Errorf("expected 3 blocks, got %d", res.Diagnostics.Blocks)
	}
	if len(res.Menus) != 2 {
		t.Fatalf("expected 2 menus, got %d", len(res.Menus))
	}
	if res.Menus[0].Style != practice.StyleBack {
		t.Errorf("expected first menu Ba, got %s", res.Menus[0].Style)
	}
	if res.Menus[0].CircleTime != nil {
		t.Errorf("expected no circle time, got %d", *res.Menus[0].CircleTime)
	}
	if res.Menus[1].Times[0].Time != 15.1 {
		t.Errorf("expected 15.1, got %v", res.Menus[1].Times[0].Time)
	}
}

func TestParseOverflowKeepsValue(t *testing.T) {
	res := Parse("50 x 1\n75-3\n")
	if len(res.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(res.Menus))
	}
	if got := res.Menus[0].Times[0].Time; got != 75.3 {
		t.Errorf("time = %v, want 75.3", got)
	}
	found := false
	for _, w := range res.Diagnostics.Warnings {
		if strings.Contains(w, "overflow") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an overflow note, got %v", res.Diagnostics.Warnings)
	}
}

func TestParseSkipsZeroAndInvalidTokens(t *testing.T) {
	res := Parse("100x4\n0-0 31-234 62-4\n")
	if len(res.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(res.Menus))
	}
	times := res.Menus[0].Times
	if len(times) != 1 || times[0].Time != 62.4 || times[0].RepNumber != 1 {
		t.Errorf("times = %+v, want one 62.4 entry at rep 1", times)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	text := "100 x 5 (1'30\")\n31-2 32-1\n----\n50x2 Br\n40-1\n"
	first := Parse(text)
	second := Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing the same text twice gave different results")
	}
}

func TestParseEmpty(t *testing.T) {
	res := Parse("")
	if res.Menus == nil || len(res.Menus) != 0 {
		t.Errorf("expected empty non-nil menus, got %v", res.Menus)
	}
}

func TestExtractStyle(t *testing.T) {
	tests := []struct {
		text string
		want practice.Style
	}{
		{"100x4 free", practice.StyleFree},
		{"100x4 back", practice.StyleBack},
		{"100x4 Br", practice.StyleBreast},
		{"50x8 バタフライ", practice.StyleFly},
		{"200x2 IM", practice.StyleMedley},
		{"200x2 メドレー", practice.StyleMedley},
		{"400x1", practice.StyleFree},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := extractStyle(tt.text); got != tt.want {
				t.Errorf("extractStyle(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseLineWithOnlySkippedTokensKeepsSetNumber(t *testing.T) {
	res := Parse("100x2\n0-0\n31-2\n")
	if len(res.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(res.Menus))
	}
	m := res.Menus[0]
	if m.Times[0].SetNumber != 2 || m.Sets != 2 {
		t.Errorf("expected set number 2 and 2 sets, got %+v sets %d", m.Times[0], m.Sets)
	}
}

func TestParseDropsOversizedInterval(t *testing.T) {
	for _, header := range []string{
		"100 x 5 (99999999999999999'30\")",
		"100 x 5 (1'99999999999999999999\")",
	} {
		t.Run(header, func(t *testing.T) {
			res := Parse(header + "\n31-2\n")
			if len(res.Menus) != 1 {
				t.Fatalf("expected 1 menu, got %d", len(res.Menus))
			}
			if res.Menus[0].CircleTime != nil {
				t.Errorf("expected no circle time, got %d", *res.Menus[0].CircleTime)
			}
		})
	}
}

func TestParseTimeLineContainingX(t *testing.T) {
	res := Parse("50 x 4\n31-2x2 32-1\n")
	if len(res.Menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(res.Menus))
	}
	if res.Diagnostics.Blocks != 1 {
		t.Errorf("expected 1 block, got %d", res.Diagnostics.Blocks)
	}
	want := []practice.TimeEntry{
		{SetNumber: 1, RepNumber: 1, Time: 31.2},
		{SetNumber: 1, RepNumber: 2, Time: 32.1},
	}
	if !reflect.DeepEqual(res.Menus[0].Times, want) {
		t.Errorf("times = %+v, want %+v", res.Menus[0].Times, want)
	}
}

func TestIsHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"100 x 5 (1'30\")", true},
		{"25x4 Fr", true},
		{"Kick 50x4 31-2", true},
		{"31-2x2 32-1", false},
		{"31-2 32-1", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := isHeader(tt.line); got != tt.want {
				t.Errorf("isHeader(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseIgnoresXInsideTimeLines(t *testing.T) {
	res := Parse("31-2x2 32-1\n")
	if len(res.Menus) != 0 {
		t.Errorf("expected no menus from a block without a header, got %+v", res.Menus)
	}
}
