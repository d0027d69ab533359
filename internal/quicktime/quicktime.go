package quicktime

import (
	"github.com/ryuuhei0729/swimtime/internal/timetoken"
)

// carry-over state from the last resolved time
type Context struct {
	Minutes   int `json:"minutes"`
	TensDigit int `json:"tensDigit"`
}

// out of range values fall back to the default
func (c Context) normalized() Context {
	if c.Minutes < 0 || c.Minutes > timetoken.MaxMinutes {
		c.Minutes = 0
	}
	if c.TensDigit < 0 || c.TensDigit > 9 {
		c.TensDigit = 0
	}
	return c
}

// context used when no time has been entered yet
var DefaultContext = Context{}

// parsed quick time
type Result struct {
	Time         float64 `json:"time"`
	DisplayValue string  `json:"displayValue"`
	Context      Context `json:"context"`
}

// Parse resolves an abbreviated time token against the previous context.
// It reports false when input is not a quick time token; the caller should
// then keep its previous value and context.
//
//	"31-2"   -> 31.20, tens digit 3 remembered
//	"2-3"    -> 32.30 with tens digit 3
//	"46-1"   -> 46.10, tens digit becomes 4
//	"1-05-3" -> 65.30, minutes 1 tens digit 0
//	"8-3"    -> 68.30 with minutes 1 tens digit 0
func Parse(input string, prev Context) (Result, bool) {
	tok, err := timetoken.Tokenize(input)
	if err != nil {
		return Result{}, false
	}

	prev = prev.normalized()
	ctx := prev
	var seconds, hundredths int

	switch t := tok.(type) {
	case timetoken.ThreeField:
		ctx = Context{Minutes: t.Minutes, TensDigit: t.Seconds / 10}
		seconds = t.Seconds
		hundredths = t.Hundredths
	case timetoken.TwoField:
		if t.SecondsDigits == 1 {
			seconds = prev.TensDigit*10 + t.Seconds
		} else {
			seconds = t.Seconds
			ctx.TensDigit = t.Seconds / 10
		}
		hundredths = t.Hundredths
	default:
		return Result{}, false
	}

	value := timetoken.Seconds(ctx.Minutes, seconds, hundredths)
	return Result{
		Time:         value,
		DisplayValue: timetoken.Display(value),
		Context:      ctx,
	}, true
}

// IsFormat reports whether input looks like a quick time token.
func IsFormat(input string) bool {
	return timetoken.Valid(input)
}
