// Package timetoken implements the shared grammar for separator-delimited
// swim times such as "31-2", "1:05.3" or "31秒2".
package timetoken

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// returned for any input that is not a 2 or 3 field time token
var ErrInvalidToken = errors.New("invalid time token")

// largest minute count whose canonical hundredths still fit in an int
const MaxMinutes = (math.MaxInt - 9999) / 6000

// canonical field separator after normalization
const Separator = '-'

// runes treated as interchangeable field separators
var separators = map[rune]bool{
	'-': true,
	'.': true,
	'秒': true,
	':': true,
	'：': true,
	'ー': true,
}

// parsed time token, either TwoField or ThreeField
type Token interface {
	fields() int
}

// [seconds, fraction] form
type TwoField struct {
	Seconds       int
	SecondsDigits int // 1 when the tens digit was omitted
	Hundredths    int
}

// [minutes, seconds, fraction] form
type ThreeField struct {
	Minutes    int
	Seconds    int
	Hundredths int
}

func (TwoField) fields() int   { return 2 }
func (ThreeField) fields() int { return 3 }

// Normalize replaces every separator rune with Separator and collapses runs of them.
func Normalize(raw string) string {
	var sb strings.Builder
	prevSep := false
	for _, r := range strings.TrimSpace(raw) {
		if separators[r] {
			if !prevSep {
				sb.WriteRune(Separator)
			}
			prevSep = true
			continue
		}
		sb.WriteRune(r)
		prevSep = false
	}
	return sb.String()
}

// Split normalizes raw and returns its non-empty fields.
func Split(raw string) []string {
	parts := strings.Split(Normalize(raw), string(Separator))
	fields := parts[:0]
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// Tokenize decomposes raw into a TwoField or ThreeField token.
func Tokenize(raw string) (Token, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidToken)
	}

	fields := Split(raw)
	for _, f := range fields {
		if !isDigits(f) {
			return nil, fmt.Errorf("%w: non-numeric field %q", ErrInvalidToken, f)
		}
	}

	switch len(fields) {
	case 2:
		seconds, err := parseSeconds(fields[0])
		if err != nil {
			return nil, err
		}
		hundredths, err := parseFraction(fields[1])
		if err != nil {
			return nil, err
		}
		return TwoField{
			Seconds:       seconds,
			SecondsDigits: len(fields[0]),
			Hundredths:    hundredths,
		}, nil
	case 3:
		minutes, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: minutes %q: %v", ErrInvalidToken, fields[0], err)
		}
		if minutes > MaxMinutes {
			return nil, fmt.Errorf("%w: minutes %q out of range", ErrInvalidToken, fields[0])
		}
		seconds, err := parseSeconds(fields[1])
		if err != nil {
			return nil, err
		}
		hundredths, err := parseFraction(fields[2])
		if err != nil {
			return nil, err
		}
		return ThreeField{
			Minutes:    minutes,
			Seconds:    seconds,
			Hundredths: hundredths,
		}, nil
	default:
		return nil, fmt.Errorf("%w: expected 2 or 3 fields, got %d", ErrInvalidToken, len(fields))
	}
}

// Valid reports whether raw tokenizes, without keeping the value.
func Valid(raw string) bool {
	_, err := Tokenize(raw)
	return err == nil
}

func parseSeconds(field string) (int, error) {
	if len(field) > 2 {
		return 0, fmt.Errorf("%w: seconds field %q longer than 2 digits", ErrInvalidToken, field)
	}
	return strconv.Atoi(field)
}

// 1 digit is tenths, 2 digits are hundredths
func parseFraction(field string) (int, error) {
	switch len(field) {
	case 1:
		v, err := strconv.Atoi(field)
		return v * 10, err
	case 2:
		return strconv.Atoi(field)
	default:
		return 0, fmt.Errorf("%w: fraction field %q longer than 2 digits", ErrInvalidToken, field)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
