// Package duration turns raw minute counts into human-readable duration text.
//
// Input arrives as loosely typed channel text: either one of two sentinels
// (Missing, Undefined) or a decimal number of minutes. Parse decodes it into a
// Value once, at the boundary, and Value.Format renders it.
package duration

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Sentinel inputs and outputs.
const (
	// Missing is passed through unchanged. The host sends it when a channel has no data.
	Missing = "NULL"
	// Undefined is the input token for a channel without a defined value.
	Undefined = "-"
	// UndefinedLabel is returned for Undefined input.
	UndefinedLabel = "Undefined"
)

// Minute arithmetic.
const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// Reasons a numeric input is rejected.
var (
	ErrNotANumber = errors.New("input is not a number")
	ErrNegative   = errors.New("input is negative")
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindMissing Kind = iota
	KindUndefined
	KindMinutes
	KindInvalid
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindUndefined:
		return "undefined"
	case KindMinutes:
		return "minutes"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Value is a decoded input.
type Value struct {
	Kind    Kind
	Minutes uint64 // only meaningful for KindMinutes
	Raw     string
	Err     error // set for KindInvalid

	large *big.Int // set instead of Minutes when the total exceeds uint64
}

// Parse decodes input. Sentinels are matched exactly; anything else is read
// as a leading base-10 integer prefix, so "12abc" is 12 minutes.
func Parse(input string) Value {
	switch input {
	case Missing:
		return Value{Kind: KindMissing, Raw: input}
	case Undefined:
		return Value{Kind: KindUndefined, Raw: input}
	}

	digits, err := parsePrefix(input)
	if err != nil {
		return Value{Kind: KindInvalid, Raw: input, Err: err}
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err == nil {
		return Value{Kind: KindMinutes, Minutes: n, Raw: input}
	}
	// Totals have no upper bound; anything past uint64 is carried as a big.Int.
	large, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Value{Kind: KindInvalid, Raw: input, Err: ErrNotANumber}
	}
	return Value{Kind: KindMinutes, Raw: input, large: large}
}

// parsePrefix reads optional leading whitespace, an optional sign and a run of
// decimal digits, and returns the digits. Everything after them is ignored.
// Negative zero is accepted as zero.
func parsePrefix(s string) (string, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return "", ErrNotANumber
	}

	digits := s[:end]
	if negative {
		if strings.TrimLeft(digits, "0") != "" {
			return "", ErrNegative
		}
		return "0", nil
	}
	return digits, nil
}

// Format renders the value. Missing passes through, Undefined becomes
// UndefinedLabel, and invalid input renders as the empty string.
func (v Value) Format() string {
	switch v.Kind {
	case KindMissing:
		return Missing
	case KindUndefined:
		return UndefinedLabel
	case KindMinutes:
		if v.large != nil {
			return formatLarge(v.large)
		}
		return FormatMinutes(v.Minutes)
	default:
		return ""
	}
}

// Format parses and renders input in one step.
//
//	Format("2365") == "1 day 15 hours 25 minutes"
func Format(input string) string {
	return Parse(input).Format()
}

// FormatMinutes renders a total number of minutes. Zero renders as "".
func FormatMinutes(total uint64) string {
	return Decompose(total).String()
}

// formatLarge renders a total too big for uint64. Such a total is always
// many days, so the day segment is plural and never omitted.
func formatLarge(total *big.Int) string {
	days, rest := new(big.Int).QuoRem(total, big.NewInt(MinutesPerDay), new(big.Int))
	out := days.String() + " days"
	if tail := Decompose(rest.Uint64()).String(); tail != "" {
		out += " " + tail
	}
	return out
}

// Breakdown is a minute total split into whole days, hours and minutes.
type Breakdown struct {
	Days    uint64
	Hours   uint64
	Minutes uint64
}

// Decompose splits total minutes into days, hours and minutes.
func Decompose(total uint64) Breakdown {
	days := total / MinutesPerDay
	rest := total - days*MinutesPerDay
	hours := rest / MinutesPerHour
	return Breakdown{
		Days:    days,
		Hours:   hours,
		Minutes: rest - hours*MinutesPerHour,
	}
}

// IsZero reports whether every component is zero.
func (b Breakdown) IsZero() bool {
	return b.Days == 0 && b.Hours == 0 && b.Minutes == 0
}

// String joins the non-zero segments, largest unit first.
func (b Breakdown) String() string {
	if b.IsZero() {
		return ""
	}
	parts := make([]string, 0, 3)
	parts = appendSegment(parts, b.Days, "day")
	parts = appendSegment(parts, b.Hours, "hour")
	parts = appendSegment(parts, b.Minutes, "minute")
	return strings.Join(parts, " ")
}

func appendSegment(parts []string, n uint64, unit string) []string {
	switch {
	case n == 0:
		return parts
	case n == 1:
		return append(parts, "1 "+unit)
	default:
		return append(parts, strconv.FormatUint(n, 10)+" "+unit+"s")
	}
}
