package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind discriminates what a variable holds.
type ValueKind int

const (
	// KindNumber covers both plain numerics and probability-flagged ones;
	// the renderer treats any float below 1 as a probability.
	KindNumber ValueKind = iota
	// KindString is the opaque fallback when numeric parsing fails.
	KindString
	// KindRecord holds a Bernoulli experiment summary.
	KindRecord
)

// Value is one variable slot.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Rec  *RecordResult
}

func numberValue(f float64) Value       { return Value{Kind: KindNumber, Num: f} }
func stringValue(s string) Value        { return Value{Kind: KindString, Str: s} }
func recordValue(r *RecordResult) Value { return Value{Kind: KindRecord, Rec: r} }

// RecordResult is the structured outcome of a record-block experiment.
type RecordResult struct {
	Success int
	Failure int
	Total   int
	Rate    float64 // success percentage
}

func (r *RecordResult) String() string {
	return fmt.Sprintf("{success:%d failure:%d total:%d rate:%.1f%%}",
		r.Success, r.Failure, r.Total, r.Rate)
}

// render is the template form: floats below 1 as percentages, larger floats
// with two decimals, everything else textual.
func (v Value) render() string {
	switch v.Kind {
	case KindNumber:
		if v.Num < 1 {
			return formatPercent(v.Num)
		}
		return fmt.Sprintf("%.2f", v.Num)
	case KindRecord:
		return v.Rec.String()
	default:
		return v.Str
	}
}

// stateForm is the /state listing form; like render but without forcing two
// decimals onto plain numbers.
func (v Value) stateForm() string {
	switch v.Kind {
	case KindNumber:
		if v.Num < 1 {
			return formatPercent(v.Num)
		}
		return formatAmount(v.Num)
	case KindRecord:
		return v.Rec.String()
	default:
		return v.Str
	}
}

// formatAmount renders a float the way the language prints money and counts:
// shortest exact form, no trailing .0.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatPercent renders a probability-flagged float: value*100 with at least
// one decimal place, then a % sign. 0.5 => "50.0%".
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v*100, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}

func formatInventory(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
