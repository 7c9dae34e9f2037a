package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// assign handles `#name = value`. The echo always reproduces the original
// right-hand-side text, whatever the value resolved to.
func (e *Engine) assign(line string, out *[]string) error {
	m := assignRe.FindStringSubmatch(line)
	if m == nil {
		return &FormatError{Msg: "assignment format: #name = value"}
	}
	name := m[1]
	valueText := strings.TrimSpace(m[2])
	if err := e.storeValue(name, valueText); err != nil {
		return err
	}
	*out = append(*out, fmt.Sprintf("[var] #%s = %s", name, valueText))
	return nil
}

// stagedValue is one interpreted assignment before it lands in the store.
// Splitting interpretation from commit lets preset application fail before
// touching anything.
type stagedValue struct {
	currency bool
	amount   float64
	value    Value
	skip     bool // probability shorthand with no pattern match writes nothing
}

// interpretValue resolves a value text in fixed priority order: currency,
// probability shorthand, arithmetic, bare float, opaque string.
func (e *Engine) interpretValue(valueText string) (stagedValue, error) {
	if strings.HasPrefix(valueText, "¥") {
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(valueText, "¥")), 64)
		if err != nil {
			return stagedValue{}, formatErrf("currency value must be numeric: %q", valueText)
		}
		return stagedValue{currency: true, amount: f}, nil
	}

	if strings.Contains(valueText, "/") {
		// Probability shorthand. When the number/ pattern is absent the
		// assignment writes nothing at all; callers observe that gap.
		pm := valueProbRe.FindStringSubmatch(valueText)
		if pm == nil {
			return stagedValue{skip: true}, nil
		}
		f, err := strconv.ParseFloat(pm[1], 64)
		if err != nil {
			return stagedValue{}, formatErrf("bad probability %q", pm[1])
		}
		return stagedValue{value: numberValue(f / 100)}, nil
	}

	// `/` was handled above, so the operator test covers the rest.
	if strings.ContainsAny(valueText, "+-×÷*") {
		return stagedValue{value: numberValue(e.evalMath(valueText))}, nil
	}

	if f, err := strconv.ParseFloat(valueText, 64); err == nil {
		return stagedValue{value: numberValue(f)}, nil
	}

	return stagedValue{value: stringValue(valueText)}, nil
}

func (e *Engine) commitValue(name string, sv stagedValue) {
	switch {
	case sv.skip:
	case sv.currency:
		e.st.setCurrency(name, sv.amount)
	default:
		e.st.setVar(name, sv.value)
	}
}

func (e *Engine) storeValue(name, valueText string) error {
	sv, err := e.interpretValue(valueText)
	if err != nil {
		return err
	}
	e.commitValue(name, sv)
	return nil
}
