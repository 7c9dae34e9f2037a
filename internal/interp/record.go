package interp

import (
	"fmt"
	"strconv"
)

// recordVarName is the reserved variable the latest experiment result lands
// under.
const recordVarName = "¢"

// record handles `#¢{...}±(n)`: a self-contained fair-coin experiment
// repeated n times, independent of any pool.
func (e *Engine) record(line string, out *[]string) error {
	m := recordSuffixRe.FindStringSubmatch(line)
	if m == nil {
		*out = append(*out, "[rec] format: #¢{...}±(times)")
		return nil
	}
	times, err := strconv.Atoi(m[1])
	if err != nil {
		return formatErrf("bad trial count %q", m[1])
	}
	if times <= 0 {
		return &FormatError{Msg: "trial count must be positive"}
	}

	success := 0
	for i := 0; i < times; i++ {
		if e.rng.Float64() < 0.5 {
			success++
		}
	}
	rate := float64(success) / float64(times) * 100

	e.st.setVar(recordVarName, recordValue(&RecordResult{
		Success: success,
		Failure: times - success,
		Total:   times,
		Rate:    rate,
	}))
	*out = append(*out, fmt.Sprintf("[rec] %d trials | success:%d failure:%d rate:%.1f%%",
		times, success, times-success, rate))
	return nil
}
