package interp

import (
	"fmt"
	"strconv"
)

// definePool parses `(prob/:$item,$item)#name`. The grammar is sigil-scanned
// free text: probability from the first `(number/` match, items from every
// `$name` token, pool name from the first `#name` token.
func (e *Engine) definePool(line string, out *[]string) error {
	pm := poolProbRe.FindStringSubmatch(line)
	if pm == nil {
		return &FormatError{Msg: "pool format: (prob/:$item,...)#name"}
	}
	pct, err := strconv.ParseFloat(pm[1], 64)
	if err != nil {
		return formatErrf("bad pool probability %q", pm[1])
	}

	matches := itemRe.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return &FormatError{Msg: "pool needs at least one $item"}
	}
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, m[1])
	}

	nm := nameRe.FindStringSubmatch(line)
	if nm == nil {
		return &FormatError{Msg: "pool needs a #name"}
	}
	name := nm[1]

	e.st.setPool(Pool{Name: name, TotalProb: pct / 100, Items: items})
	*out = append(*out, fmt.Sprintf("[pool] #%s | %s%% | %d items", name, formatAmount(pct), len(items)))
	return nil
}
