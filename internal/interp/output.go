package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hpslab/hps/internal/expr"
)

// renderOutput handles `¢,text`: variable/currency references, fixed state
// tokens, then the narrow brace arithmetic. Unknown references render a
// placeholder and malformed brace expressions are left as written; an output
// statement never fails as a whole.
func (e *Engine) renderOutput(line string, out *[]string) error {
	content := strings.TrimPrefix(line, "¢,")

	content = nameRe.ReplaceAllStringFunc(content, func(ref string) string {
		name := strings.TrimPrefix(ref, "#")
		if v, ok := e.st.vars[name]; ok {
			return v.render()
		}
		if c, ok := e.st.currency[name]; ok {
			return "¥" + formatAmount(c)
		}
		return fmt.Sprintf("[undefined:#%s]", name)
	})

	content = strings.ReplaceAll(content, "{inventory}", formatInventory(e.st.inventory))
	content = strings.ReplaceAll(content, "{total_spent}", "¥"+formatAmount(e.st.spent))
	content = strings.ReplaceAll(content, "{pity}", strconv.Itoa(e.st.pity))

	content = braceExprRe.ReplaceAllStringFunc(content, func(braced string) string {
		inner := braced[1 : len(braced)-1]
		src := strings.ReplaceAll(inner, "inventory.length", strconv.Itoa(len(e.st.inventory)))
		src = strings.ReplaceAll(src, "total_spent", formatAmount(e.st.spent))
		v, err := expr.Eval(src, nil)
		if err != nil {
			return braced // fail-soft: leave the brace text unmodified
		}
		if v > 100 {
			return "¥" + fmt.Sprintf("%.0f", v)
		}
		return formatAmount(v)
	})

	*out = append(*out, "[out] "+content)
	return nil
}
