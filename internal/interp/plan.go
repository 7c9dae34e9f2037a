package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hpslab/hps/internal/pricing"
)

// plan handles `/plan <draws>` (cheapest top-up covering that many draws)
// and `/plan ¥<amount>` (most draws a budget affords) against the built-in
// pack catalog.
func (e *Engine) plan(line string, out *[]string) error {
	arg := strings.TrimSpace(strings.TrimPrefix(line, "/plan"))
	if arg == "" {
		return &FormatError{Msg: "plan format: /plan <draws> or /plan ¥<amount>"}
	}

	if strings.HasPrefix(arg, "¥") {
		budget, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(arg, "¥")))
		if err != nil || budget <= 0 {
			return formatErrf("bad budget %q", arg)
		}
		p := pricing.MaxTokensUnderBudget(e.catalog, budget, nil)
		draws := e.token.DrawsForTokens(p.TotalTokens)
		*out = append(*out, fmt.Sprintf("[plan] ¥%d buys %d tokens (%d draws)", budget, p.TotalTokens, draws))
		appendPlanLines(p, out)
		return nil
	}

	draws, err := strconv.Atoi(arg)
	if err != nil || draws <= 0 {
		return formatErrf("bad draw count %q", arg)
	}
	need := e.token.TokensForDraws(draws)
	p := pricing.MinCostForDraws(e.catalog, e.token, draws, nil)
	*out = append(*out, fmt.Sprintf("[plan] %d draws need %d tokens", draws, need))
	appendPlanLines(p, out)
	return nil
}

func appendPlanLines(p pricing.Plan, out *[]string) {
	for _, pu := range p.Purchases {
		*out = append(*out, fmt.Sprintf("       %d× %s | ¥%d each | %d tokens each",
			pu.Qty, pu.Name, pu.UnitPrice, pu.UnitTokens))
	}
	*out = append(*out, fmt.Sprintf("[plan] total: ¥%d | tokens: %d", p.Total, p.TotalTokens))
}
