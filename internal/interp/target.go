package interp

import (
	"fmt"
	"strconv"

	"github.com/hpslab/hps/internal/gacha"
)

// runTarget handles `<$item,#pool,*pity>`: one draw sequence against a pool.
// The pity cap defaults to 90 when the `*n` token is absent.
func (e *Engine) runTarget(line string, out *[]string) error {
	im := itemRe.FindStringSubmatch(line)
	if im == nil {
		return &FormatError{Msg: "target format: <$item,#pool,*pity>"}
	}
	target := im[1]

	nm := nameRe.FindStringSubmatch(line)
	if nm == nil {
		return &FormatError{Msg: "pool not defined"}
	}
	pool, ok := e.st.pools[nm[1]]
	if !ok {
		return formatErrf("pool not defined: #%s", nm[1])
	}

	maxPity := 90
	if mm := pityCapRe.FindStringSubmatch(line); mm != nil {
		if n, err := strconv.Atoi(mm[1]); err == nil {
			maxPity = n
		}
	}

	*out = append(*out, fmt.Sprintf("[draw] target: $%s | pity cap: %d", target, maxPity))

	res, err := gacha.RunSequence(gacha.SequenceParams{
		TotalProb:   pool.TotalProb,
		Items:       pool.Items,
		Target:      target,
		MaxPity:     maxPity,
		CostPerDraw: float64(e.token.PerDraw),
		Escalation:  e.esc,
	}, e.st.pity, e.rng)
	if err != nil {
		return &FormatError{Msg: err.Error()}
	}

	e.st.pity = res.Pity
	e.st.inventory = append(e.st.inventory, res.Obtained...)
	e.st.spent += res.Cost

	for _, ev := range res.Events {
		tag := ""
		if ev.Pity > e.esc.Threshold {
			tag = fmt.Sprintf(" [%d]", ev.Pity)
		}
		*out = append(*out, fmt.Sprintf("     draw %d: $%s%s", ev.Attempt, ev.Item, tag))
	}

	switch res.Outcome {
	case gacha.OutcomeTarget:
		*out = append(*out, fmt.Sprintf("[ok] got it! $%s | %d draws | ¥%s",
			target, res.Attempts, formatAmount(res.Cost)))
	case gacha.OutcomeGuarantee:
		*out = append(*out, fmt.Sprintf("[!] pity guarantee | $%s | ¥%s",
			target, formatAmount(res.Cost)))
	}
	// OutcomeOffTarget ends the statement without another word
	return nil
}
