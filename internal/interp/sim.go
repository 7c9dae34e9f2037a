package interp

import (
	"fmt"
	"strconv"

	"github.com/hpslab/hps/internal/gacha"
)

const (
	defaultSimTrials = 1000
	maxSimTrials     = 1000000
)

// simulate handles `/sim $item #pool *pity ±(trials)`: Monte Carlo over the
// exact draw-sequence algorithm, pity carried across sequences within a
// trial, until the target lands by luck or guarantee. Session state is not
// mutated; the run uses its own replicable source seeded off the session
// stream.
func (e *Engine) simulate(line string, out *[]string) error {
	im := itemRe.FindStringSubmatch(line)
	if im == nil {
		return &FormatError{Msg: "sim format: /sim $item #pool *pity ±(trials)"}
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
	trials := defaultSimTrials
	if tm := recordSuffixRe.FindStringSubmatch(line); tm != nil {
		if n, err := strconv.Atoi(tm[1]); err == nil {
			trials = n
		}
	}
	if trials < 1 {
		trials = 1
	}
	if trials > maxSimTrials {
		trials = maxSimTrials
	}

	simRNG := gacha.NewSeededRNG(uint64(e.rng.Float64() * (1 << 53)))
	res, err := gacha.RunMonteCarlo(gacha.SequenceParams{
		TotalProb:   pool.TotalProb,
		Items:       pool.Items,
		Target:      target,
		MaxPity:     maxPity,
		CostPerDraw: float64(e.token.PerDraw),
		Escalation:  e.esc,
	}, trials, simRNG)
	if err != nil {
		return &FormatError{Msg: err.Error()}
	}

	*out = append(*out,
		fmt.Sprintf("[sim] $%s from #%s | trials: %d", target, pool.Name, res.Trials),
		fmt.Sprintf("[sim] draws: mean %.1f ±%.1f | p50 %.0f p90 %.0f p99 %.0f",
			res.Draws.Mean, res.Draws.StdDev, res.Draws.P50, res.Draws.P90, res.Draws.P99),
		fmt.Sprintf("[sim] cost: mean ¥%.0f", res.MeanCost),
	)
	return nil
}
