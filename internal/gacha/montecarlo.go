package gacha

import (
	"math"
	"sort"
)

// Stats summarizes integer samples from repeated trials.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
}

// SimResult is the outcome of a Monte Carlo run over draw sequences.
type SimResult struct {
	Trials   int
	Draws    Stats   // draws until the target was obtained
	MeanCost float64 // mean spend until the target was obtained
}

// Safety valve for pools that can never yield the target by luck while also
// never exhausting a budget (target absent from the item list with a high
// hit rate). One trial never needs anywhere near this many draws otherwise.
const maxTrialDraws = 100000

// DrawsToTarget plays sequences back to back, carrying the pity counter
// across them exactly like consecutive draw statements, until the target is
// obtained by luck or by guarantee. Returns total draws and total cost.
func DrawsToTarget(p SequenceParams, rng RandomSource) (int, float64, error) {
	draws := 0
	cost := 0.0
	pity := 0
	for {
		res, err := RunSequence(p, pity, rng)
		if err != nil {
			return 0, 0, err
		}
		draws += res.Attempts
		cost += res.Cost
		pity = res.Pity
		if res.Outcome != OutcomeOffTarget || draws >= maxTrialDraws {
			return draws, cost, nil
		}
	}
}

// RunMonteCarlo repeats independent trials and returns summary stats.
func RunMonteCarlo(p SequenceParams, trials int, rng RandomSource) (SimResult, error) {
	if trials <= 0 {
		return SimResult{}, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	samples := make([]int, trials)
	var costSum float64
	for i := 0; i < trials; i++ {
		d, c, err := DrawsToTarget(p, rng)
		if err != nil {
			return SimResult{}, err
		}
		samples[i] = d
		costSum += c
	}
	return SimResult{
		Trials:   trials,
		Draws:    calcStats(samples),
		MeanCost: costSum / float64(trials),
	}, nil
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n) // population variance

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if p <= 0 || n == 1 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
