package gacha

import "errors"

var ErrEmptyPool = errors.New("pool has no items")

// SequenceParams describes one draw-target statement.
type SequenceParams struct {
	TotalProb   float64  // pool's aggregate success probability
	Items       []string // pool items, declaration order, duplicates allowed
	Target      string   // item that ends the hunt
	MaxPity     int      // attempt budget for this sequence
	CostPerDraw float64
	Escalation  Escalation
}

// Outcome tags how a draw sequence ended.
type Outcome int

const (
	// OutcomeTarget: the target item was drawn.
	OutcomeTarget Outcome = iota
	// OutcomeOffTarget: a success produced some other item and the
	// sequence stopped there, silently.
	OutcomeOffTarget
	// OutcomeGuarantee: every attempt in the budget missed and the target
	// was granted outright.
	OutcomeGuarantee
)

// DrawEvent is one successful draw worth tracing: the first three attempts,
// the target itself, or the last three attempts of the budget.
type DrawEvent struct {
	Attempt int    // 1-based index within this sequence
	Item    string
	Pity    int // pity counter after this attempt's increment
}

// SequenceResult carries everything a sequence changed or observed.
type SequenceResult struct {
	Outcome  Outcome
	Events   []DrawEvent
	Obtained []string // inventory additions, in draw order
	Attempts int      // draws consumed
	Cost     float64  // spend added; zero for OutcomeOffTarget
	Pity     int      // pity counter after the sequence
}

// RunSequence plays out one draw statement. pity is the session counter
// going in; the result carries its value after the sequence.
//
// A success that is not the target ends the sequence immediately and the
// guarantee never fires on that path; the guarantee only covers the case
// where every attempt in the budget missed. Downstream text depends on the
// silent stop, so it is load-bearing, not an oversight to fix here.
func RunSequence(p SequenceParams, pity int, rng RandomSource) (SequenceResult, error) {
	if len(p.Items) == 0 {
		return SequenceResult{}, ErrEmptyPool
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	res := SequenceResult{Pity: pity}
	for attempt := 1; attempt <= p.MaxPity; attempt++ {
		res.Pity++
		res.Attempts = attempt

		prob := p.Escalation.EffectiveProb(p.TotalProb, res.Pity)
		hit, err := Draw(prob, rng)
		if err != nil {
			return SequenceResult{}, err
		}
		if !hit {
			continue
		}

		item := p.Items[rng.IntN(len(p.Items))]
		res.Obtained = append(res.Obtained, item)

		if attempt <= 3 || item == p.Target || attempt >= p.MaxPity-2 {
			res.Events = append(res.Events, DrawEvent{Attempt: attempt, Item: item, Pity: res.Pity})
		}

		if item == p.Target {
			res.Outcome = OutcomeTarget
			res.Cost = float64(attempt) * p.CostPerDraw
			res.Pity = 0
			return res, nil
		}

		res.Outcome = OutcomeOffTarget
		return res, nil
	}

	// zero successes across the whole budget: forced acquisition
	res.Outcome = OutcomeGuarantee
	res.Obtained = append(res.Obtained, p.Target)
	res.Cost = float64(p.MaxPity) * p.CostPerDraw
	res.Pity = 0
	return res, nil
}
