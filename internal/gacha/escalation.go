package gacha

// Escalation is the linear probability ramp applied once the session's pity
// counter passes Threshold:
//
//	p' = min(1, p + (count - Threshold) * Step)
//
// At count == Threshold the base probability still applies; the first boost
// lands on the following draw.
type Escalation struct {
	Threshold int
	Step      float64
}

// DefaultEscalation matches the language's fixed ramp: +2% per draw past 70.
func DefaultEscalation() Escalation {
	return Escalation{Threshold: 70, Step: 0.02}
}

// EffectiveProb returns the probability one draw should use given the pity
// counter's value after this attempt's increment. The result is clamped to
// [0,1] even when no ramp applies.
func (e Escalation) EffectiveProb(base float64, pityCount int) float64 {
	p := clampProb(base)
	if pityCount <= e.Threshold {
		return p
	}
	return clampProb(p + float64(pityCount-e.Threshold)*e.Step)
}
