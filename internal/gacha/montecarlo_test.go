package gacha

import "testing"

func TestMonteCarloCertainPool(t *testing.T) {
	p := SequenceParams{
		TotalProb:   1.0,
		Items:       []string{"raiden"},
		Target:      "raiden",
		MaxPity:     90,
		CostPerDraw: 160,
		Escalation:  DefaultEscalation(),
	}
	res, err := RunMonteCarlo(p, 100, NewSeededRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	if res.Draws.Mean != 1 || res.Draws.P99 != 1 {
		t.Fatalf("certain single-item pool must always take 1 draw: %+v", res.Draws)
	}
	if res.MeanCost != 160 {
		t.Fatalf("mean cost must be 160; got %f", res.MeanCost)
	}
}

func TestMonteCarloGuaranteeOnly(t *testing.T) {
	p := SequenceParams{
		TotalProb:   0.0,
		Items:       []string{"raiden"},
		Target:      "raiden",
		MaxPity:     10,
		CostPerDraw: 160,
	}
	res, err := RunMonteCarlo(p, 50, NewSeededRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	if res.Draws.Mean != 10 {
		t.Fatalf("every trial must exhaust the budget of 10; got mean %f", res.Draws.Mean)
	}
	if res.MeanCost != 1600 {
		t.Fatalf("mean cost must be 10*160; got %f", res.MeanCost)
	}
}

// Pool can always hit but never yield the target: trials must still
// terminate via the draw cap.
func TestMonteCarloUnreachableTargetTerminates(t *testing.T) {
	p := SequenceParams{
		TotalProb:   1.0,
		Items:       []string{"qiqi"},
		Target:      "raiden",
		MaxPity:     90,
		CostPerDraw: 160,
	}
	draws, _, err := DrawsToTarget(p, NewSeededRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	if draws < maxTrialDraws {
		t.Fatalf("unreachable target should run to the cap; got %d", draws)
	}
}

func TestCalcStatsPercentiles(t *testing.T) {
	s := calcStats([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if s.Mean != 5.5 {
		t.Fatalf("mean: got %f", s.Mean)
	}
	if s.P50 != 5.5 {
		t.Fatalf("p50: got %f", s.P50)
	}
	if s.P99 <= s.P90 || s.P90 <= s.P50 {
		t.Fatalf("percentiles must be monotone: %+v", s)
	}
	if empty := calcStats(nil); empty.Mean != 0 {
		t.Fatalf("empty samples must yield zero stats")
	}
}
