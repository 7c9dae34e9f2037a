package interp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hpslab/hps/internal/gacha"
)

func TestRecordMissingSuffixHint(t *testing.T) {
	e := newTestEngine(1)
	if got := execOne(t, e, "#¢{coin}"); got != "[rec] format: #¢{...}±(times)" {
		t.Fatalf("got %q", got)
	}
}

func TestRecordZeroTrials(t *testing.T) {
	e := newTestEngine(1)
	if got := execOne(t, e, "#¢{coin}±(0)"); got != "[!] trial count must be positive" {
		t.Fatalf("got %q", got)
	}
}

func TestRecordSeededRun(t *testing.T) {
	const seed, trials = 5, 40

	mirror := gacha.NewSeededRNG(seed)
	success := 0
	for i := 0; i < trials; i++ {
		if mirror.Float64() < 0.5 {
			success++
		}
	}
	rate := float64(success) / float64(trials) * 100

	e := newTestEngine(seed)
	got := execOne(t, e, fmt.Sprintf("#¢{coin}±(%d)", trials))
	want := fmt.Sprintf("[rec] %d trials | success:%d failure:%d rate:%.1f%%",
		trials, success, trials-success, rate)
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	v, ok := e.st.vars[recordVarName]
	if !ok || v.Kind != KindRecord {
		t.Fatalf("result variable: %+v", v)
	}
	if v.Rec.Success != success || v.Rec.Total != trials {
		t.Fatalf("stored %+v", v.Rec)
	}

	st := execOne(t, e, "/state")
	if !strings.Contains(st, "¢={success:") {
		t.Fatalf("state must list the result variable:\n%s", st)
	}
}

// The record form wins over assignment dispatch even when the body contains
// an equals sign.
func TestRecordNotMistakenForAssignment(t *testing.T) {
	e := newTestEngine(3)
	got := execOne(t, e, "#¢{x=1}±(10)")
	if !strings.HasPrefix(got, "[rec] 10 trials") {
		t.Fatalf("got %q", got)
	}
}
