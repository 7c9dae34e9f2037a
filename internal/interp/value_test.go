package interp

import "testing"

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "50.0%"},
		{0.006, "0.6%"},
		{0.016, "1.6%"},
		{0, "0.0%"},
		{1, "100.0%"},
	}
	for _, c := range cases {
		if got := formatPercent(c.in); got != c.want {
			t.Errorf("formatPercent(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{64800, "64800"},
		{64300, "64300"},
		{0, "0"},
		{12.5, "12.5"},
	}
	for _, c := range cases {
		if got := formatAmount(c.in); got != c.want {
			t.Errorf("formatAmount(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatInventory(t *testing.T) {
	if got := formatInventory(nil); got != "[]" {
		t.Fatalf("got %q", got)
	}
	if got := formatInventory([]string{"a", "b"}); got != "[a, b]" {
		t.Fatalf("got %q", got)
	}
}

func TestValueRender(t *testing.T) {
	if got := numberValue(0.5).render(); got != "50.0%" {
		t.Fatalf("got %q", got)
	}
	if got := numberValue(405).render(); got != "405.00" {
		t.Fatalf("got %q", got)
	}
	if got := stringValue("hi").render(); got != "hi" {
		t.Fatalf("got %q", got)
	}
	r := &RecordResult{Success: 3, Failure: 7, Total: 10, Rate: 30}
	if got := recordValue(r).render(); got != "{success:3 failure:7 total:10 rate:30.0%}" {
		t.Fatalf("got %q", got)
	}
}

func TestValueStateForm(t *testing.T) {
	if got := numberValue(405).stateForm(); got != "405" {
		t.Fatalf("got %q", got)
	}
	if got := numberValue(0.016).stateForm(); got != "1.6%" {
		t.Fatalf("got %q", got)
	}
}
