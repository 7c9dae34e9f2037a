package interp

import "testing"

func TestAssignNumber(t *testing.T) {
	e := newTestEngine(1)
	if got := execOne(t, e, "#x = 0.5"); got != "[var] #x = 0.5" {
		t.Fatalf("got %q", got)
	}
	v, ok := e.st.vars["x"]
	if !ok || v.Kind != KindNumber || v.Num != 0.5 {
		t.Fatalf("stored %+v", v)
	}
}

func TestAssignCurrency(t *testing.T) {
	e := newTestEngine(1)
	if got := execOne(t, e, "#budget = ¥64800"); got != "[var] #budget = ¥64800" {
		t.Fatalf("got %q", got)
	}
	if c, ok := e.st.currency["budget"]; !ok || c != 64800 {
		t.Fatalf("currency: %v %v", c, ok)
	}
	if _, ok := e.st.vars["budget"]; ok {
		t.Fatal("currency assignment must not also create a variable")
	}
}

func TestAssignCurrencyNotNumeric(t *testing.T) {
	e := newTestEngine(1)
	got := execOne(t, e, "#b = ¥abc")
	if got != `[!] currency value must be numeric: "¥abc"` {
		t.Fatalf("got %q", got)
	}
	if len(e.st.currency) != 0 {
		t.Fatalf("nothing should be stored: %v", e.st.currency)
	}
}

func TestAssignProbabilityShorthand(t *testing.T) {
	e := newTestEngine(1)
	execOne(t, e, "#p = 1.6/")
	v := e.st.vars["p"]
	if v.Kind != KindNumber || v.Num != 0.016 {
		t.Fatalf("stored %+v", v)
	}
}

// A slash value with no leading number matches the shorthand branch but the
// pattern comes up empty; the assignment echoes yet stores nothing.
func TestAssignSlashGap(t *testing.T) {
	e := newTestEngine(1)
	if got := execOne(t, e, "#g = abc/def"); got != "[var] #g = abc/def" {
		t.Fatalf("echo still expected, got %q", got)
	}
	if _, ok := e.st.vars["g"]; ok {
		t.Fatal("gap value must not create a variable")
	}
	if _, ok := e.st.currency["g"]; ok {
		t.Fatal("gap value must not create a currency entry")
	}
}

func TestAssignArithmetic(t *testing.T) {
	e := newTestEngine(1)
	execOne(t, e, "#per = 64800 ÷ 160")
	if v := e.st.vars["per"]; v.Num != 405 {
		t.Fatalf("got %v", v.Num)
	}

	execOne(t, e, "#a = 100")
	execOne(t, e, "#b = #a × 2 + 5")
	if v := e.st.vars["b"]; v.Num != 205 {
		t.Fatalf("got %v", v.Num)
	}

	// evaluation failure is defined to produce 0
	execOne(t, e, "#c = #missing + 1")
	if v := e.st.vars["c"]; v.Kind != KindNumber || v.Num != 0 {
		t.Fatalf("got %+v", v)
	}
}

func TestAssignArithmeticReadsCurrency(t *testing.T) {
	e := newTestEngine(1)
	execOne(t, e, "#budget = ¥64800")
	execOne(t, e, "#draws = #budget ÷ 160")
	if v := e.st.vars["draws"]; v.Num != 405 {
		t.Fatalf("got %v", v.Num)
	}
}

func TestAssignStringFallback(t *testing.T) {
	e := newTestEngine(1)
	execOne(t, e, "#s = hello world")
	v := e.st.vars["s"]
	if v.Kind != KindString || v.Str != "hello world" {
		t.Fatalf("stored %+v", v)
	}
}

func TestAssignMissingValue(t *testing.T) {
	e := newTestEngine(1)
	if got := execOne(t, e, "#x ="); got != "[!] assignment format: #name = value" {
		t.Fatalf("got %q", got)
	}
}

func TestAssignOverwrite(t *testing.T) {
	e := newTestEngine(1)
	execOne(t, e, "#x = 0.5")
	execOne(t, e, "#x = 3")
	if v := e.st.vars["x"]; v.Num != 3 {
		t.Fatalf("got %v", v.Num)
	}
	if len(e.st.varOrder) != 1 {
		t.Fatalf("var order must not duplicate entries: %v", e.st.varOrder)
	}
}
