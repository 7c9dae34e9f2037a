package interp

import (
	"fmt"
	"strings"
)

// Pool is a named weighted collection of drawable items sharing one
// aggregate success probability. Immutable after definition; redefinition
// replaces it wholesale.
type Pool struct {
	Name      string
	TotalProb float64  // normalized to [0,1]
	Items     []string // declaration order, duplicates allowed
}

// ProbPerItem is the per-item share of the pool's probability.
func (p Pool) ProbPerItem() float64 {
	if len(p.Items) == 0 {
		return 0
	}
	return p.TotalProb / float64(len(p.Items))
}

// state is everything one session owns. Reachable only through the Engine;
// Reset swaps the whole struct so no statement sees a half-cleared session.
type state struct {
	pools     map[string]Pool
	poolOrder []string
	vars      map[string]Value
	varOrder  []string
	currency  map[string]float64
	curOrder  []string
	inventory []string
	pity      int
	spent     float64
}

func newState() *state {
	return &state{
		pools:    make(map[string]Pool),
		vars:     make(map[string]Value),
		currency: make(map[string]float64),
	}
}

func (s *state) setPool(p Pool) {
	if _, ok := s.pools[p.Name]; !ok {
		s.poolOrder = append(s.poolOrder, p.Name)
	}
	s.pools[p.Name] = p
}

func (s *state) setVar(name string, v Value) {
	if _, ok := s.vars[name]; !ok {
		s.varOrder = append(s.varOrder, name)
	}
	s.vars[name] = v
}

func (s *state) setCurrency(name string, v float64) {
	if _, ok := s.currency[name]; !ok {
		s.curOrder = append(s.curOrder, name)
	}
	s.currency[name] = v
}

// State renders the fixed-format session summary block as one multi-line
// string.
func (e *Engine) State() string {
	st := e.st
	rule := strings.Repeat("─", 40)
	lines := []string{rule, "state:"}

	if len(st.poolOrder) > 0 {
		lines = append(lines, "  pools: "+strings.Join(st.poolOrder, ", "))
	}
	if len(st.varOrder) > 0 {
		parts := make([]string, 0, len(st.varOrder))
		for _, name := range st.varOrder {
			parts = append(parts, name+"="+st.vars[name].stateForm())
		}
		lines = append(lines, "  vars: "+strings.Join(parts, ", "))
	}
	if len(st.curOrder) > 0 {
		parts := make([]string, 0, len(st.curOrder))
		for _, name := range st.curOrder {
			parts = append(parts, name+"=¥"+formatAmount(st.currency[name]))
		}
		lines = append(lines, "  currency: "+strings.Join(parts, ", "))
	}

	lines = append(lines,
		"  inventory: "+formatInventory(st.inventory),
		fmt.Sprintf("  pity: %d | total spent: ¥%s", st.pity, formatAmount(st.spent)),
		rule,
	)
	return strings.Join(lines, "\n")
}
