// Package interp implements the HPS statement execution engine: a
// line-oriented interpreter for the probability-simulation language. Each
// statement runs to completion before the next begins; an Engine is owned by
// exactly one session and is not safe for concurrent use.
package interp

import (
	"sort"
	"strings"

	"github.com/hpslab/hps/internal/expr"
	"github.com/hpslab/hps/internal/gacha"
	"github.com/hpslab/hps/internal/preset"
	"github.com/hpslab/hps/internal/pricing"
)

// Engine is the façade external collaborators talk to. All mutable session
// state lives behind it.
type Engine struct {
	st      *state
	rng     gacha.RandomSource
	esc     gacha.Escalation
	token   pricing.Token
	catalog pricing.Catalog
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRandomSource injects the randomness the session draws from. Tests pass
// a seeded source for determinism.
func WithRandomSource(rng gacha.RandomSource) Option {
	return func(e *Engine) { e.rng = rng }
}

// New creates an engine with empty state.
func New(opts ...Option) *Engine {
	e := &Engine{
		st:      newState(),
		rng:     gacha.DefaultRNG(),
		esc:     gacha.DefaultEscalation(),
		token:   pricing.Default(),
		catalog: pricing.DefaultCatalog(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Execute runs one statement and returns its output lines; blank input
// yields none. A handler error becomes a single [!] line appended to
// whatever output the statement produced before failing.
func (e *Engine) Execute(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	var out []string
	if err := e.executeLine(line, &out); err != nil {
		out = append(out, "[!] "+err.Error())
	}
	return out
}

// RunScript executes newline-separated statements in order, blank lines
// ignored, and returns all output lines.
func (e *Engine) RunScript(code string) []string {
	var all []string
	for _, line := range strings.Split(code, "\n") {
		all = append(all, e.Execute(line)...)
	}
	return all
}

// Reset reinitializes the whole session atomically.
func (e *Engine) Reset() {
	e.st = newState()
}

// ApplyPreset loads a preset into the session atomically: validation and
// value interpretation both run before anything is stored, so a bad preset
// changes nothing. Variables and currency apply in sorted name order to keep
// /state listings stable.
func (e *Engine) ApplyPreset(f preset.File) error {
	if err := f.Validate(); err != nil {
		return err
	}
	varNames := sortedKeys(f.Variables)
	staged := make([]stagedValue, len(varNames))
	for i, name := range varNames {
		sv, err := e.interpretValue(f.Variables[name])
		if err != nil {
			return err
		}
		staged[i] = sv
	}

	for _, p := range f.Pools {
		e.st.setPool(Pool{
			Name:      p.Name,
			TotalProb: p.Prob / 100,
			Items:     append([]string(nil), p.Items...),
		})
	}
	for _, name := range sortedKeys(f.Currency) {
		e.st.setCurrency(name, f.Currency[name])
	}
	for i, name := range varNames {
		e.commitValue(name, staged[i])
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// evalMath evaluates an arithmetic value text against variables and
// currency. Failure is defined to yield 0, not an error; downstream text
// depends on that leniency.
func (e *Engine) evalMath(src string) float64 {
	v, err := expr.Eval(src, e.scope())
	if err != nil {
		return 0
	}
	return v
}

// scope resolves #name references: variables shadow currency entries.
func (e *Engine) scope() expr.Scope {
	return func(name string) (float64, bool) {
		if v, ok := e.st.vars[name]; ok {
			if v.Kind == KindNumber {
				return v.Num, true
			}
			return 0, false
		}
		if c, ok := e.st.currency[name]; ok {
			return c, true
		}
		return 0, false
	}
}
