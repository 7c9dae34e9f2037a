package interp

import (
	"fmt"
	"regexp"
	"strings"
)

// FormatError reports a statement whose sigil matched but whose body
// violates that statement's grammar. The dispatcher converts it (and any
// other handler error) into a single [!] diagnostic line.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

func formatErrf(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// The language's tokens are free text scanned by pattern. Names and items
// accept any unicode letter or digit, underscore included.
var (
	assignRe       = regexp.MustCompile(`^#([\p{L}\p{N}_]+)\s*=\s*(.+)$`)
	itemRe         = regexp.MustCompile(`\$([\p{L}\p{N}_]+)`)
	nameRe         = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)
	poolProbRe     = regexp.MustCompile(`\(([0-9.]+)/`)
	valueProbRe    = regexp.MustCompile(`([0-9.]+)/`)
	pityCapRe      = regexp.MustCompile(`\*([0-9]+)`)
	braceExprRe    = regexp.MustCompile(`\{([0-9]+\s*[-+]\s*[^}]+)\}`)
	recordSuffixRe = regexp.MustCompile(`±\s*\(([0-9]+)\)`)
)

// executeLine classifies a trimmed, non-empty line by its leading sigil and
// routes it. Order is significant: the first matching rule wins, and the
// rules are mutually exclusive by construction.
func (e *Engine) executeLine(line string, out *[]string) error {
	switch {
	case strings.HasPrefix(line, "¢") && !strings.HasPrefix(line, "¢,"):
		if comment := strings.TrimSpace(strings.TrimPrefix(line, "¢")); comment != "" {
			*out = append(*out, "[note] "+comment)
		}
		return nil

	case strings.HasPrefix(line, "("):
		return e.definePool(line, out)

	case strings.HasPrefix(line, "#") && strings.Contains(line, "=") && !strings.HasPrefix(line, "#¢"):
		return e.assign(line, out)

	case strings.HasPrefix(line, "<"):
		return e.runTarget(line, out)

	case strings.HasPrefix(line, "¢,"):
		return e.renderOutput(line, out)

	case strings.HasPrefix(line, "?"):
		// conditions are recognized but not evaluated
		*out = append(*out, "[cond] "+line)
		return nil

	case line == "/reset":
		e.Reset()
		*out = append(*out, "[ok] all state reset")
		return nil

	case line == "/state":
		*out = append(*out, e.State())
		return nil

	case strings.HasPrefix(line, "/sim"):
		return e.simulate(line, out)

	case strings.HasPrefix(line, "/plan"):
		return e.plan(line, out)

	case hasAnyPrefix(line, "while", "for", "until", "¢."):
		*out = append(*out, "[todo] "+truncate(line, 30)+"...")
		return nil

	case strings.HasPrefix(line, "#¢"):
		return e.record(line, out)

	case line == "exit" || line == "quit" || line == "退出":
		// the engine only announces; terminating the loop is the host's job
		*out = append(*out, "[bye]")
		return nil
	}

	*out = append(*out, "[?] unknown syntax: "+truncate(line, 40))
	return nil
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
