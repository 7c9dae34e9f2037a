package pricing

// Token defines how many tokens one draw consumes. The interpreter's fixed
// ¥160-per-draw economy is the default; presets of a different game could
// carry their own.
type Token struct {
	Name       string // e.g. "primogem"
	PerDraw    int
	PerTenDraw int // optional bundle rate; 0 means 10 * PerDraw
}

// Default is the language's built-in economy: 160 per draw, no bundle rate.
func Default() Token {
	return Token{Name: "token", PerDraw: 160}
}

// TokensForDraws returns how many tokens n draws cost, applying the ten-draw
// bundle rate to whole tens when one is configured.
func (t Token) TokensForDraws(n int) int {
	if n <= 0 {
		return 0
	}
	if t.PerTenDraw > 0 && n >= 10 {
		tens, rem := n/10, n%10
		return tens*t.PerTenDraw + rem*t.PerDraw
	}
	return n * t.PerDraw
}

// DrawsForTokens is the inverse direction: how many draws a token balance
// buys, preferring bundle rates when they are cheaper.
func (t Token) DrawsForTokens(tokens int) int {
	if tokens <= 0 || t.PerDraw <= 0 {
		return 0
	}
	if t.PerTenDraw > 0 && t.PerTenDraw < 10*t.PerDraw {
		tens := tokens / t.PerTenDraw
		rem := (tokens % t.PerTenDraw) / t.PerDraw
		return tens*10 + rem
	}
	return tokens / t.PerDraw
}
