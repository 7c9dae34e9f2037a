package pricing

// Pack models a purchasable top-up SKU.
type Pack struct {
	ID          string
	Name        string
	Tokens      int  // base tokens granted
	BonusTokens int  // permanent extra tokens
	FirstTimeX2 bool // first-time purchase doubles base Tokens (not BonusTokens)
	Price       int  // price in whole ¥
}

// Catalog is a product catalog in the interpreter's ¥ currency.
type Catalog struct {
	Currency string
	Packs    []Pack
}

// FirstTimeState marks per-pack first-time x2 eligibility.
type FirstTimeState map[string]bool

// Plan summarizes a purchase plan.
type Plan struct {
	Purchases   []Purchase
	Total       int // whole ¥
	TotalTokens int
	Currency    string
}

// Purchase is one line item in a plan.
type Purchase struct {
	PackID     string
	Name       string
	Qty        int
	UnitPrice  int
	UnitTokens int
	Subtotal   int
}

// DefaultCatalog mirrors the usual six-tier top-up ladder, priced in ¥.
func DefaultCatalog() Catalog {
	return Catalog{
		Currency: "¥",
		Packs: []Pack{
			{ID: "6480", Name: "6480 Pack", Tokens: 6480, BonusTokens: 1600, FirstTimeX2: true, Price: 648},
			{ID: "3280", Name: "3280 Pack", Tokens: 3280, BonusTokens: 600, FirstTimeX2: true, Price: 328},
			{ID: "1980", Name: "1980 Pack", Tokens: 1980, BonusTokens: 260, FirstTimeX2: true, Price: 198},
			{ID: "980", Name: "980 Pack", Tokens: 980, BonusTokens: 110, FirstTimeX2: true, Price: 98},
			{ID: "300", Name: "300 Pack", Tokens: 300, BonusTokens: 30, FirstTimeX2: true, Price: 30},
			{ID: "60", Name: "60 Pack", Tokens: 60, BonusTokens: 0, FirstTimeX2: true, Price: 6},
		},
	}
}
