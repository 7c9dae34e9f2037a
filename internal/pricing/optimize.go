package pricing

import "sort"

// effective pack variant: a pack with its first-time doubling applied or not
type effPack struct {
	id    string
	name  string
	tok   int
	price int
}

func expandVariants(cat Catalog, first FirstTimeState) []effPack {
	var effs []effPack
	for _, p := range cat.Packs {
		base := p.Tokens + p.BonusTokens
		if p.FirstTimeX2 && first != nil && first[p.ID] {
			effs = append(effs, effPack{
				id:    p.ID + "#x2",
				name:  p.Name + " (x2)",
				tok:   p.Tokens*2 + p.BonusTokens,
				price: p.Price,
			})
		}
		effs = append(effs, effPack{id: p.ID, name: p.Name, tok: base, price: p.Price})
	}
	return effs
}

// buildPlan turns per-variant counts into a deterministic Plan, largest
// packs first.
func buildPlan(cat Catalog, counts map[effPack]int) Plan {
	plan := Plan{Currency: cat.Currency}
	for e, qty := range counts {
		sub := e.price * qty
		plan.Purchases = append(plan.Purchases, Purchase{
			PackID:     e.id,
			Name:       e.name,
			Qty:        qty,
			UnitPrice:  e.price,
			UnitTokens: e.tok,
			Subtotal:   sub,
		})
		plan.Total += sub
		plan.TotalTokens += e.tok * qty
	}
	sort.Slice(plan.Purchases, func(i, j int) bool {
		if plan.Purchases[i].UnitTokens != plan.Purchases[j].UnitTokens {
			return plan.Purchases[i].UnitTokens > plan.Purchases[j].UnitTokens
		}
		return plan.Purchases[i].PackID < plan.Purchases[j].PackID
	})
	return plan
}

// MinCostAtLeastTokens finds the cheapest pack combination granting at least
// targetTokens. Unbounded quantities; slight overshoot is allowed when it is
// cheaper than landing exactly.
func MinCostAtLeastTokens(cat Catalog, targetTokens int, first FirstTimeState) Plan {
	if targetTokens <= 0 || len(cat.Packs) == 0 {
		return Plan{Currency: cat.Currency}
	}
	effs := expandVariants(cat, first)

	maxTok := 0
	for _, e := range effs {
		if e.tok > maxTok {
			maxTok = e.tok
		}
	}
	if maxTok == 0 {
		return Plan{Currency: cat.Currency}
	}
	limit := targetTokens + maxTok

	const inf = int(^uint(0) >> 1)
	dp := make([]int, limit+1)   // min cost to reach exactly t tokens
	pick := make([]int, limit+1) // variant chosen to reach t
	prev := make([]int, limit+1)
	for t := range dp {
		dp[t], pick[t], prev[t] = inf, -1, -1
	}
	dp[0] = 0

	for t := 0; t <= limit; t++ {
		if dp[t] == inf {
			continue
		}
		for i, e := range effs {
			nt := t + e.tok
			if nt > limit {
				nt = limit
			}
			if cost := dp[t] + e.price; cost < dp[nt] {
				dp[nt], pick[nt], prev[nt] = cost, i, t
			}
		}
	}

	bestT, bestCost := targetTokens, dp[targetTokens]
	for t := targetTokens; t <= limit; t++ {
		if dp[t] < bestCost {
			bestT, bestCost = t, dp[t]
		}
	}
	if bestCost == inf {
		return Plan{Currency: cat.Currency}
	}

	counts := map[effPack]int{}
	for t := bestT; t > 0 && pick[t] != -1; t = prev[t] {
		counts[effs[pick[t]]]++
	}
	return buildPlan(cat, counts)
}

// MaxTokensUnderBudget computes the most tokens purchasable with budget ¥
// (unbounded knapsack over the pack variants).
func MaxTokensUnderBudget(cat Catalog, budget int, first FirstTimeState) Plan {
	if budget <= 0 || len(cat.Packs) == 0 {
		return Plan{Currency: cat.Currency}
	}
	effs := expandVariants(cat, first)

	dp := make([]int, budget+1) // max tokens at cost exactly c
	pick := make([]int, budget+1)
	for c := range pick {
		pick[c] = -1
	}
	for c := 0; c <= budget; c++ {
		for i, e := range effs {
			nc := c + e.price
			if nc > budget {
				continue
			}
			if val := dp[c] + e.tok; val > dp[nc] {
				dp[nc], pick[nc] = val, i
			}
		}
	}

	bestC := 0
	for c := 0; c <= budget; c++ {
		if dp[c] > dp[bestC] {
			bestC = c
		}
	}

	counts := map[effPack]int{}
	for c := bestC; c > 0 && pick[c] != -1; {
		e := effs[pick[c]]
		counts[e]++
		c -= e.price
	}
	return buildPlan(cat, counts)
}

// MinCostForDraws plans the cheapest top-up covering the tokens n draws
// need under tok's rates.
func MinCostForDraws(cat Catalog, tok Token, draws int, first FirstTimeState) Plan {
	return MinCostAtLeastTokens(cat, tok.TokensForDraws(draws), first)
}
