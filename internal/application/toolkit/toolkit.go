// Package toolkit implements the deterministic calculation helpers of
// OptiScale: cost profiling over raw billing CSV text, savings
// projection, scenario comparison and executive summary outlining.
//
// Every function is pure and stateless. Callers (CLI, agent runners)
// invoke them in any order, concurrently if they wish; each call
// operates only on its arguments and returns a freshly allocated
// result or a sentinel error from internal/shared/types.
package toolkit

import "github.com/shopspring/decimal"

// round2 arredonda um valor monetário para 2 casas decimais.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
