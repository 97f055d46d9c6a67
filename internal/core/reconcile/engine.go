// Package reconcile decides the authoritative count of a metric from the
// values reported by zdmp, the serving platform and the client, and prices
// the result against the campaign's terms.
package reconcile

import (
	"github.com/shopspring/decimal"

	"adrecon/internal/core/domain"
)

// Threshold converts an integer percentage into the agreement fraction.
func Threshold(percent uint32) decimal.Decimal {
	return decimal.New(int64(percent), -2)
}

// Agrees reports whether candidate lies within reference*(1±threshold),
// bounds inclusive. A zero on either side never agrees. The lower bound of
// a threshold above 100% is negative, which is the same as clamping it at
// zero since counters are never negative.
func Agrees(candidate, reference, threshold decimal.Decimal) bool {
	if candidate.IsZero() || reference.IsZero() {
		return false
	}
	tolerance := reference.Mul(threshold)
	lower := reference.Sub(tolerance)
	upper := reference.Add(tolerance)
	return candidate.GreaterThanOrEqual(lower) && candidate.LessThanOrEqual(upper)
}

// FinalCount reconciles the three reported values of k.
//
// Platform is trusted when it corroborates zdmp, otherwise zdmp wins and
// platform is the fallback when zdmp has not reported. Client then
// overrides that result when it corroborates it. With neither zdmp nor
// platform reported the previous final count of k is kept, and with no
// source reported at all the count is zero.
func FinalCount(k domain.Kpis, threshold decimal.Decimal) decimal.Decimal {
	final := k.FinalCount
	switch {
	case Agrees(k.Platform, k.ZDMP, threshold):
		final = k.Platform
	case !k.ZDMP.IsZero():
		final = k.ZDMP
	case !k.Platform.IsZero():
		final = k.Platform
	}

	if Agrees(k.Client, final, threshold) {
		return k.Client
	}
	if k.ZDMP.IsZero() && k.Platform.IsZero() && k.Client.IsZero() {
		return decimal.Zero
	}
	return final
}
