package lifecycle

import (
	"math"
	"time"

	"leaseflow/internal/domain/entities"
)

// Derived analytics. Every function here is pure: same contract snapshot and
// clock in, same answer out. Nothing is cached or written back.

// RequiredSignatures is tenant + hoster + every guarantor.
func RequiredSignatures(c entities.Contract) int {
	return 2 + len(c.Guarantors)
}

// CompletedSignatures counts parties that have signed so far.
func CompletedSignatures(c entities.Contract) int {
	n := 0
	if c.Signatures.TenantSigned {
		n++
	}
	if c.Signatures.HosterSigned {
		n++
	}
	for _, g := range c.Guarantors {
		if sig, ok := c.Signatures.Guarantors[g.ID]; ok && sig.Signed {
			n++
		}
	}
	return n
}

// AllSigned reports whether every required signature is present.
func AllSigned(c entities.Contract) bool {
	return CompletedSignatures(c) == RequiredSignatures(c)
}

// SignatureProgress returns completed/required as a ratio in [0,1].
func SignatureProgress(c entities.Contract) float64 {
	return float64(CompletedSignatures(c)) / float64(RequiredSignatures(c))
}

// IsExpiringSoon reports an active contract ending within the renewal window.
func IsExpiringSoon(c entities.Contract, now time.Time) bool {
	if c.Status != entities.ContractStatusActive {
		return false
	}
	return !c.EndDate.After(now.Add(RenewExpiringWindow))
}

// DaysUntilExpiration is ceil((endDate - now) / 1 day). Zero or negative
// means the nominal term is over, even if the stored status still says
// active because no sweep has run yet.
func DaysUntilExpiration(c entities.Contract, now time.Time) int {
	return int(math.Ceil(c.EndDate.Sub(now).Hours() / 24))
}

// OverduePayments filters payments that are explicitly overdue or pending
// past their due date. Preserves stored order.
func OverduePayments(c entities.Contract, now time.Time) []entities.ContractPayment {
	var out []entities.ContractPayment
	for _, p := range c.Payments {
		if p.Status == entities.PaymentStatusOverdue ||
			(p.Status == entities.PaymentStatusPending && p.DueDate.Before(now)) {
			out = append(out, p)
		}
	}
	return out
}

// NextPayment returns the pending payment with the earliest due date. Ties
// keep the payment stored first.
func NextPayment(c entities.Contract) (entities.ContractPayment, bool) {
	var next entities.ContractPayment
	found := false
	for _, p := range c.Payments {
		if p.Status != entities.PaymentStatusPending {
			continue
		}
		if !found || p.DueDate.Before(next.DueDate) {
			next = p
			found = true
		}
	}
	return next, found
}

// Portfolio aggregates a set of contracts for the hoster dashboard.
func Portfolio(contracts []entities.Contract, now time.Time) entities.PortfolioAnalytics {
	a := entities.PortfolioAnalytics{
		TotalContracts: len(contracts),
		ByStatus:       make(map[entities.ContractStatus]int),
	}

	var rentSum float64
	for _, c := range contracts {
		a.ByStatus[c.Status]++
		if c.Status == entities.ContractStatusActive {
			a.ActiveContracts++
		}
		rentSum += c.Terms.RentAmount
		for _, p := range c.Payments {
			if p.Status == entities.PaymentStatusPaid {
				a.TotalRentCollected += p.Amount
			}
		}
		if IsExpiringSoon(c, now) {
			a.ExpiringWithin30Day++
		}
		if len(OverduePayments(c, now)) > 0 {
			a.WithOverduePayments++
		}
	}

	if len(contracts) > 0 {
		a.AverageRent = rentSum / float64(len(contracts))
		a.OccupancyRate = float64(a.ActiveContracts) / float64(len(contracts)) * 100
	}
	return a
}
