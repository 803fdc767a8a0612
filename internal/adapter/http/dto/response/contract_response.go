package response

import (
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/domain/lifecycle"
)

// SignatureProgress is the derived completed/total counter shown next to a
// contract awaiting signatures.
type SignatureProgress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Ratio     float64 `json:"ratio"`
}

// ContractResponse is the contract aggregate plus the derived fields every
// client needs to render it: signature progress, expiry countdown and the
// lifecycle actions currently legal.
type ContractResponse struct {
	entities.Contract
	SignatureProgress   SignatureProgress          `json:"signatureProgress"`
	IsExpiringSoon      bool                       `json:"isExpiringSoon"`
	DaysUntilExpiration int                        `json:"daysUntilExpiration"`
	AvailableActions    []string                   `json:"availableActions"`
	OverduePayments     []entities.ContractPayment `json:"overduePayments,omitempty"`
	NextPayment         *entities.ContractPayment  `json:"nextPayment,omitempty"`
}

func FromContract(c entities.Contract, now time.Time) ContractResponse {
	completed := lifecycle.CompletedSignatures(c)
	total := lifecycle.RequiredSignatures(c)

	actions := lifecycle.AvailableActions(c, now)
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}

	resp := ContractResponse{
		Contract: c,
		SignatureProgress: SignatureProgress{
			Completed: completed,
			Total:     total,
			Ratio:     lifecycle.SignatureProgress(c),
		},
		IsExpiringSoon:      lifecycle.IsExpiringSoon(c, now),
		DaysUntilExpiration: lifecycle.DaysUntilExpiration(c, now),
		AvailableActions:    names,
		OverduePayments:     lifecycle.OverduePayments(c, now),
	}
	if next, ok := lifecycle.NextPayment(c); ok {
		resp.NextPayment = &next
	}
	return resp
}

func FromContracts(contracts []entities.Contract, now time.Time) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c, now))
	}
	return out
}

// SearchContractsResponse is one page of contracts plus paging metadata.
type SearchContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
