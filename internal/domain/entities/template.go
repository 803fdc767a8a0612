package entities

import "time"

// ContractTemplate is a reusable set of terms and clauses hosters start new
// drafts from.
type ContractTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Terms       ContractTerms `json:"terms"`
	Clauses     []string      `json:"clauses,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
