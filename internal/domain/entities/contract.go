package entities

import "time"

// ContractStatus represents the lifecycle of a rental contract.
//
// Domain notes:
//   - The contracts-service is the source of truth for contract state.
//   - Transitions are monotonic and guarded; see internal/domain/lifecycle.

type ContractStatus string

const (
	ContractStatusDraft             ContractStatus = "draft"
	ContractStatusPendingSignatures ContractStatus = "pending_signatures"
	ContractStatusActive            ContractStatus = "active"
	ContractStatusExpired           ContractStatus = "expired"
	ContractStatusTerminated        ContractStatus = "terminated"
	ContractStatusCancelled         ContractStatus = "cancelled"
)

// PaymentFrequency is how often rent is due.
type PaymentFrequency string

const (
	PaymentFrequencyMonthly  PaymentFrequency = "monthly"
	PaymentFrequencyBiweekly PaymentFrequency = "biweekly"
	PaymentFrequencyWeekly   PaymentFrequency = "weekly"
)

// MaintenanceResponsibility says which party handles property maintenance.
type MaintenanceResponsibility string

const (
	MaintenanceTenant MaintenanceResponsibility = "tenant"
	MaintenanceHoster MaintenanceResponsibility = "hoster"
	MaintenanceShared MaintenanceResponsibility = "shared"
)

// Party identifies one side of the contract (tenant or hoster).
type Party struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	GovernmentID string `json:"governmentId"`
}

// Guarantor is an additional signatory backing the tenant's obligations.
type Guarantor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	GovernmentID string `json:"governmentId"`
}

// GuarantorSignature records one guarantor's signature state.
type GuarantorSignature struct {
	Signed   bool       `json:"signed"`
	SignedAt *time.Time `json:"signedAt,omitempty"`
}

// Signatures tracks which required parties have signed.
//
// Required set = tenant + hoster + every guarantor on the contract.
type Signatures struct {
	TenantSigned   bool                          `json:"tenantSigned"`
	TenantSignedAt *time.Time                    `json:"tenantSignedAt,omitempty"`
	HosterSigned   bool                          `json:"hosterSigned"`
	HosterSignedAt *time.Time                    `json:"hosterSignedAt,omitempty"`
	Guarantors     map[string]GuarantorSignature `json:"guarantors,omitempty"`
}

// LateFee is the optional penalty applied after the grace period.
type LateFee struct {
	Amount    float64 `json:"amount"`
	GraceDays int     `json:"graceDays"`
}

// PetPolicy, SmokingPolicy and GuestPolicy are structured occupancy rules.
type PetPolicy struct {
	Allowed bool    `json:"allowed"`
	Deposit float64 `json:"deposit,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}

type SmokingPolicy struct {
	Allowed bool   `json:"allowed"`
	Notes   string `json:"notes,omitempty"`
}

type GuestPolicy struct {
	Allowed              bool   `json:"allowed"`
	MaxConsecutiveNights int    `json:"maxConsecutiveNights,omitempty"`
	Notes                string `json:"notes,omitempty"`
}

// RenewalTerms describes how the contract may roll over at expiry.
type RenewalTerms struct {
	Automatic           bool    `json:"automatic"`
	NoticePeriodDays    int     `json:"noticePeriodDays"`
	RentIncreasePercent float64 `json:"rentIncreasePercent"`
}

// ContractTerms carries the negotiated financial and policy terms.
type ContractTerms struct {
	RentAmount        float64                   `json:"rentAmount"`
	DepositAmount     float64                   `json:"depositAmount"`
	PaymentFrequency  PaymentFrequency          `json:"paymentFrequency"`
	PaymentDueDay     int                       `json:"paymentDueDay"`
	LateFee           *LateFee                  `json:"lateFee,omitempty"`
	UtilitiesIncluded []string                  `json:"utilitiesIncluded,omitempty"`
	Maintenance       MaintenanceResponsibility `json:"maintenance"`
	Pets              PetPolicy                 `json:"pets"`
	Smoking           SmokingPolicy             `json:"smoking"`
	Guests            GuestPolicy               `json:"guests"`
	Renewal           *RenewalTerms             `json:"renewal,omitempty"`
}

// Contract is the central aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (property_id-index): property_id
//
// Invariant: StartDate < EndDate for the nominal term.
type Contract struct {
	ID         string      `json:"id"`
	PropertyID string      `json:"propertyId"`
	Tenant     Party       `json:"tenant"`
	Hoster     Party       `json:"hoster"`
	Guarantors []Guarantor `json:"guarantors,omitempty"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	Terms      ContractTerms  `json:"terms"`
	Signatures Signatures     `json:"signatures"`
	Status     ContractStatus `json:"status"`

	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	SignedAt          *time.Time `json:"signedAt,omitempty"`
	ActivatedAt       *time.Time `json:"activatedAt,omitempty"`
	TerminatedAt      *time.Time `json:"terminatedAt,omitempty"`
	TerminationReason string     `json:"terminationReason,omitempty"`
	RenewalCount      int        `json:"renewalCount,omitempty"`

	Payments     []ContractPayment  `json:"payments,omitempty"`
	Documents    []ContractDocument `json:"documents,omitempty"`
	Clauses      []string           `json:"clauses,omitempty"`
	CustomFields map[string]string  `json:"customFields,omitempty"`
}

// Terminal reports whether no further lifecycle action can apply.
func (s ContractStatus) Terminal() bool {
	switch s {
	case ContractStatusExpired, ContractStatusTerminated, ContractStatusCancelled:
		return true
	}
	return false
}
