package request

import (
	"strings"
	"time"

	"leaseflow/internal/domain/entities"
)

type PartyRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	GovernmentID string `json:"governmentId"`
}

type GuarantorRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	GovernmentID string `json:"governmentId"`
}

type LateFeeRequest struct {
	Amount    float64 `json:"amount"`
	GraceDays int     `json:"graceDays"`
}

type PetPolicyRequest struct {
	Allowed bool    `json:"allowed"`
	Deposit float64 `json:"deposit"`
	Notes   string  `json:"notes"`
}

type SmokingPolicyRequest struct {
	Allowed bool   `json:"allowed"`
	Notes   string `json:"notes"`
}

type GuestPolicyRequest struct {
	Allowed              bool   `json:"allowed"`
	MaxConsecutiveNights int    `json:"maxConsecutiveNights"`
	Notes                string `json:"notes"`
}

type RenewalTermsRequest struct {
	Automatic           bool    `json:"automatic"`
	NoticePeriodDays    int     `json:"noticePeriodDays"`
	RentIncreasePercent float64 `json:"rentIncreasePercent"`
}

type ContractTermsRequest struct {
	RentAmount        float64               `json:"rentAmount"`
	DepositAmount     float64               `json:"depositAmount"`
	PaymentFrequency  string                `json:"paymentFrequency"`
	PaymentDueDay     int                   `json:"paymentDueDay"`
	LateFee           *LateFeeRequest       `json:"lateFee"`
	UtilitiesIncluded []string              `json:"utilitiesIncluded"`
	Maintenance       string                `json:"maintenance"`
	Pets              *PetPolicyRequest     `json:"pets"`
	Smoking           *SmokingPolicyRequest `json:"smoking"`
	Guests            *GuestPolicyRequest   `json:"guests"`
	Renewal           *RenewalTermsRequest  `json:"renewal"`
}

// CreateContractRequest is the create payload. Either templateId or terms
// must be provided; when both are present the explicit terms win.
type CreateContractRequest struct {
	PropertyID   string                `json:"propertyId" binding:"required"`
	TemplateID   string                `json:"templateId"`
	Tenant       PartyRequest          `json:"tenant" binding:"required"`
	Hoster       PartyRequest          `json:"hoster" binding:"required"`
	Guarantors   []GuarantorRequest    `json:"guarantors"`
	StartDate    time.Time             `json:"startDate" binding:"required"`
	EndDate      time.Time             `json:"endDate" binding:"required"`
	Terms        *ContractTermsRequest `json:"terms"`
	Clauses      []string              `json:"clauses"`
	CustomFields map[string]string     `json:"customFields"`
}

// UpdateContractRequest is a partial update; absent fields are untouched.
type UpdateContractRequest struct {
	StartDate    *time.Time            `json:"startDate"`
	EndDate      *time.Time            `json:"endDate"`
	Terms        *ContractTermsRequest `json:"terms"`
	Guarantors   *[]GuarantorRequest   `json:"guarantors"`
	Clauses      *[]string             `json:"clauses"`
	CustomFields map[string]string     `json:"customFields"`
}

type SignContractRequest struct {
	SignatureType string `json:"signatureType" binding:"required"`
	GuarantorID   string `json:"guarantorId"`
	Signature     string `json:"signature"`
}

type TerminateContractRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type RenewContractRequest struct {
	NewEndDate time.Time             `json:"newEndDate" binding:"required"`
	NewTerms   *ContractTermsRequest `json:"newTerms"`
}

func (p PartyRequest) ToEntity() entities.Party {
	return entities.Party{
		Name:         strings.TrimSpace(p.Name),
		Email:        strings.TrimSpace(p.Email),
		Phone:        strings.TrimSpace(p.Phone),
		GovernmentID: strings.TrimSpace(p.GovernmentID),
	}
}

func (g GuarantorRequest) ToEntity() entities.Guarantor {
	return entities.Guarantor{
		ID:           strings.TrimSpace(g.ID),
		Name:         strings.TrimSpace(g.Name),
		Email:        strings.TrimSpace(g.Email),
		Phone:        strings.TrimSpace(g.Phone),
		GovernmentID: strings.TrimSpace(g.GovernmentID),
	}
}

func ToEntityGuarantors(in []GuarantorRequest) []entities.Guarantor {
	if in == nil {
		return nil
	}
	out := make([]entities.Guarantor, 0, len(in))
	for _, g := range in {
		out = append(out, g.ToEntity())
	}
	return out
}

func (t *ContractTermsRequest) ToEntity() *entities.ContractTerms {
	if t == nil {
		return nil
	}
	terms := entities.ContractTerms{
		RentAmount:        t.RentAmount,
		DepositAmount:     t.DepositAmount,
		PaymentFrequency:  entities.PaymentFrequency(t.PaymentFrequency),
		PaymentDueDay:     t.PaymentDueDay,
		UtilitiesIncluded: t.UtilitiesIncluded,
		Maintenance:       entities.MaintenanceResponsibility(t.Maintenance),
	}
	if t.LateFee != nil {
		terms.LateFee = &entities.LateFee{Amount: t.LateFee.Amount, GraceDays: t.LateFee.GraceDays}
	}
	if t.Pets != nil {
		terms.Pets = entities.PetPolicy{Allowed: t.Pets.Allowed, Deposit: t.Pets.Deposit, Notes: t.Pets.Notes}
	}
	if t.Smoking != nil {
		terms.Smoking = entities.SmokingPolicy{Allowed: t.Smoking.Allowed, Notes: t.Smoking.Notes}
	}
	if t.Guests != nil {
		terms.Guests = entities.GuestPolicy{
			Allowed:              t.Guests.Allowed,
			MaxConsecutiveNights: t.Guests.MaxConsecutiveNights,
			Notes:                t.Guests.Notes,
		}
	}
	if t.Renewal != nil {
		terms.Renewal = &entities.RenewalTerms{
			Automatic:           t.Renewal.Automatic,
			NoticePeriodDays:    t.Renewal.NoticePeriodDays,
			RentIncreasePercent: t.Renewal.RentIncreasePercent,
		}
	}
	return &terms
}
