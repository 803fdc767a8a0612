package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"leaseflow/internal/domain/entities"
)

// Action is a lifecycle action a caller may attempt on a contract.
type Action string

const (
	ActionSendForSignatures Action = "send_for_signatures"
	ActionActivate          Action = "activate"
	ActionTerminate         Action = "terminate"
	ActionRenew             Action = "renew"
	ActionCancel            Action = "cancel"
)

// SignatureType identifies which party is signing.
type SignatureType string

const (
	SignatureTenant    SignatureType = "tenant"
	SignatureHoster    SignatureType = "hoster"
	SignatureGuarantor SignatureType = "guarantor"
)

var (
	ErrInvalidTransition          = errors.New("invalid transition")
	ErrAlreadySigned              = errors.New("party has already signed")
	ErrUnknownGuarantor           = errors.New("unknown guarantor")
	ErrUnknownSignatureType       = errors.New("unknown signature type")
	ErrSignaturesIncomplete       = errors.New("required signatures incomplete")
	ErrTerminationReasonRequired  = errors.New("termination reason is required")
	ErrRenewalEndDateNotExtending = errors.New("renewal end date does not extend the contract")
)

func invalidTransition(from entities.ContractStatus, action Action) error {
	return fmt.Errorf("%w: cannot %s a %s contract", ErrInvalidTransition, action, from)
}

// RenewExpiringWindow is how close to the end date an active contract must be
// before renewal shows up as an available action.
const RenewExpiringWindow = 30 * 24 * time.Hour

// All transition functions take the contract by value and return the updated
// copy; a rejected action returns the zero contract and never mutates state.

// SendForSignatures moves a draft out for signing.
func SendForSignatures(c entities.Contract, now time.Time) (entities.Contract, error) {
	if c.Status != entities.ContractStatusDraft {
		return entities.Contract{}, invalidTransition(c.Status, ActionSendForSignatures)
	}
	c.Status = entities.ContractStatusPendingSignatures
	c.UpdatedAt = now
	return c, nil
}

// Sign records one party's signature. The contract stays in
// pending_signatures; activation is an explicit separate action.
func Sign(c entities.Contract, sigType SignatureType, guarantorID string, now time.Time) (entities.Contract, error) {
	if c.Status != entities.ContractStatusPendingSignatures {
		return entities.Contract{}, invalidTransition(c.Status, Action("sign"))
	}

	switch sigType {
	case SignatureTenant:
		if c.Signatures.TenantSigned {
			return entities.Contract{}, ErrAlreadySigned
		}
		c.Signatures.TenantSigned = true
		ts := now
		c.Signatures.TenantSignedAt = &ts
	case SignatureHoster:
		if c.Signatures.HosterSigned {
			return entities.Contract{}, ErrAlreadySigned
		}
		c.Signatures.HosterSigned = true
		ts := now
		c.Signatures.HosterSignedAt = &ts
	case SignatureGuarantor:
		found := false
		for _, g := range c.Guarantors {
			if g.ID == guarantorID {
				found = true
				break
			}
		}
		if !found {
			return entities.Contract{}, ErrUnknownGuarantor
		}
		if sig, ok := c.Signatures.Guarantors[guarantorID]; ok && sig.Signed {
			return entities.Contract{}, ErrAlreadySigned
		}
		sigs := make(map[string]entities.GuarantorSignature, len(c.Signatures.Guarantors)+1)
		for k, v := range c.Signatures.Guarantors {
			sigs[k] = v
		}
		ts := now
		sigs[guarantorID] = entities.GuarantorSignature{Signed: true, SignedAt: &ts}
		c.Signatures.Guarantors = sigs
	default:
		return entities.Contract{}, ErrUnknownSignatureType
	}

	if AllSigned(c) {
		ts := now
		c.SignedAt = &ts
	}
	c.UpdatedAt = now
	return c, nil
}

// Activate moves a fully signed contract into force.
func Activate(c entities.Contract, now time.Time) (entities.Contract, error) {
	if c.Status != entities.ContractStatusPendingSignatures {
		return entities.Contract{}, invalidTransition(c.Status, ActionActivate)
	}
	if !AllSigned(c) {
		return entities.Contract{}, fmt.Errorf("%w: %s", ErrInvalidTransition, ErrSignaturesIncomplete)
	}
	c.Status = entities.ContractStatusActive
	ts := now
	c.ActivatedAt = &ts
	c.UpdatedAt = now
	return c, nil
}

// Terminate ends an active contract early. The reason is mandatory.
func Terminate(c entities.Contract, reason string, now time.Time) (entities.Contract, error) {
	if c.Status != entities.ContractStatusActive {
		return entities.Contract{}, invalidTransition(c.Status, ActionTerminate)
	}
	if reason == "" {
		return entities.Contract{}, ErrTerminationReasonRequired
	}
	c.Status = entities.ContractStatusTerminated
	ts := now
	c.TerminatedAt = &ts
	c.TerminationReason = reason
	c.UpdatedAt = now
	return c, nil
}

// Expire marks an active contract whose end date has passed. Callers use it
// as a read-time sweep; it is a no-op error outside active.
func Expire(c entities.Contract, now time.Time) (entities.Contract, error) {
	if c.Status != entities.ContractStatusActive {
		return entities.Contract{}, invalidTransition(c.Status, Action("expire"))
	}
	if now.Before(c.EndDate) {
		return entities.Contract{}, fmt.Errorf("%w: contract has not reached its end date", ErrInvalidTransition)
	}
	c.Status = entities.ContractStatusExpired
	c.UpdatedAt = now
	return c, nil
}

// Renew extends the same aggregate: the end date (and optionally the terms)
// are replaced in place and the contract returns to active. No new contract
// row is created.
func Renew(c entities.Contract, newEndDate time.Time, newTerms *entities.ContractTerms, now time.Time) (entities.Contract, error) {
	switch c.Status {
	case entities.ContractStatusActive:
		if !newEndDate.After(c.EndDate) {
			return entities.Contract{}, ErrRenewalEndDateNotExtending
		}
	case entities.ContractStatusExpired:
		if !newEndDate.After(now) {
			return entities.Contract{}, ErrRenewalEndDateNotExtending
		}
	default:
		return entities.Contract{}, invalidTransition(c.Status, ActionRenew)
	}

	c.Status = entities.ContractStatusActive
	c.EndDate = newEndDate
	if newTerms != nil {
		c.Terms = *newTerms
	}
	c.RenewalCount++
	c.UpdatedAt = now
	return c, nil
}

// Cancel abandons a contract before it ever became active.
func Cancel(c entities.Contract, now time.Time) (entities.Contract, error) {
	switch c.Status {
	case entities.ContractStatusDraft, entities.ContractStatusPendingSignatures:
	default:
		return entities.Contract{}, invalidTransition(c.Status, ActionCancel)
	}
	c.Status = entities.ContractStatusCancelled
	c.UpdatedAt = now
	return c, nil
}

// AvailableActions lists the actions a UI should offer for the contract's
// current state. Per-party signing is not listed; it happens through the
// sign endpoint directly.
func AvailableActions(c entities.Contract, now time.Time) []Action {
	switch c.Status {
	case entities.ContractStatusDraft:
		return []Action{ActionSendForSignatures, ActionCancel}
	case entities.ContractStatusPendingSignatures:
		if AllSigned(c) {
			return []Action{ActionActivate, ActionCancel}
		}
		return []Action{ActionCancel}
	case entities.ContractStatusActive:
		actions := []Action{ActionTerminate}
		if IsExpiringSoon(c, now) {
			actions = append(actions, ActionRenew)
		}
		return actions
	case entities.ContractStatusExpired:
		return []Action{ActionRenew}
	default:
		return nil
	}
}
