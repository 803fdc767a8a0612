package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidPaymentAmount    = errors.New("invalid payment amount")
	ErrInvalidPaymentDueDate   = errors.New("invalid payment due date")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrContractNotActive       = errors.New("contract is not active")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrInvalidGatewayPayload   = errors.New("invalid payment gateway payload")
	ErrPaymentAlreadySettled   = errors.New("payment already settled")
	ErrPaymentOutsideAgreement = errors.New("payment due date falls outside the contract term")
)

// RecordPaymentInput records one rent installment. A non-empty
// GatewayPayload charges the payer through the configured provider and the
// payment lands already settled; otherwise the installment is created
// pending.
type RecordPaymentInput struct {
	Amount         float64
	DueDate        time.Time
	Method         string
	Reference      string
	GatewayPayload json.RawMessage
}

// UpdatePaymentInput partially updates one payment (typically marking it
// paid after an offline transfer, or swept overdue).
type UpdatePaymentInput struct {
	Status    *entities.PaymentStatus
	PaidDate  *time.Time
	Reference *string
}

// IPaymentUseCase manages the payments collection owned by a contract.
type IPaymentUseCase interface {
	List(ctx context.Context, contractID string) ([]entities.ContractPayment, error)
	Record(ctx context.Context, contractID string, in RecordPaymentInput) (entities.ContractPayment, error)
	Update(ctx context.Context, contractID, paymentID string, in UpdatePaymentInput) (entities.ContractPayment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IContractRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IContractRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) List(ctx context.Context, contractID string) ([]entities.ContractPayment, error) {
	c, err := u.loadContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return c.Payments, nil
}

func (u *PaymentUseCase) Record(ctx context.Context, contractID string, in RecordPaymentInput) (entities.ContractPayment, error) {
	c, err := u.loadContract(ctx, contractID)
	if err != nil {
		return entities.ContractPayment{}, err
	}
	if c.Status != entities.ContractStatusActive {
		return entities.ContractPayment{}, ErrContractNotActive
	}

	if in.Amount == 0 {
		in.Amount = c.Terms.RentAmount
	}
	if in.Amount <= 0 {
		return entities.ContractPayment{}, ErrInvalidPaymentAmount
	}
	if in.DueDate.IsZero() {
		return entities.ContractPayment{}, ErrInvalidPaymentDueDate
	}
	if in.DueDate.Before(c.StartDate) || in.DueDate.After(c.EndDate) {
		return entities.ContractPayment{}, ErrPaymentOutsideAgreement
	}

	now := time.Now().UTC()
	p := entities.ContractPayment{
		ID:        uuid.NewString(),
		Amount:    in.Amount,
		DueDate:   in.DueDate,
		Status:    entities.PaymentStatusPending,
		Method:    strings.TrimSpace(in.Method),
		Reference: strings.TrimSpace(in.Reference),
	}

	if len(in.GatewayPayload) > 0 {
		if !json.Valid(in.GatewayPayload) {
			return entities.ContractPayment{}, ErrInvalidGatewayPayload
		}
		if u.gateway == nil {
			return entities.ContractPayment{}, ErrGatewayNotConfigured
		}
		payload, err := enrichGatewayPayload(in.GatewayPayload, c, in.Amount)
		if err != nil {
			return entities.ContractPayment{}, err
		}
		providerID, _, providerResp, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			return entities.ContractPayment{}, err
		}
		p.ID = providerID
		p.Status = entities.PaymentStatusPaid
		p.PaidDate = &now
		p.GatewayPayloadRaw = providerResp
	}

	c.Payments = append(c.Payments, p)
	c.UpdatedAt = now
	if _, err := u.repo.Save(ctx, c); err != nil {
		return entities.ContractPayment{}, err
	}
	u.appendEvent(ctx, c.ID, entities.EventPaymentRecorded, fmt.Sprintf("payment of %.2f due %s recorded", p.Amount, p.DueDate.Format("2006-01-02")))
	return p, nil
}

// enrichGatewayPayload stamps the contract linkage and the authoritative
// amount onto the caller-supplied provider payload. external_reference helps
// reconcile provider events back to the contract.
func enrichGatewayPayload(raw json.RawMessage, c entities.Contract, amount float64) (json.RawMessage, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, ErrInvalidGatewayPayload
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = c.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Rent for property %s", c.PropertyID)
	}
	m["transaction_amount"] = amount
	return json.Marshal(m)
}

func (u *PaymentUseCase) Update(ctx context.Context, contractID, paymentID string, in UpdatePaymentInput) (entities.ContractPayment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.ContractPayment{}, ErrPaymentNotFound
	}

	c, err := u.loadContract(ctx, contractID)
	if err != nil {
		return entities.ContractPayment{}, err
	}

	idx := -1
	for i, p := range c.Payments {
		if p.ID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.ContractPayment{}, ErrPaymentNotFound
	}

	p := c.Payments[idx]
	if in.Status != nil {
		switch *in.Status {
		case entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentStatusOverdue:
		default:
			return entities.ContractPayment{}, ErrInvalidPaymentStatus
		}
		if p.Status == entities.PaymentStatusPaid && *in.Status != entities.PaymentStatusPaid {
			return entities.ContractPayment{}, ErrPaymentAlreadySettled
		}
		p.Status = *in.Status
	}
	if in.PaidDate != nil {
		p.PaidDate = in.PaidDate
	}
	if p.Status == entities.PaymentStatusPaid && p.PaidDate == nil {
		now := time.Now().UTC()
		p.PaidDate = &now
	}
	if in.Reference != nil {
		p.Reference = strings.TrimSpace(*in.Reference)
	}

	c.Payments[idx] = p
	c.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Save(ctx, c); err != nil {
		return entities.ContractPayment{}, err
	}
	u.appendEvent(ctx, c.ID, entities.EventPaymentUpdated, fmt.Sprintf("payment %s updated to %s", p.ID, p.Status))
	return p, nil
}

func (u *PaymentUseCase) loadContract(ctx context.Context, contractID string) (entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.repo.GetByID(ctx, contractID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *PaymentUseCase) appendEvent(ctx context.Context, contractID, eventType, description string) {
	_ = u.repo.AppendEvent(ctx, entities.ContractEvent{
		ID:          uuid.NewString(),
		ContractID:  contractID,
		Type:        eventType,
		Description: description,
		Timestamp:   time.Now().UTC(),
	})
}
