package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/domain/lifecycle"
	"leaseflow/internal/infrastructure/metrics"
	"leaseflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound        = errors.New("contract not found")
	ErrTemplateNotFound        = errors.New("template not found")
	ErrInvalidContractID       = errors.New("invalid contract id")
	ErrInvalidDateRange        = errors.New("start date must be before end date")
	ErrInvalidRentAmount       = errors.New("rent amount must be positive")
	ErrInvalidDepositAmount    = errors.New("deposit amount must not be negative")
	ErrInvalidPaymentFrequency = errors.New("invalid payment frequency")
	ErrInvalidPaymentDueDay    = errors.New("payment due day must be between 1 and 31")
	ErrInvalidMaintenance      = errors.New("invalid maintenance responsibility")
	ErrMissingParty            = errors.New("tenant and hoster are required")
	ErrMissingGuarantorID      = errors.New("guarantor id is required")
	ErrContractNotEditable     = errors.New("contract terms can only change while draft")
	ErrContractNotDeletable    = errors.New("only draft or cancelled contracts can be deleted")
)

// CreateContractInput is the domain command assembled by the HTTP layer.
// When TemplateID is set, terms and clauses default from the template and
// Terms may be nil.
type CreateContractInput struct {
	PropertyID   string
	TemplateID   string
	Tenant       entities.Party
	Hoster       entities.Party
	Guarantors   []entities.Guarantor
	StartDate    time.Time
	EndDate      time.Time
	Terms        *entities.ContractTerms
	Clauses      []string
	CustomFields map[string]string
}

// UpdateContractInput carries a partial update; nil fields are left alone.
type UpdateContractInput struct {
	StartDate    *time.Time
	EndDate      *time.Time
	Terms        *entities.ContractTerms
	Guarantors   *[]entities.Guarantor
	Clauses      *[]string
	CustomFields map[string]string
}

// SearchResult is one page of contracts plus the unpaginated total.
type SearchResult struct {
	Contracts []entities.Contract
	Total     int
	Page      int
	Limit     int
}

// IContractUseCase exposes contract CRUD plus every lifecycle action.
//
// Lifecycle actions load the aggregate, run the pure transition from
// internal/domain/lifecycle, persist the result and append an audit event.
// A rejected transition leaves stored state untouched.

type IContractUseCase interface {
	Create(ctx context.Context, in CreateContractInput) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Update(ctx context.Context, id string, in UpdateContractInput) (entities.Contract, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q interfaces.ContractQuery) (SearchResult, error)
	SendForSignatures(ctx context.Context, id string) (entities.Contract, error)
	Sign(ctx context.Context, id string, sigType lifecycle.SignatureType, guarantorID, signature string) (entities.Contract, error)
	Activate(ctx context.Context, id string) (entities.Contract, error)
	Terminate(ctx context.Context, id, reason string) (entities.Contract, error)
	Renew(ctx context.Context, id string, newEndDate time.Time, newTerms *entities.ContractTerms) (entities.Contract, error)
	Cancel(ctx context.Context, id string) (entities.Contract, error)
	ListEvents(ctx context.Context, id string) ([]entities.ContractEvent, error)
	ListTemplates(ctx context.Context) ([]entities.ContractTemplate, error)
	GetTemplate(ctx context.Context, id string) (entities.ContractTemplate, error)
}

type ContractUseCase struct {
	repo      interfaces.IContractRepository
	templates interfaces.IContractTemplateRepository
	notifier  INotificationEmitter
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, templates interfaces.IContractTemplateRepository, notifier INotificationEmitter) *ContractUseCase {
	return &ContractUseCase{repo: repo, templates: templates, notifier: notifier}
}

func (u *ContractUseCase) Create(ctx context.Context, in CreateContractInput) (entities.Contract, error) {
	in.PropertyID = strings.TrimSpace(in.PropertyID)

	terms := in.Terms
	clauses := in.Clauses
	if templateID := strings.TrimSpace(in.TemplateID); templateID != "" {
		if u.templates == nil {
			return entities.Contract{}, ErrTemplateNotFound
		}
		tpl, err := u.templates.GetByID(ctx, templateID)
		if err != nil {
			return entities.Contract{}, err
		}
		if tpl.ID == "" {
			return entities.Contract{}, ErrTemplateNotFound
		}
		if terms == nil {
			t := tpl.Terms
			terms = &t
		}
		if len(clauses) == 0 {
			clauses = tpl.Clauses
		}
	}
	if terms == nil {
		return entities.Contract{}, ErrInvalidRentAmount
	}

	if err := validateCreate(in, *terms); err != nil {
		return entities.Contract{}, err
	}

	now := time.Now().UTC()
	c := entities.Contract{
		ID:           uuid.NewString(),
		PropertyID:   in.PropertyID,
		Tenant:       in.Tenant,
		Hoster:       in.Hoster,
		Guarantors:   in.Guarantors,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Terms:        *terms,
		Status:       entities.ContractStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
		Clauses:      clauses,
		CustomFields: in.CustomFields,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	u.appendEvent(ctx, created, entities.EventContractCreated, "contract created as draft", nil)
	return created, nil
}

func validateCreate(in CreateContractInput, terms entities.ContractTerms) error {
	if in.Tenant.Name == "" || in.Hoster.Name == "" {
		return ErrMissingParty
	}
	for _, g := range in.Guarantors {
		if strings.TrimSpace(g.ID) == "" {
			return ErrMissingGuarantorID
		}
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() || !in.StartDate.Before(in.EndDate) {
		return ErrInvalidDateRange
	}
	return validateTerms(terms)
}

func validateTerms(terms entities.ContractTerms) error {
	if terms.RentAmount <= 0 {
		return ErrInvalidRentAmount
	}
	if terms.DepositAmount < 0 {
		return ErrInvalidDepositAmount
	}
	switch terms.PaymentFrequency {
	case entities.PaymentFrequencyMonthly, entities.PaymentFrequencyBiweekly, entities.PaymentFrequencyWeekly:
	default:
		return ErrInvalidPaymentFrequency
	}
	if terms.PaymentDueDay < 1 || terms.PaymentDueDay > 31 {
		return ErrInvalidPaymentDueDay
	}
	switch terms.Maintenance {
	case entities.MaintenanceTenant, entities.MaintenanceHoster, entities.MaintenanceShared:
	default:
		return ErrInvalidMaintenance
	}
	return nil
}

// GetByID also sweeps an active contract past its end date to expired, so
// reads never serve a stale active status.
func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return u.sweepExpired(ctx, c), nil
}

func (u *ContractUseCase) sweepExpired(ctx context.Context, c entities.Contract) entities.Contract {
	now := time.Now().UTC()
	if c.Status != entities.ContractStatusActive || now.Before(c.EndDate) {
		return c
	}
	expired, err := lifecycle.Expire(c, now)
	if err != nil {
		return c
	}
	saved, err := u.repo.Save(ctx, expired)
	if err != nil {
		// Serve the derived state even if the sweep write failed.
		return expired
	}
	u.appendEvent(ctx, saved, entities.EventContractExpired, "contract reached its end date", nil)
	metrics.ContractTransitions.WithLabelValues("expire").Inc()
	return saved
}

func (u *ContractUseCase) Update(ctx context.Context, id string, in UpdateContractInput) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}

	touchesTerms := in.Terms != nil || in.StartDate != nil || in.EndDate != nil || in.Guarantors != nil
	if touchesTerms && c.Status != entities.ContractStatusDraft {
		return entities.Contract{}, ErrContractNotEditable
	}

	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = *in.EndDate
	}
	if !c.StartDate.Before(c.EndDate) {
		return entities.Contract{}, ErrInvalidDateRange
	}
	if in.Terms != nil {
		if err := validateTerms(*in.Terms); err != nil {
			return entities.Contract{}, err
		}
		c.Terms = *in.Terms
	}
	if in.Guarantors != nil {
		for _, g := range *in.Guarantors {
			if strings.TrimSpace(g.ID) == "" {
				return entities.Contract{}, ErrMissingGuarantorID
			}
		}
		c.Guarantors = *in.Guarantors
	}
	if in.Clauses != nil {
		c.Clauses = *in.Clauses
	}
	for k, v := range in.CustomFields {
		if c.CustomFields == nil {
			c.CustomFields = map[string]string{}
		}
		c.CustomFields[k] = v
	}

	c.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	u.appendEvent(ctx, saved, entities.EventContractUpdated, "contract updated", nil)
	return saved, nil
}

func (u *ContractUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch c.Status {
	case entities.ContractStatusDraft, entities.ContractStatusCancelled:
	default:
		return ErrContractNotDeletable
	}
	return u.repo.Delete(ctx, c.ID)
}

func (u *ContractUseCase) Search(ctx context.Context, q interfaces.ContractQuery) (SearchResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	contracts, total, err := u.repo.Search(ctx, q)
	if err != nil {
		return SearchResult{}, err
	}
	for i := range contracts {
		contracts[i] = u.sweepExpired(ctx, contracts[i])
	}
	return SearchResult{Contracts: contracts, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (u *ContractUseCase) SendForSignatures(ctx context.Context, id string) (entities.Contract, error) {
	return u.transition(ctx, id, "send_for_signatures", entities.EventSentForSignatures, "contract sent out for signatures",
		func(c entities.Contract, now time.Time) (entities.Contract, error) {
			return lifecycle.SendForSignatures(c, now)
		},
		func(c entities.Contract) *entities.ContractNotification {
			return &entities.ContractNotification{
				ContractID: c.ID,
				Type:       entities.NotificationSignatureRequested,
				Recipient:  c.Tenant.Email,
				Message:    fmt.Sprintf("Contract %s is ready for your signature", c.ID),
			}
		})
}

func (u *ContractUseCase) Sign(ctx context.Context, id string, sigType lifecycle.SignatureType, guarantorID, signature string) (entities.Contract, error) {
	data := map[string]string{"signatureType": string(sigType)}
	if guarantorID != "" {
		data["guarantorId"] = guarantorID
	}
	if signature != "" {
		data["signature"] = signature
	}
	return u.transition(ctx, id, "sign", entities.EventPartySigned, fmt.Sprintf("%s signed", sigType),
		func(c entities.Contract, now time.Time) (entities.Contract, error) {
			return lifecycle.Sign(c, sigType, guarantorID, now)
		}, nil, withEventData(data))
}

func (u *ContractUseCase) Activate(ctx context.Context, id string) (entities.Contract, error) {
	return u.transition(ctx, id, "activate", entities.EventContractActivated, "contract activated",
		lifecycle.Activate,
		func(c entities.Contract) *entities.ContractNotification {
			return &entities.ContractNotification{
				ContractID: c.ID,
				Type:       entities.NotificationContractActivated,
				Recipient:  c.Tenant.Email,
				Message:    fmt.Sprintf("Contract %s is now active", c.ID),
			}
		})
}

func (u *ContractUseCase) Terminate(ctx context.Context, id, reason string) (entities.Contract, error) {
	reason = strings.TrimSpace(reason)
	return u.transition(ctx, id, "terminate", entities.EventContractEnded, "contract terminated",
		func(c entities.Contract, now time.Time) (entities.Contract, error) {
			return lifecycle.Terminate(c, reason, now)
		},
		func(c entities.Contract) *entities.ContractNotification {
			return &entities.ContractNotification{
				ContractID: c.ID,
				Type:       entities.NotificationContractTerminated,
				Recipient:  c.Tenant.Email,
				Message:    fmt.Sprintf("Contract %s was terminated: %s", c.ID, reason),
			}
		}, withEventData(map[string]string{"reason": reason}))
}

func (u *ContractUseCase) Renew(ctx context.Context, id string, newEndDate time.Time, newTerms *entities.ContractTerms) (entities.Contract, error) {
	if newTerms != nil {
		if err := validateTerms(*newTerms); err != nil {
			return entities.Contract{}, err
		}
	}
	return u.transition(ctx, id, "renew", entities.EventContractRenewed, "contract renewed",
		func(c entities.Contract, now time.Time) (entities.Contract, error) {
			return lifecycle.Renew(c, newEndDate, newTerms, now)
		},
		func(c entities.Contract) *entities.ContractNotification {
			return &entities.ContractNotification{
				ContractID: c.ID,
				Type:       entities.NotificationContractRenewed,
				Recipient:  c.Tenant.Email,
				Message:    fmt.Sprintf("Contract %s renewed until %s", c.ID, newEndDate.Format("2006-01-02")),
			}
		}, withEventData(map[string]string{"newEndDate": newEndDate.Format(time.RFC3339Nano)}))
}

func (u *ContractUseCase) Cancel(ctx context.Context, id string) (entities.Contract, error) {
	return u.transition(ctx, id, "cancel", entities.EventContractCancelled, "contract cancelled before activation",
		lifecycle.Cancel, nil)
}

type transitionOption func(*entities.ContractEvent)

func withEventData(data map[string]string) transitionOption {
	return func(e *entities.ContractEvent) { e.Data = data }
}

func (u *ContractUseCase) transition(
	ctx context.Context,
	id, action, eventType, description string,
	apply func(entities.Contract, time.Time) (entities.Contract, error),
	notification func(entities.Contract) *entities.ContractNotification,
	opts ...transitionOption,
) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}

	next, err := apply(c, time.Now().UTC())
	if err != nil {
		return entities.Contract{}, err
	}

	saved, err := u.repo.Save(ctx, next)
	if err != nil {
		return entities.Contract{}, err
	}
	metrics.ContractTransitions.WithLabelValues(action).Inc()

	event := entities.ContractEvent{Type: eventType, Description: description}
	for _, opt := range opts {
		opt(&event)
	}
	u.appendEvent(ctx, saved, event.Type, event.Description, event.Data)

	if notification != nil && u.notifier != nil {
		if n := notification(saved); n != nil {
			u.notifier.Emit(ctx, *n)
		}
	}
	return saved, nil
}

func (u *ContractUseCase) appendEvent(ctx context.Context, c entities.Contract, eventType, description string, data map[string]string) {
	_ = u.repo.AppendEvent(ctx, entities.ContractEvent{
		ID:          uuid.NewString(),
		ContractID:  c.ID,
		Type:        eventType,
		Description: description,
		Timestamp:   time.Now().UTC(),
		Data:        data,
	})
}

func (u *ContractUseCase) ListEvents(ctx context.Context, id string) ([]entities.ContractEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidContractID
	}
	return u.repo.ListEvents(ctx, id)
}

func (u *ContractUseCase) ListTemplates(ctx context.Context) ([]entities.ContractTemplate, error) {
	return u.templates.List(ctx)
}

func (u *ContractUseCase) GetTemplate(ctx context.Context, id string) (entities.ContractTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractTemplate{}, ErrTemplateNotFound
	}
	tpl, err := u.templates.GetByID(ctx, id)
	if err != nil {
		return entities.ContractTemplate{}, err
	}
	if tpl.ID == "" {
		return entities.ContractTemplate{}, ErrTemplateNotFound
	}
	return tpl, nil
}
