package entities

import "time"

// NotificationType classifies contract notifications shown to hosters/tenants.
type NotificationType string

const (
	NotificationSignatureRequested NotificationType = "signature_requested"
	NotificationContractActivated  NotificationType = "contract_activated"
	NotificationContractExpiring   NotificationType = "contract_expiring"
	NotificationContractTerminated NotificationType = "contract_terminated"
	NotificationContractRenewed    NotificationType = "contract_renewed"
	NotificationPaymentOverdue     NotificationType = "payment_overdue"
)

// ContractNotification is a persisted notification, optionally also delivered
// by email when a sender is configured.
type ContractNotification struct {
	ID           string           `json:"id"`
	ContractID   string           `json:"contractId"`
	Type         NotificationType `json:"type"`
	Recipient    string           `json:"recipient,omitempty"`
	Message      string           `json:"message"`
	Read         bool             `json:"read"`
	ScheduledFor *time.Time       `json:"scheduledFor,omitempty"`
	SentAt       *time.Time       `json:"sentAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}
