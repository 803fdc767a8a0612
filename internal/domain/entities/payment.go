package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the stored settlement state of one rent payment.
//
// "Overdue" is primarily derived (pending + due date in the past); the server
// may also persist it explicitly after a sweep. Both forms count as overdue
// for analytics.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// ContractPayment is a single rent installment owned by a contract.
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the provider response body (JSON) for audit when
//     the payment was charged through an online gateway.
type ContractPayment struct {
	ID        string        `json:"id"`
	Amount    float64       `json:"amount"`
	DueDate   time.Time     `json:"dueDate"`
	PaidDate  *time.Time    `json:"paidDate,omitempty"`
	Status    PaymentStatus `json:"status"`
	Method    string        `json:"method,omitempty"`
	Reference string        `json:"reference,omitempty"`

	GatewayPayloadRaw json.RawMessage `json:"gatewayPayloadRaw,omitempty"`
}
