package request

import (
	"encoding/json"
	"time"
)

// RecordPaymentRequest records one rent installment. A gatewayPayload sends
// the charge through the configured payment provider; without one the
// installment is created pending (offline collection).
type RecordPaymentRequest struct {
	Amount         float64         `json:"amount"`
	DueDate        time.Time       `json:"dueDate" binding:"required"`
	Method         string          `json:"method"`
	Reference      string          `json:"reference"`
	GatewayPayload json.RawMessage `json:"gatewayPayload"`
}

type UpdatePaymentRequest struct {
	Status    *string    `json:"status"`
	PaidDate  *time.Time `json:"paidDate"`
	Reference *string    `json:"reference"`
}
