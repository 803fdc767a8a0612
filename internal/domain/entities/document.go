package entities

import "time"

// ContractDocument is an uploaded file attached to a contract (signed copy,
// inspection report, ID scan). The binary body lives in the document store;
// the contract only keeps metadata.
type ContractDocument struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ContractEvent is one entry in a contract's append-only audit log.
type ContractEvent struct {
	ID          string            `json:"id"`
	ContractID  string            `json:"contractId"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Actor       string            `json:"actor,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	Data        map[string]string `json:"data,omitempty"`
}

// Event types recorded by the use cases.
const (
	EventContractCreated   = "contract_created"
	EventContractUpdated   = "contract_updated"
	EventSentForSignatures = "sent_for_signatures"
	EventPartySigned       = "party_signed"
	EventContractActivated = "contract_activated"
	EventContractRenewed   = "contract_renewed"
	EventContractExpired   = "contract_expired"
	EventContractCancelled = "contract_cancelled"
	EventContractEnded     = "contract_terminated"
	EventPaymentRecorded   = "payment_recorded"
	EventPaymentUpdated    = "payment_updated"
	EventDocumentUploaded  = "document_uploaded"
	EventDocumentDeleted   = "document_deleted"
)
