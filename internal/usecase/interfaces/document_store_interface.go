package interfaces

import "context"

// IDocumentStore abstracts binary storage for uploaded contract documents.
// Metadata lives on the contract aggregate; only the bytes live here.
type IDocumentStore interface {
	Put(ctx context.Context, contractID, documentID, contentType string, body []byte) error
	Get(ctx context.Context, contractID, documentID string) (body []byte, contentType string, err error)
	Delete(ctx context.Context, contractID, documentID string) error
}
