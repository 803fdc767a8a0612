package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/infrastructure/pdf"
	"leaseflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrEmptyDocument    = errors.New("document body is empty")
	ErrDocumentTooLarge = errors.New("document exceeds the size limit")
)

// maxDocumentSize caps uploads; document bodies are stored as single
// DynamoDB binary attributes, which carry a 400KB item limit.
const maxDocumentSize = 350 * 1024

// IDocumentUseCase manages uploaded files and contract PDF rendering.
type IDocumentUseCase interface {
	Upload(ctx context.Context, contractID, name, docType, contentType string, body []byte) (entities.ContractDocument, error)
	Download(ctx context.Context, contractID, documentID string) (entities.ContractDocument, []byte, error)
	Delete(ctx context.Context, contractID, documentID string) error
	RenderPDF(ctx context.Context, contractID string) ([]byte, error)
}

type DocumentUseCase struct {
	repo  interfaces.IContractRepository
	store interfaces.IDocumentStore
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IContractRepository, store interfaces.IDocumentStore) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, store: store}
}

func (u *DocumentUseCase) Upload(ctx context.Context, contractID, name, docType, contentType string, body []byte) (entities.ContractDocument, error) {
	if len(body) == 0 {
		return entities.ContractDocument{}, ErrEmptyDocument
	}
	if len(body) > maxDocumentSize {
		return entities.ContractDocument{}, ErrDocumentTooLarge
	}

	c, err := u.loadContract(ctx, contractID)
	if err != nil {
		return entities.ContractDocument{}, err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	doc := entities.ContractDocument{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Type:        strings.TrimSpace(docType),
		ContentType: contentType,
		Size:        int64(len(body)),
		UploadedAt:  time.Now().UTC(),
	}
	if doc.Name == "" {
		doc.Name = doc.ID
	}

	if err := u.store.Put(ctx, c.ID, doc.ID, contentType, body); err != nil {
		return entities.ContractDocument{}, err
	}

	c.Documents = append(c.Documents, doc)
	c.UpdatedAt = doc.UploadedAt
	if _, err := u.repo.Save(ctx, c); err != nil {
		return entities.ContractDocument{}, err
	}
	u.appendEvent(ctx, c.ID, entities.EventDocumentUploaded, fmt.Sprintf("document %q uploaded", doc.Name))
	return doc, nil
}

func (u *DocumentUseCase) Download(ctx context.Context, contractID, documentID string) (entities.ContractDocument, []byte, error) {
	c, err := u.loadContract(ctx, contractID)
	if err != nil {
		return entities.ContractDocument{}, nil, err
	}

	doc, ok := findDocument(c, documentID)
	if !ok {
		return entities.ContractDocument{}, nil, ErrDocumentNotFound
	}

	body, contentType, err := u.store.Get(ctx, c.ID, doc.ID)
	if err != nil {
		return entities.ContractDocument{}, nil, err
	}
	if contentType != "" {
		doc.ContentType = contentType
	}
	return doc, body, nil
}

func (u *DocumentUseCase) Delete(ctx context.Context, contractID, documentID string) error {
	c, err := u.loadContract(ctx, contractID)
	if err != nil {
		return err
	}

	doc, ok := findDocument(c, documentID)
	if !ok {
		return ErrDocumentNotFound
	}

	if err := u.store.Delete(ctx, c.ID, doc.ID); err != nil {
		return err
	}

	kept := c.Documents[:0]
	for _, d := range c.Documents {
		if d.ID != doc.ID {
			kept = append(kept, d)
		}
	}
	c.Documents = kept
	c.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Save(ctx, c); err != nil {
		return err
	}
	u.appendEvent(ctx, c.ID, entities.EventDocumentDeleted, fmt.Sprintf("document %q deleted", doc.Name))
	return nil
}

// RenderPDF builds the printable contract from the current aggregate state.
func (u *DocumentUseCase) RenderPDF(ctx context.Context, contractID string) ([]byte, error) {
	c, err := u.loadContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return pdf.RenderContract(c)
}

func findDocument(c entities.Contract, documentID string) (entities.ContractDocument, bool) {
	documentID = strings.TrimSpace(documentID)
	for _, d := range c.Documents {
		if d.ID == documentID {
			return d, true
		}
	}
	return entities.ContractDocument{}, false
}

func (u *DocumentUseCase) loadContract(ctx context.Context, contractID string) (entities.Contract, error) {
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

func (u *DocumentUseCase) appendEvent(ctx context.Context, contractID, eventType, description string) {
	_ = u.repo.AppendEvent(ctx, entities.ContractEvent{
		ID:          uuid.NewString(),
		ContractID:  contractID,
		Type:        eventType,
		Description: description,
		Timestamp:   time.Now().UTC(),
	})
}
