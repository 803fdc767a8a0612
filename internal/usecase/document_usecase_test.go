package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"leaseflow/internal/domain/entities"
	mock_interfaces "leaseflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase_Upload(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, err := uc.Upload(context.Background(), "c-1", "lease.pdf", "signed_copy", "application/pdf", nil)
		if !errors.Is(err, ErrEmptyDocument) {
			t.Fatalf("expected ErrEmptyDocument, got %v", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, err := uc.Upload(context.Background(), "c-1", "big.bin", "", "", bytes.Repeat([]byte("x"), maxDocumentSize+1))
		if !errors.Is(err, ErrDocumentTooLarge) {
			t.Fatalf("expected ErrDocumentTooLarge, got %v", err)
		}
	})

	t.Run("upload success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewDocumentUseCase(repo, store)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(storedDraft("c-1"), nil)
		store.EXPECT().Put(gomock.Any(), "c-1", gomock.Any(), "application/pdf", []byte("pdf-bytes")).Return(nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Contract) (entities.Contract, error) {
				if len(saved.Documents) != 1 || saved.Documents[0].Name != "lease.pdf" {
					t.Fatalf("unexpected documents: %+v", saved.Documents)
				}
				return saved, nil
			},
		)
		repo.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)

		doc, err := uc.Upload(context.Background(), "c-1", "lease.pdf", "signed_copy", "application/pdf", []byte("pdf-bytes"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Size != int64(len("pdf-bytes")) || doc.Type != "signed_copy" {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})
}

func TestDocumentUseCase_Download(t *testing.T) {
	t.Run("document not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(storedDraft("c-1"), nil)

		_, _, err := uc.Download(context.Background(), "c-1", "d-1")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("download returns stored bytes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewDocumentUseCase(repo, store)

		c := storedDraft("c-1")
		c.Documents = []entities.ContractDocument{{ID: "d-1", Name: "lease.pdf", ContentType: "application/pdf"}}
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)
		store.EXPECT().Get(gomock.Any(), "c-1", "d-1").Return([]byte("pdf-bytes"), "application/pdf", nil)

		doc, body, err := uc.Download(context.Background(), "c-1", "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Name != "lease.pdf" || string(body) != "pdf-bytes" {
			t.Fatalf("unexpected download: %+v %q", doc, body)
		}
	})
}

func TestDocumentUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	store := mock_interfaces.NewMockIDocumentStore(ctrl)
	uc := NewDocumentUseCase(repo, store)

	c := storedDraft("c-1")
	c.Documents = []entities.ContractDocument{{ID: "d-1", Name: "lease.pdf"}}
	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)
	store.EXPECT().Delete(gomock.Any(), "c-1", "d-1").Return(nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, saved entities.Contract) (entities.Contract, error) {
			if len(saved.Documents) != 0 {
				t.Fatalf("expected document removed, got %+v", saved.Documents)
			}
			return saved, nil
		},
	)
	repo.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)

	if err := uc.Delete(context.Background(), "c-1", "d-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDocumentUseCase_RenderPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	uc := NewDocumentUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(storedDraft("c-1"), nil)

	body, err := uc.RenderPDF(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-1.4")) {
		t.Fatalf("expected a PDF header, got %q", body[:16])
	}
}
