package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"leaseflow/internal/usecase"
	"leaseflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentUpload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_UPLOAD", "Invalid document upload", http.StatusBadRequest)
)

// DocumentHandler handles document uploads/downloads and contract PDF
// rendering.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// UploadDocument accepts a multipart form with a "file" part and an optional
// "type" field (signed_copy, inspection_report, ...).
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidDocumentUpload.HTTPStatus, errInvalidDocumentUpload.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidDocumentUpload.HTTPStatus, errInvalidDocumentUpload.ToHTTPError())
		return
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		c.JSON(errInvalidDocumentUpload.HTTPStatus, errInvalidDocumentUpload.ToHTTPError())
		return
	}

	doc, err := h.usecase.Upload(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		c.PostForm("type"),
		fileHeader.Header.Get("Content-Type"),
		body,
	)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	doc, body, err := h.usecase.Download(c.Request.Context(), c.Param("id"), c.Param("docId"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, doc.ContentType, body)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), c.Param("docId")); err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RenderPDF streams the printable contract.
func (h *DocumentHandler) RenderPDF(c *gin.Context) {
	body, err := h.usecase.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "contract-"+c.Param("id")+".pdf"))
	c.Data(http.StatusOK, "application/pdf", body)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyDocument),
		errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentTooLarge):
		return pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "Document exceeds the size limit", http.StatusRequestEntityTooLarge)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
