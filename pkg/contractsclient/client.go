// Package contractsclient is a thin Go client for the contracts REST API.
// Every mutation maps to one method; each call is single-shot with no retries
// or backoff. Timestamps travel as RFC 3339 strings on the wire and surface
// as time.Time on both sides of the boundary.
package contractsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	request "leaseflow/internal/adapter/http/dto/request"
	response "leaseflow/internal/adapter/http/dto/response"
	"leaseflow/internal/domain/entities"
)

// SearchQuery narrows and pages a contract search. Zero values mean "no
// filter" / server defaults.
type SearchQuery struct {
	Status     string
	PropertyID string
	TenantID   string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// ValidationResult is the outcome of the pre-submit validate call.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport (custom timeouts, test
// servers).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a client for the service at baseURL. The bearer token is sent on
// every request; pass "" when the deployment runs without auth.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateContract(ctx context.Context, in request.CreateContractRequest) (response.ContractResponse, error) {
	var out response.ContractResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/contracts", in, &out)
	return out, err
}

func (c *Client) GetContract(ctx context.Context, id string) (response.ContractResponse, error) {
	var out response.ContractResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/contracts/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) UpdateContract(ctx context.Context, id string, in request.UpdateContractRequest) (response.ContractResponse, error) {
	var out response.ContractResponse
	err := c.doJSON(ctx, http.MethodPut, "/v1/contracts/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeleteContract(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/contracts/"+url.PathEscape(id), nil, nil)
}

func (c *Client) SearchContracts(ctx context.Context, q SearchQuery) (response.SearchContractsResponse, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.PropertyID != "" {
		params.Set("propertyId", q.PropertyID)
	}
	if q.TenantID != "" {
		params.Set("tenantId", q.TenantID)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("sortOrder", q.SortOrder)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	path := "/v1/contracts"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var out response.SearchContractsResponse
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) SendForSignatures(ctx context.Context, id string) (response.ContractResponse, error) {
	return c.lifecycleAction(ctx, id, "send-for-signatures", nil)
}

func (c *Client) SignContract(ctx context.Context, id string, in request.SignContractRequest) (response.ContractResponse, error) {
	if in.SignatureType == "" {
		return response.ContractResponse{}, &ValidationError{Field: "signatureType", Message: "signature type is required"}
	}
	return c.lifecycleAction(ctx, id, "sign", in)
}

func (c *Client) ActivateContract(ctx context.Context, id string) (response.ContractResponse, error) {
	return c.lifecycleAction(ctx, id, "activate", nil)
}

func (c *Client) TerminateContract(ctx context.Context, id, reason string) (response.ContractResponse, error) {
	if strings.TrimSpace(reason) == "" {
		return response.ContractResponse{}, &ValidationError{Field: "reason", Message: "termination reason is required"}
	}
	return c.lifecycleAction(ctx, id, "terminate", request.TerminateContractRequest{Reason: reason})
}

func (c *Client) RenewContract(ctx context.Context, id string, in request.RenewContractRequest) (response.ContractResponse, error) {
	if in.NewEndDate.IsZero() {
		return response.ContractResponse{}, &ValidationError{Field: "newEndDate", Message: "new end date is required"}
	}
	return c.lifecycleAction(ctx, id, "renew", in)
}

func (c *Client) CancelContract(ctx context.Context, id string) (response.ContractResponse, error) {
	return c.lifecycleAction(ctx, id, "cancel", nil)
}

func (c *Client) lifecycleAction(ctx context.Context, id, action string, body any) (response.ContractResponse, error) {
	var out response.ContractResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/contracts/"+url.PathEscape(id)+"/"+action, body, &out)
	return out, err
}

func (c *Client) ListPayments(ctx context.Context, contractID string) ([]entities.ContractPayment, error) {
	var out []entities.ContractPayment
	err := c.doJSON(ctx, http.MethodGet, "/v1/contracts/"+url.PathEscape(contractID)+"/payments", nil, &out)
	return out, err
}

func (c *Client) RecordPayment(ctx context.Context, contractID string, in request.RecordPaymentRequest) (entities.ContractPayment, error) {
	var out entities.ContractPayment
	if in.DueDate.IsZero() {
		return out, &ValidationError{Field: "dueDate", Message: "due date is required"}
	}
	err := c.doJSON(ctx, http.MethodPost, "/v1/contracts/"+url.PathEscape(contractID)+"/payments", in, &out)
	return out, err
}

func (c *Client) UpdatePayment(ctx context.Context, contractID, paymentID string, in request.UpdatePaymentRequest) (entities.ContractPayment, error) {
	var out entities.ContractPayment
	path := "/v1/contracts/" + url.PathEscape(contractID) + "/payments/" + url.PathEscape(paymentID)
	err := c.doJSON(ctx, http.MethodPut, path, in, &out)
	return out, err
}

// UploadDocument sends one file as a multipart form. docType is the optional
// business classification (signed_copy, inspection_report, ...).
func (c *Client) UploadDocument(ctx context.Context, contractID, filename, docType, contentType string, body []byte) (entities.ContractDocument, error) {
	var out entities.ContractDocument
	if len(body) == 0 {
		return out, &ValidationError{Field: "file", Message: "document body is empty"}
	}

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		return out, err
	}
	if _, err := part.Write(body); err != nil {
		return out, err
	}
	if docType != "" {
		if err := mw.WriteField("type", docType); err != nil {
			return out, err
		}
	}
	if err := mw.Close(); err != nil {
		return out, err
	}

	path := "/v1/contracts/" + url.PathEscape(contractID) + "/documents"
	resp, err := c.do(ctx, http.MethodPost, path, buf, mw.FormDataContentType())
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return out, err
	}
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

func (c *Client) DeleteDocument(ctx context.Context, contractID, documentID string) error {
	path := "/v1/contracts/" + url.PathEscape(contractID) + "/documents/" + url.PathEscape(documentID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// DownloadDocument returns the stored bytes and their content type.
func (c *Client) DownloadDocument(ctx context.Context, contractID, documentID string) ([]byte, string, error) {
	path := "/v1/contracts/" + url.PathEscape(contractID) + "/documents/" + url.PathEscape(documentID) + "/download"
	return c.doBinary(ctx, path)
}

// ContractPDF renders and returns the printable contract.
func (c *Client) ContractPDF(ctx context.Context, contractID string) ([]byte, error) {
	body, _, err := c.doBinary(ctx, "/v1/contracts/"+url.PathEscape(contractID)+"/pdf")
	return body, err
}

func (c *Client) ListTemplates(ctx context.Context) ([]entities.ContractTemplate, error) {
	var out []entities.ContractTemplate
	err := c.doJSON(ctx, http.MethodGet, "/v1/contracts/templates", nil, &out)
	return out, err
}

func (c *Client) GetTemplate(ctx context.Context, id string) (entities.ContractTemplate, error) {
	var out entities.ContractTemplate
	err := c.doJSON(ctx, http.MethodGet, "/v1/contracts/templates/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) PortfolioAnalytics(ctx context.Context, dateFrom, dateTo *time.Time) (entities.PortfolioAnalytics, error) {
	params := url.Values{}
	if dateFrom != nil {
		params.Set("dateFrom", dateFrom.UTC().Format(time.RFC3339Nano))
	}
	if dateTo != nil {
		params.Set("dateTo", dateTo.UTC().Format(time.RFC3339Nano))
	}
	path := "/v1/contracts/analytics"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var out entities.PortfolioAnalytics
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) ListEvents(ctx context.Context, contractID string) ([]entities.ContractEvent, error) {
	var out []entities.ContractEvent
	err := c.doJSON(ctx, http.MethodGet, "/v1/contracts/"+url.PathEscape(contractID)+"/events", nil, &out)
	return out, err
}

func (c *Client) ListNotifications(ctx context.Context) ([]entities.ContractNotification, error) {
	var out []entities.ContractNotification
	err := c.doJSON(ctx, http.MethodGet, "/v1/contracts/notifications", nil, &out)
	return out, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) (entities.ContractNotification, error) {
	var out entities.ContractNotification
	err := c.doJSON(ctx, http.MethodPut, "/v1/contracts/notifications/"+url.PathEscape(id)+"/read", nil, &out)
	return out, err
}

// ValidateContract runs the server-side schema check without creating
// anything.
func (c *Client) ValidateContract(ctx context.Context, in request.CreateContractRequest) (ValidationResult, error) {
	var out ValidationResult
	err := c.doJSON(ctx, http.MethodPost, "/v1/contracts/validate", in, &out)
	return out, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	resp, err := c.do(ctx, method, path, reader, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doBinary(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, "", err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" && body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	remote := &RemoteError{StatusCode: resp.StatusCode, Message: "request failed"}
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		remote.Code = body.Code
		if body.Message != "" {
			remote.Message = body.Message
		}
	}
	return remote
}
