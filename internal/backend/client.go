package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/metrics"
	"invoice-dashboard/internal/models"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxErrorBody bounds how much of a failed response is kept as the message.
const maxErrorBody = 4 << 10

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.BasicAuth != nil {
		transport = &BasicAuthTransport{
			Username: cfg.BasicAuth.Username,
			Password: cfg.BasicAuth.Password,
			Proxied:  transport,
		}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// UploadInvoice sends the PDF to the extraction endpoint as the multipart
// field "file".
func (c *Client) UploadInvoice(ctx context.Context, filename string, file io.Reader) (*models.ExtractResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	header.Set("Content-Type", "application/pdf")

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result models.ExtractResponse
	err = c.do(req, metrics.BackendOperationUpload, &result, func(resp *http.Response, body string) string {
		if body != "" {
			return body
		}
		return fmt.Sprintf("Upload failed with status %d", resp.StatusCode)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*models.GetInvoiceResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/invoice/"+url.PathEscape(invoiceID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice request: %w", err)
	}

	var result models.GetInvoiceResponse
	err = c.do(req, metrics.BackendOperationGetInvoice, &result, func(resp *http.Response, _ string) string {
		return "Failed to fetch invoice: " + statusText(resp)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) GetInvoicesByVendor(ctx context.Context, vendorName string) (*models.VendorInvoicesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/invoices/vendor/"+url.PathEscape(vendorName), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build vendor request: %w", err)
	}

	var result models.VendorInvoicesResponse
	err = c.do(req, metrics.BackendOperationVendorInvoice, &result, func(resp *http.Response, _ string) string {
		return "Failed to fetch invoices: " + statusText(resp)
	})
	if err != nil {
		return nil, err
	}

	if result.Invoices == nil {
		result.Invoices = []models.VendorInvoice{}
	}

	return &result, nil
}

// FetchDashboardStats returns the backend statistics or the error that
// prevented it.
func (c *Client) FetchDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats", nil)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to build stats request: %w", err)
	}

	var stats models.DashboardStats
	err = c.do(req, metrics.BackendOperationStats, &stats, func(resp *http.Response, _ string) string {
		return "Failed to fetch stats: " + statusText(resp)
	})
	if err != nil {
		return models.DashboardStats{}, err
	}

	return stats, nil
}

// GetDashboardStats never fails: any error yields zeroed statistics.
func (c *Client) GetDashboardStats(ctx context.Context) models.DashboardStats {
	stats, err := c.FetchDashboardStats(ctx)
	if err != nil {
		c.logger.Info("stats endpoint not available, using placeholder values", "error", err)
		return models.DashboardStats{}
	}
	return stats
}

type errorMessageFunc func(resp *http.Response, body string) string

func (c *Client) do(req *http.Request, operation string, out any, message errorMessageFunc) error {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequestDuration.WithLabelValues(operation, "error").Observe(time.Since(start).Seconds())
		metrics.BackendErrors.WithLabelValues(operation).Inc()
		c.logger.Warn("backend request failed", "operation", operation, "error", err)
		return unreachable(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug("failed to close backend response body", "error", err)
		}
	}()

	metrics.BackendRequestDuration.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.BackendErrors.WithLabelValues(operation).Inc()
		c.logger.Warn("backend returned error status", "operation", operation, "status", resp.StatusCode)
		return &APIError{
			Status:  resp.StatusCode,
			Message: message(resp, strings.TrimSpace(string(raw))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.BackendErrors.WithLabelValues(operation).Inc()
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return &APIError{
			Status:  resp.StatusCode,
			Message: "invalid response from backend",
			Err:     err,
		}
	}

	return nil
}

func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strconv.Itoa(resp.StatusCode)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
