package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/models"
	"github.com/go-resty/resty/v2"
)

// envelope is the typed form of [models.Response] used to decode payloads.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type httpAdminClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdminClient builds an [AdminClient] for the API at address. A bare
// "host:port" is treated as plain HTTP.
func NewHTTPAdminClient(address string, timeout time.Duration, logger *logger.Logger) (AdminClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpAdminClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdminClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdminClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAdminClient) Login(ctx context.Context, creds models.Credentials) (models.LoginData, error) {
	var result envelope[models.LoginData]

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginData{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginData{}, err
	}

	h.SetToken(result.Data.Token)
	h.logger.Debug().Int64("account_id", result.Data.User.ID).Msg("signed in")
	return result.Data, nil
}

func (h *httpAdminClient) Me(ctx context.Context) (models.AccountView, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.AccountView{}, err
	}

	var result envelope[models.AccountView]
	resp, err := req.SetResult(&result).Get("/api/auth/me")
	if err != nil {
		return models.AccountView{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountView{}, err
	}

	return result.Data, nil
}

func (h *httpAdminClient) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAdminClient) VerifyCertificate(ctx context.Context, certID string) (models.Certificate, error) {
	var result envelope[models.Certificate]

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("certId", certID).
		SetResult(&result).
		Get("/api/certificates/{certId}")
	if err != nil {
		return models.Certificate{}, fmt.Errorf("verify certificate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Certificate{}, err
	}

	return result.Data, nil
}

func (h *httpAdminClient) ActiveInternships(ctx context.Context, category models.Category) ([]models.Internship, error) {
	var result envelope[[]models.Internship]

	req := h.client.R().SetContext(ctx).SetResult(&result)
	if category != "" {
		req.SetQueryParam("category", string(category))
	}

	resp, err := req.Get("/api/internships")
	if err != nil {
		return nil, fmt.Errorf("internships request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (h *httpAdminClient) ExportMessages(ctx context.Context, w io.Writer) error {
	return h.export(ctx, "/api/admin/messages/export", w)
}

func (h *httpAdminClient) ExportCertificates(ctx context.Context, w io.Writer) error {
	return h.export(ctx, "/api/admin/certificates/export", w)
}

func (h *httpAdminClient) export(ctx context.Context, path string, w io.Writer) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetHeader("Accept", "text/csv").Get(path)
	if err != nil {
		return fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if _, err = w.Write(resp.Body()); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func (h *httpAdminClient) Version(ctx context.Context) (models.AppBuildInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	var result envelope[models.AppBuildInfo]
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("decode version response: %w", err)
	}
	return result.Data, nil
}

func (h *httpAdminClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotSignedIn
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
