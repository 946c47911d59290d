package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/service"
	"github.com/MKhiriev/skillvance-api/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn            func(ctx context.Context, creds models.Credentials) (models.LoginData, error)
	validateSessionFn  func(ctx context.Context, token string) (models.Session, error)
	logoutFn           func(ctx context.Context, session models.Session) error
	accountFn          func(ctx context.Context, id int64) (models.AdminAccount, error)
	updateIdentifierFn func(ctx context.Context, oldIdentifier, newIdentifier string) (models.LoginData, error)
	updateSecretFn     func(ctx context.Context, identifier string, change models.SecretChange) error
	listAccountsFn     func(ctx context.Context) ([]models.AdminAccount, error)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.LoginData, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (models.Session, error) {
	return m.validateSessionFn(ctx, token)
}

func (m *mockAuthService) Logout(ctx context.Context, session models.Session) error {
	return m.logoutFn(ctx, session)
}

func (m *mockAuthService) Account(ctx context.Context, id int64) (models.AdminAccount, error) {
	return m.accountFn(ctx, id)
}

func (m *mockAuthService) UpdateIdentifier(ctx context.Context, oldIdentifier, newIdentifier string) (models.LoginData, error) {
	return m.updateIdentifierFn(ctx, oldIdentifier, newIdentifier)
}

func (m *mockAuthService) UpdateSecret(ctx context.Context, identifier string, change models.SecretChange) error {
	return m.updateSecretFn(ctx, identifier, change)
}

func (m *mockAuthService) ListAccounts(ctx context.Context) ([]models.AdminAccount, error) {
	return m.listAccountsFn(ctx)
}

func (m *mockAuthService) EnsureDefaultAdmin(context.Context, config.Bootstrap) error {
	return nil
}

func (m *mockAuthService) PruneRevokedSessions(context.Context) (int64, error) {
	return 0, nil
}

type mockMessageService struct {
	submitFn    func(ctx context.Context, message models.Message) (models.Message, error)
	listFn      func(ctx context.Context, filter models.MessageFilter) ([]models.Message, error)
	createFn    func(ctx context.Context, message models.Message) (models.Message, error)
	updateFn    func(ctx context.Context, id int64, update models.MessageUpdate) (models.Message, error)
	setStatusFn func(ctx context.Context, id int64, status models.MessageStatus) (models.Message, error)
	deleteFn    func(ctx context.Context, id int64) error
}

func (m *mockMessageService) Submit(ctx context.Context, message models.Message) (models.Message, error) {
	return m.submitFn(ctx, message)
}

func (m *mockMessageService) List(ctx context.Context, filter models.MessageFilter) ([]models.Message, error) {
	return m.listFn(ctx, filter)
}

func (m *mockMessageService) Create(ctx context.Context, message models.Message) (models.Message, error) {
	return m.createFn(ctx, message)
}

func (m *mockMessageService) Update(ctx context.Context, id int64, update models.MessageUpdate) (models.Message, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockMessageService) SetStatus(ctx context.Context, id int64, status models.MessageStatus) (models.Message, error) {
	return m.setStatusFn(ctx, id, status)
}

func (m *mockMessageService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockInternshipService struct {
	listActiveFn func(ctx context.Context, category models.Category) ([]models.Internship, error)
	listFn       func(ctx context.Context) ([]models.Internship, error)
	createFn     func(ctx context.Context, internship models.Internship) (models.Internship, error)
	updateFn     func(ctx context.Context, id int64, update models.InternshipUpdate) (models.Internship, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockInternshipService) ListActive(ctx context.Context, category models.Category) ([]models.Internship, error) {
	return m.listActiveFn(ctx, category)
}

func (m *mockInternshipService) List(ctx context.Context) ([]models.Internship, error) {
	return m.listFn(ctx)
}

func (m *mockInternshipService) Create(ctx context.Context, internship models.Internship) (models.Internship, error) {
	return m.createFn(ctx, internship)
}

func (m *mockInternshipService) Update(ctx context.Context, id int64, update models.InternshipUpdate) (models.Internship, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockInternshipService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockCertificateService struct {
	verifyFn func(ctx context.Context, certID string) (models.Certificate, error)
	listFn   func(ctx context.Context) ([]models.Certificate, error)
	createFn func(ctx context.Context, certificate models.Certificate) (models.Certificate, error)
	updateFn func(ctx context.Context, id int64, update models.CertificateUpdate) (models.Certificate, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCertificateService) Verify(ctx context.Context, certID string) (models.Certificate, error) {
	return m.verifyFn(ctx, certID)
}

func (m *mockCertificateService) List(ctx context.Context) ([]models.Certificate, error) {
	return m.listFn(ctx)
}

func (m *mockCertificateService) Create(ctx context.Context, certificate models.Certificate) (models.Certificate, error) {
	return m.createFn(ctx, certificate)
}

func (m *mockCertificateService) Update(ctx context.Context, id int64, update models.CertificateUpdate) (models.Certificate, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockCertificateService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockSocialLinksService struct {
	getFn        func(ctx context.Context) (models.SocialLinks, error)
	getEnabledFn func(ctx context.Context) (models.SocialLinks, error)
	saveFn       func(ctx context.Context, links models.SocialLinks) (models.SocialLinks, error)
}

func (m *mockSocialLinksService) Get(ctx context.Context) (models.SocialLinks, error) {
	return m.getFn(ctx)
}

func (m *mockSocialLinksService) GetEnabled(ctx context.Context) (models.SocialLinks, error) {
	return m.getEnabledFn(ctx)
}

func (m *mockSocialLinksService) Save(ctx context.Context, links models.SocialLinks) (models.SocialLinks, error) {
	return m.saveFn(ctx, links)
}

type mockSettingService struct {
	listFn   func(ctx context.Context) ([]models.Setting, error)
	upsertFn func(ctx context.Context, setting models.Setting) (models.Setting, error)
}

func (m *mockSettingService) List(ctx context.Context) ([]models.Setting, error) {
	return m.listFn(ctx)
}

func (m *mockSettingService) Upsert(ctx context.Context, setting models.Setting) (models.Setting, error) {
	return m.upsertFn(ctx, setting)
}

type mockUserService struct {
	listFn   func(ctx context.Context) ([]models.User, error)
	createFn func(ctx context.Context, user models.User) (models.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserService) Create(ctx context.Context, user models.User) (models.User, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockExportService struct {
	exportMessagesFn     func(ctx context.Context, w io.Writer) error
	exportCertificatesFn func(ctx context.Context, w io.Writer) error
}

func (m *mockExportService) ExportMessages(ctx context.Context, w io.Writer) error {
	return m.exportMessagesFn(ctx, w)
}

func (m *mockExportService) ExportCertificates(ctx context.Context, w io.Writer) error {
	return m.exportCertificatesFn(ctx, w)
}

type mockAppInfoService struct {
	build models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(context.Context) models.AppBuildInfo {
	return m.build
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const validToken = "valid-token"

var testSession = models.Session{
	AccountID:  7,
	Identifier: "admin@example.com",
	Role:       models.RoleAdmin,
	TokenID:    "token-id",
	Token:      validToken,
	ExpiresAt:  time.Date(2026, 5, 11, 9, 30, 15, 0, time.UTC),
}

// sessionAuth accepts validToken only.
func sessionAuth() *mockAuthService {
	return &mockAuthService{
		validateSessionFn: func(_ context.Context, token string) (models.Session, error) {
			if token == validToken {
				return testSession, nil
			}
			return models.Session{}, service.ErrSessionInvalid
		},
	}
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{CookieKey: "test-cookie-key-32-bytes-long!!!"},
	}
}

// newTestHandler builds a Handler over svcs. AuthService defaults to
// sessionAuth and AppInfoService to a fixed build.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = sessionAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{build: models.AppBuildInfo{Version: "test"}}
	}
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// serve runs a request through the full router. A non-empty token is sent
// as a bearer token.
func serve(t *testing.T, h *Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// envelope is the decoded response body.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, rr.Body.String())
	}
	return env
}

func dataMap(t *testing.T, env envelope) map[string]any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("data is %T, want object", env.Data)
	}
	return m
}

func cookieNamed(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
