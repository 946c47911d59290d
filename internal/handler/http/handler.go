package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/service"
	"github.com/MKhiriev/skillvance-api/models"
	"github.com/gorilla/sessions"
)

const (
	// adminCookieName is the cookie holding the admin UI session.
	adminCookieName = "skillvance_admin"
	// adminCookieTokenKey is the cookie session value holding the session token.
	adminCookieTokenKey = "token"
)

type Handler struct {
	services *service.Services
	cookies  sessions.Store

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookies:        newCookieStore(cfg.App.CookieKey),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

func newCookieStore(key string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(models.SessionLifetime / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
