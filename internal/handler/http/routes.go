package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// public read surface
	router.Route("/api", func(r chi.Router) {
		r.Get("/test", h.liveness)
		r.Get("/version", h.getServerVersion)
		r.Post("/messages", h.submitMessage)
		r.Get("/certificates/{certId}", h.verifyCertificate)
		r.Get("/internships", h.activeInternships)
		r.Get("/social-links", h.enabledSocialLinks)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.me)
				r.Post("/logout", h.logout)
				r.Put("/identifier", h.updateIdentifier)
				r.Put("/secret", h.updateSecret)
				r.Get("/accounts", h.listAccounts)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", h.listMessages)
				r.Post("/", h.createMessage)
				r.Get("/export", h.exportMessages)
				r.Put("/{id}", h.updateMessage)
				r.Patch("/{id}/status", h.setMessageStatus)
				r.Delete("/{id}", h.deleteMessage)
			})

			r.Route("/internships", func(r chi.Router) {
				r.Get("/", h.listInternships)
				r.Post("/", h.createInternship)
				r.Put("/{id}", h.updateInternship)
				r.Delete("/{id}", h.deleteInternship)
			})

			r.Route("/certificates", func(r chi.Router) {
				r.Get("/", h.listCertificates)
				r.Post("/", h.createCertificate)
				r.Get("/export", h.exportCertificates)
				r.Put("/{id}", h.updateCertificate)
				r.Delete("/{id}", h.deleteCertificate)
			})

			r.Get("/social-links", h.getSocialLinks)
			r.Put("/social-links", h.saveSocialLinks)

			r.Get("/settings", h.listSettings)
			r.Post("/settings", h.upsertSetting)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Delete("/{id}", h.deleteUser)
			})
		})
	})

	// admin UI entry
	router.Get(adminLoginPath, h.adminLogin)
	router.Group(func(r chi.Router) {
		r.Use(h.adminPage)
		r.Get("/admin", h.adminHome)
		r.Get("/admin/*", h.adminHome)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
