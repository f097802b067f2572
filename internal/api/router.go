package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omegapc/omegacms/internal/session"
)

// NewRouter creates a chi router with all API routes mounted.
// Reads are public except GET /certificates; every write requires a Bearer
// token matching the active admin session. sseHandler, if non-nil, is
// mounted at GET /events inside the auth group. mediaDir is where uploaded
// images live.
func NewRouter(h *Handler, sessions *session.Manager, sseHandler http.Handler, mediaDir string) chi.Router {
	mh := NewMediaHandler(mediaDir)
	requireSession := RequireSession(sessions)

	r := chi.NewRouter()

	// Auth.
	r.Post("/auth/login", h.Login)

	// Public content reads.
	r.Get("/content/company-info", h.GetCompanyInfo)
	r.Get("/services", h.ListServices)
	r.Get("/projects", h.ListProjects)
	r.Get("/blog", h.ListBlogPosts)
	r.Get("/jobs", h.ListJobs)

	// Chat widget.
	r.Post("/chat", h.Chat)
	r.Get("/chat/{sessionID}", h.ChatHistory)

	// Uploaded images.
	r.Get("/media/{filename}", mh.ServeFile)

	// Session-protected routes.
	r.Group(func(r chi.Router) {
		r.Use(requireSession)

		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/me", h.Me)

		r.Post("/content/company-info", h.UpdateCompanyInfo)
		r.Post("/services", h.UpdateServices)
		r.Get("/certificates", h.ListCertificates)
		r.Post("/certificates", h.UpdateCertificates)
		r.Post("/projects", h.UpdateProjects)
		r.Post("/blog", h.CreateBlogPost)
		r.Post("/jobs", h.CreateJob)

		r.Post("/media", mh.Upload)

		if sseHandler != nil {
			r.Get("/events", sseHandler.ServeHTTP)
		}
	})

	return r
}
