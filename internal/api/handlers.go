package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/omegapc/omegacms/internal/apperr"
	"github.com/omegapc/omegacms/internal/chat"
	"github.com/omegapc/omegacms/internal/content"
	"github.com/omegapc/omegacms/internal/models"
	"github.com/omegapc/omegacms/internal/session"
)

const maxBodyBytes = 1 << 20

// Handler holds API route handlers.
type Handler struct {
	cache     *content.Cache
	sessions  *session.Manager
	assistant *chat.Service
}

// NewHandler creates a new Handler.
func NewHandler(cache *content.Cache, sessions *session.Manager, assistant *chat.Service) *Handler {
	return &Handler{cache: cache, sessions: sessions, assistant: assistant}
}

// Login handles POST /auth/login.
//
// Wrong password and non-admin email both yield the same generic 401 so the
// response does not reveal which part was wrong. A missing admin secret is a
// deployment problem and surfaces as 503 instead.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("email and password are required"))
		return
	}

	user, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotConfigured):
			writeJSON(w, http.StatusServiceUnavailable, errorBody("login is not configured"))
		case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrAccessDenied):
			writeJSON(w, http.StatusUnauthorized, errorBody("invalid credentials"))
		default:
			slog.Error("login failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{User: *user, Token: h.sessions.Token()})
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.sessions.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (h *Handler) Me(w http.ResponseWriter, _ *http.Request) {
	user := h.sessions.User()
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetCompanyInfo handles GET /content/company-info.
func (h *Handler) GetCompanyInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.CompanyInfo())
}

// UpdateCompanyInfo handles POST /content/company-info.
func (h *Handler) UpdateCompanyInfo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var info models.CompanyInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.cache.UpdateCompanyInfo(r.Context(), info); err != nil {
		h.writeUpdateError(w, "company info", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// ListServices handles GET /services.
func (h *Handler) ListServices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.Services())
}

// UpdateServices handles POST /services. The stored catalog is the request
// list with duplicate ids collapsed, keeping the last occurrence.
func (h *Handler) UpdateServices(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var items []models.ServiceItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.cache.UpdateServices(r.Context(), items); err != nil {
		h.writeUpdateError(w, "services", err)
		return
	}
	writeJSON(w, http.StatusOK, h.cache.Services())
}

// ListCertificates handles GET /certificates. Bearer-token protected.
func (h *Handler) ListCertificates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.Certificates())
}

// UpdateCertificates handles POST /certificates.
func (h *Handler) UpdateCertificates(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var certs []models.InspectionCertificate
	if err := json.NewDecoder(r.Body).Decode(&certs); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	for _, c := range certs {
		if err := c.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
	}
	if err := h.cache.UpdateCertificates(r.Context(), certs); err != nil {
		h.writeUpdateError(w, "certificates", err)
		return
	}
	writeJSON(w, http.StatusOK, certs)
}

// ListProjects handles GET /projects.
func (h *Handler) ListProjects(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.Projects())
}

// UpdateProjects handles POST /projects.
func (h *Handler) UpdateProjects(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var projects []models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&projects); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.cache.UpdateProjects(r.Context(), projects); err != nil {
		h.writeUpdateError(w, "projects", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// ListBlogPosts handles GET /blog.
func (h *Handler) ListBlogPosts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.BlogPosts())
}

// CreateBlogPost handles POST /blog. Missing id and date are filled in.
func (h *Handler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if post.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("title is required"))
		return
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Date == "" {
		post.Date = time.Now().Format("2006-01-02")
	}
	if err := h.cache.AddBlogPost(r.Context(), post); err != nil {
		h.writeUpdateError(w, "blog post", err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// ListJobs handles GET /jobs.
func (h *Handler) ListJobs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.Jobs())
}

// CreateJob handles POST /jobs.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var job models.JobPosition
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if job.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("title is required"))
		return
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if err := h.cache.AddJob(r.Context(), job); err != nil {
		h.writeUpdateError(w, "job", err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// Chat handles POST /chat. A missing session id starts a new transcript.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("message is required"))
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	reply, err := h.assistant.Send(r.Context(), req.SessionID, req.Message)
	if err != nil {
		slog.Error("chat failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, ChatResponse{SessionID: req.SessionID, Reply: reply})
}

// ChatHistory handles GET /chat/{sessionID}.
func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("session id is required"))
		return
	}
	writeJSON(w, http.StatusOK, h.assistant.Session(id))
}

func (h *Handler) writeUpdateError(w http.ResponseWriter, what string, err error) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, apperr.ErrUnsupported):
		writeJSON(w, http.StatusNotImplemented, errorBody(what+" updates are not supported by this backend"))
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	default:
		slog.Error("update failed", slog.String("target", what), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
