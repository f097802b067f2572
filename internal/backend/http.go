package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/omegapc/omegacms/internal/apperr"
	"github.com/omegapc/omegacms/internal/models"
)

// TokenFunc supplies the bearer token for authorized live-mode calls.
// It is typically wired to the session manager.
type TokenFunc func() string

// HTTP is the live-mode Client that forwards every operation to a remote
// content API. Write operations the remote API does not expose fail fast
// with apperr.ErrUnsupported instead of silently doing nothing.
type HTTP struct {
	baseURL string
	client  *http.Client
	token   TokenFunc
}

// NewHTTP creates a live-mode client. token may be nil when no authorized
// calls will be made.
func NewHTTP(baseURL string, client *http.Client, token TokenFunc) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		token:   token,
	}
}

// Login forwards credentials and expects a {user, token} payload.
func (h *HTTP) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend: login failed: %w", apperr.ErrInvalidCredentials)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("backend: decode login response: %w", err)
	}
	return &session, nil
}

// CompanyInfo fetches the remote profile.
func (h *HTTP) CompanyInfo(ctx context.Context) (models.CompanyInfo, error) {
	var info models.CompanyInfo
	err := h.get(ctx, "/content/company-info", false, &info)
	return info, err
}

// UpdateCompanyInfo posts the full replacement record.
func (h *HTTP) UpdateCompanyInfo(ctx context.Context, info models.CompanyInfo) error {
	return h.post(ctx, "/content/company-info", info)
}

// Services fetches the remote catalog.
func (h *HTTP) Services(ctx context.Context) ([]models.ServiceItem, error) {
	var items []models.ServiceItem
	err := h.get(ctx, "/services", false, &items)
	return items, err
}

// UpdateServices posts the full replacement catalog.
func (h *HTTP) UpdateServices(ctx context.Context, items []models.ServiceItem) error {
	return h.post(ctx, "/services", items)
}

// Certificates fetches the remote list. The endpoint requires a bearer token.
func (h *HTTP) Certificates(ctx context.Context) ([]models.InspectionCertificate, error) {
	var certs []models.InspectionCertificate
	err := h.get(ctx, "/certificates", true, &certs)
	return certs, err
}

// UpdateCertificates has no live endpoint.
func (h *HTTP) UpdateCertificates(context.Context, []models.InspectionCertificate) error {
	return fmt.Errorf("backend: update certificates: %w", apperr.ErrUnsupported)
}

// Projects fetches the remote list.
func (h *HTTP) Projects(ctx context.Context) ([]models.ProjectUpdate, error) {
	var projects []models.ProjectUpdate
	err := h.get(ctx, "/projects", false, &projects)
	return projects, err
}

// UpdateProjects has no live endpoint.
func (h *HTTP) UpdateProjects(context.Context, []models.ProjectUpdate) error {
	return fmt.Errorf("backend: update projects: %w", apperr.ErrUnsupported)
}

// BlogPosts fetches the remote list.
func (h *HTTP) BlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := h.get(ctx, "/blog", false, &posts)
	return posts, err
}

// CreateBlogPost has no live endpoint.
func (h *HTTP) CreateBlogPost(context.Context, models.BlogPost) error {
	return fmt.Errorf("backend: create blog post: %w", apperr.ErrUnsupported)
}

// Jobs has no live endpoint; the remote list is always empty.
func (h *HTTP) Jobs(context.Context) ([]models.JobPosition, error) {
	return []models.JobPosition{}, nil
}

// SaveJobs has no live endpoint.
func (h *HTTP) SaveJobs(context.Context, []models.JobPosition) error {
	return fmt.Errorf("backend: save jobs: %w", apperr.ErrUnsupported)
}

func (h *HTTP) get(ctx context.Context, path string, authorized bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return err
	}
	if authorized && h.token != nil {
		if t := h.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend: get %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s: %w", path, err)
	}
	return nil
}

func (h *HTTP) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != nil {
		if t := h.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: post %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend: post %s: status %d", path, resp.StatusCode)
	}
	return nil
}
