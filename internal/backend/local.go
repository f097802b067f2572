package backend

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omegapc/omegacms/internal/apperr"
	"github.com/omegapc/omegacms/internal/models"
	"github.com/omegapc/omegacms/internal/seed"
	"github.com/omegapc/omegacms/internal/store"
)

// Local is the mock-mode Client backed by a key-value store. First-ever reads
// of the company, services, certificates, and projects slots return the
// built-in seed and persist it so subsequent reads are stable.
type Local struct {
	store         store.Store
	adminPassword string
	loginDelay    time.Duration
}

// NewLocal creates a mock-mode client. adminPassword comes from deployment
// configuration; an empty value makes every login fail with
// apperr.ErrNotConfigured. loginDelay simulates the network round-trip on
// login only.
func NewLocal(s store.Store, adminPassword string, loginDelay time.Duration) *Local {
	return &Local{store: s, adminPassword: adminPassword, loginDelay: loginDelay}
}

// Login simulates latency, then classifies the attempt: only emails
// containing "admin" may log in, and only with the configured secret.
func (l *Local) Login(ctx context.Context, email, password string) (*Session, error) {
	if l.loginDelay > 0 {
		timer := time.NewTimer(l.loginDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if !strings.Contains(email, "admin") {
		return nil, apperr.ErrAccessDenied
	}
	if l.adminPassword == "" {
		return nil, apperr.ErrNotConfigured
	}
	if password != l.adminPassword {
		return nil, apperr.ErrInvalidCredentials
	}

	return &Session{
		User: models.User{
			ID:          "admin-1",
			Name:        "System Administrator",
			CompanyName: "OMEGA Internal",
			Role:        models.RoleAdmin,
			Email:       email,
			Avatar:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
		},
		Token: "session-" + uuid.NewString(),
	}, nil
}

// CompanyInfo returns the stored profile, seeding the slot on first read.
func (l *Local) CompanyInfo(_ context.Context) (models.CompanyInfo, error) {
	return readSeeded(l.store, store.KeyCompanyInfo, seed.Company)
}

// UpdateCompanyInfo persists the full replacement record.
func (l *Local) UpdateCompanyInfo(_ context.Context, info models.CompanyInfo) error {
	return store.Save(l.store, store.KeyCompanyInfo, info)
}

// Services returns the stored catalog, seeding the slot on first read.
func (l *Local) Services(_ context.Context) ([]models.ServiceItem, error) {
	return readSeeded(l.store, store.KeyServices, seed.Services)
}

// UpdateServices de-duplicates by id (last occurrence wins) and persists the
// full replacement catalog.
func (l *Local) UpdateServices(_ context.Context, items []models.ServiceItem) error {
	return store.Save(l.store, store.KeyServices, DedupeByID(items))
}

// Certificates returns the stored list, seeding the slot on first read.
func (l *Local) Certificates(_ context.Context) ([]models.InspectionCertificate, error) {
	return readSeeded(l.store, store.KeyCertificates, seed.Certificates)
}

// UpdateCertificates persists the full replacement list.
func (l *Local) UpdateCertificates(_ context.Context, certs []models.InspectionCertificate) error {
	return store.Save(l.store, store.KeyCertificates, certs)
}

// Projects returns the stored list, seeding the slot on first read.
func (l *Local) Projects(_ context.Context) ([]models.ProjectUpdate, error) {
	return readSeeded(l.store, store.KeyProjects, seed.Projects)
}

// UpdateProjects persists the full replacement list.
func (l *Local) UpdateProjects(_ context.Context, projects []models.ProjectUpdate) error {
	return store.Save(l.store, store.KeyProjects, projects)
}

// BlogPosts returns the stored list, defaulting to empty.
func (l *Local) BlogPosts(_ context.Context) ([]models.BlogPost, error) {
	return store.Load(l.store, store.KeyBlogPosts, []models.BlogPost{}), nil
}

// CreateBlogPost prepends the post and persists the resulting list.
func (l *Local) CreateBlogPost(_ context.Context, post models.BlogPost) error {
	posts := store.Load(l.store, store.KeyBlogPosts, []models.BlogPost{})
	posts = append([]models.BlogPost{post}, posts...)
	return store.Save(l.store, store.KeyBlogPosts, posts)
}

// Jobs returns the stored list, defaulting to empty.
func (l *Local) Jobs(_ context.Context) ([]models.JobPosition, error) {
	return store.Load(l.store, store.KeyJobs, []models.JobPosition{}), nil
}

// SaveJobs persists the full replacement list.
func (l *Local) SaveJobs(_ context.Context, jobs []models.JobPosition) error {
	return store.Save(l.store, store.KeyJobs, jobs)
}

// readSeeded returns the slot value, or writes and returns the seed when the
// slot has never been populated. A present-but-corrupt slot also falls back
// to the seed, without re-persisting it.
func readSeeded[T any](s store.Store, key string, seedFn func() T) (T, error) {
	if !store.Exists(s, key) {
		v := seedFn()
		if err := store.Save(s, key, v); err != nil {
			return v, err
		}
		return v, nil
	}
	return store.Load(s, key, seedFn()), nil
}
