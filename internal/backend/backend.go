// Package backend presents one uniform client interface for every CMS
// resource, with two backings: a local store (mock mode) and a remote HTTP
// endpoint (live mode). The backing is chosen once at construction and
// injected, never per call.
package backend

import (
	"context"

	"github.com/omegapc/omegacms/internal/models"
)

// Session is the result of a successful login.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Client is the resource-oriented content interface.
type Client interface {
	Login(ctx context.Context, email, password string) (*Session, error)

	CompanyInfo(ctx context.Context) (models.CompanyInfo, error)
	UpdateCompanyInfo(ctx context.Context, info models.CompanyInfo) error

	Services(ctx context.Context) ([]models.ServiceItem, error)
	UpdateServices(ctx context.Context, items []models.ServiceItem) error

	Certificates(ctx context.Context) ([]models.InspectionCertificate, error)
	UpdateCertificates(ctx context.Context, certs []models.InspectionCertificate) error

	Projects(ctx context.Context) ([]models.ProjectUpdate, error)
	UpdateProjects(ctx context.Context, projects []models.ProjectUpdate) error

	BlogPosts(ctx context.Context) ([]models.BlogPost, error)
	CreateBlogPost(ctx context.Context, post models.BlogPost) error

	Jobs(ctx context.Context) ([]models.JobPosition, error)
	SaveJobs(ctx context.Context, jobs []models.JobPosition) error
}

// DedupeByID collapses repeated service ids, keeping the last occurrence in
// write order while preserving the order of first appearance.
func DedupeByID(items []models.ServiceItem) []models.ServiceItem {
	index := make(map[string]int, len(items))
	out := make([]models.ServiceItem, 0, len(items))
	for _, item := range items {
		if i, seen := index[item.ID]; seen {
			out[i] = item
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}
	return out
}
