// Package content maintains the in-memory snapshot of all CMS collections.
// Mutations are write-through: the backend write happens first and the cache
// is replaced only after it succeeds, so the cache never reflects an
// unpersisted write.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/omegapc/omegacms/internal/backend"
	"github.com/omegapc/omegacms/internal/models"
)

// ChangeFunc is notified after a successful mutation or refresh, with the
// collection name and the action ("updated", "created", "refreshed").
type ChangeFunc func(collection, action string)

// Cache is the process-wide content snapshot.
type Cache struct {
	client   backend.Client
	logger   *slog.Logger
	onChange ChangeFunc

	mu           sync.RWMutex
	loading      bool
	companyInfo  models.CompanyInfo
	services     []models.ServiceItem
	certificates []models.InspectionCertificate
	projects     []models.ProjectUpdate
	blogPosts    []models.BlogPost
	jobs         []models.JobPosition
}

// NewCache creates an empty cache in the loading state. onChange may be nil.
func NewCache(client backend.Client, logger *slog.Logger, onChange ChangeFunc) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{client: client, logger: logger, onChange: onChange, loading: true}
}

// Refresh fetches all six collections concurrently. A failed fetch is logged
// and that collection keeps its prior value; the loading flag is cleared once
// the whole batch settles, regardless of failures.
func (c *Cache) Refresh(ctx context.Context) {
	var g errgroup.Group

	fetch := func(name string, load func() error) {
		g.Go(func() error {
			if err := load(); err != nil {
				c.logger.Error("content: fetch failed",
					slog.String("collection", name),
					slog.String("error", err.Error()))
			}
			return nil
		})
	}

	fetch("company", func() error {
		info, err := c.client.CompanyInfo(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.companyInfo = info
		c.mu.Unlock()
		return nil
	})
	fetch("services", func() error {
		items, err := c.client.Services(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.services = items
		c.mu.Unlock()
		return nil
	})
	fetch("certificates", func() error {
		certs, err := c.client.Certificates(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.certificates = certs
		c.mu.Unlock()
		return nil
	})
	fetch("projects", func() error {
		projects, err := c.client.Projects(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.projects = projects
		c.mu.Unlock()
		return nil
	})
	fetch("blog", func() error {
		posts, err := c.client.BlogPosts(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.blogPosts = posts
		c.mu.Unlock()
		return nil
	})
	fetch("jobs", func() error {
		jobs, err := c.client.Jobs(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.jobs = jobs
		c.mu.Unlock()
		return nil
	})

	_ = g.Wait()

	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()

	c.notify("all", "refreshed")
}

// Loading reports whether the initial refresh has settled yet.
func (c *Cache) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// CompanyInfo returns the cached profile.
func (c *Cache) CompanyInfo() models.CompanyInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.companyInfo
}

// UpdateCompanyInfo writes through to the backend, then replaces the cache.
func (c *Cache) UpdateCompanyInfo(ctx context.Context, info models.CompanyInfo) error {
	if err := c.client.UpdateCompanyInfo(ctx, info); err != nil {
		return err
	}
	c.mu.Lock()
	c.companyInfo = info
	c.mu.Unlock()
	c.notify("company", "updated")
	return nil
}

// Services returns the cached catalog.
func (c *Cache) Services() []models.ServiceItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ServiceItem(nil), c.services...)
}

// UpdateServices validates and writes through, then replaces the cache with
// the de-duplicated catalog (last occurrence wins for a repeated id).
func (c *Cache) UpdateServices(ctx context.Context, items []models.ServiceItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("service %q: %w", item.ID, err)
		}
	}
	deduped := backend.DedupeByID(items)
	if err := c.client.UpdateServices(ctx, deduped); err != nil {
		return err
	}
	c.mu.Lock()
	c.services = deduped
	c.mu.Unlock()
	c.notify("services", "updated")
	return nil
}

// Certificates returns the cached list.
func (c *Cache) Certificates() []models.InspectionCertificate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.InspectionCertificate(nil), c.certificates...)
}

// UpdateCertificates writes through, then replaces the cache.
func (c *Cache) UpdateCertificates(ctx context.Context, certs []models.InspectionCertificate) error {
	if err := c.client.UpdateCertificates(ctx, certs); err != nil {
		return err
	}
	c.mu.Lock()
	c.certificates = certs
	c.mu.Unlock()
	c.notify("certificates", "updated")
	return nil
}

// Projects returns the cached list.
func (c *Cache) Projects() []models.ProjectUpdate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ProjectUpdate(nil), c.projects...)
}

// UpdateProjects writes through, then replaces the cache.
func (c *Cache) UpdateProjects(ctx context.Context, projects []models.ProjectUpdate) error {
	if err := c.client.UpdateProjects(ctx, projects); err != nil {
		return err
	}
	c.mu.Lock()
	c.projects = projects
	c.mu.Unlock()
	c.notify("projects", "updated")
	return nil
}

// BlogPosts returns the cached list, newest first.
func (c *Cache) BlogPosts() []models.BlogPost {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.BlogPost(nil), c.blogPosts...)
}

// AddBlogPost writes through, then prepends to the cache.
func (c *Cache) AddBlogPost(ctx context.Context, post models.BlogPost) error {
	if err := c.client.CreateBlogPost(ctx, post); err != nil {
		return err
	}
	c.mu.Lock()
	c.blogPosts = append([]models.BlogPost{post}, c.blogPosts...)
	c.mu.Unlock()
	c.notify("blog", "created")
	return nil
}

// Jobs returns the cached list, newest first.
func (c *Cache) Jobs() []models.JobPosition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.JobPosition(nil), c.jobs...)
}

// AddJob prepends a vacancy and persists the resulting list, mirroring
// AddBlogPost so jobs survive a restart too.
func (c *Cache) AddJob(ctx context.Context, job models.JobPosition) error {
	c.mu.RLock()
	jobs := append([]models.JobPosition{job}, c.jobs...)
	c.mu.RUnlock()

	if err := c.client.SaveJobs(ctx, jobs); err != nil {
		return err
	}
	c.mu.Lock()
	c.jobs = jobs
	c.mu.Unlock()
	c.notify("jobs", "created")
	return nil
}

func (c *Cache) notify(collection, action string) {
	if c.onChange != nil {
		c.onChange(collection, action)
	}
}
