// Package store provides the persistent key-value slots backing mock mode.
// Each slot holds one JSON-encoded collection; there is no expiry and no
// transactionality across keys.
package store

import (
	"encoding/json"
	"fmt"
)

// Storage keys. One slot per CMS collection plus the session slots.
const (
	KeyCompanyInfo  = "omega_companyInfo"
	KeyServices     = "omega_services"
	KeyCertificates = "omega_certificates"
	KeyProjects     = "omega_projects"
	KeyBlogPosts    = "omega_blogPosts"
	KeyJobs         = "omega_jobs"
	KeyUserSession  = "user_session"
	KeyToken        = "token"
	KeyTheme        = "omega_theme"
)

// Store is the raw slot interface. Get returns apperr.ErrNotFound for an
// absent key; Set overwrites unconditionally.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Load reads and decodes the slot at key. An absent slot or one that fails to
// decode yields fallback; decode failures are never surfaced to the caller.
func Load[T any](s Store, key string, fallback T) T {
	raw, err := s.Get(key)
	if err != nil {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// Save encodes v and writes it to the slot at key. Write failures propagate.
func Save[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return s.Set(key, raw)
}

// Exists reports whether the slot at key holds a value.
func Exists(s Store, key string) bool {
	_, err := s.Get(key)
	return err == nil
}
