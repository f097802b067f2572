package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omegapc/omegacms/internal/apperr"
	"github.com/omegapc/omegacms/internal/models"
)

func TestHTTPLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(Session{
			User:  models.User{ID: "admin-1", Email: creds["email"], Role: models.RoleAdmin},
			Token: "remote-token",
		})
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, srv.Client(), nil)

	sess, err := h.Login(context.Background(), "admin@omega.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Token != "remote-token" {
		t.Errorf("token = %q", sess.Token)
	}

	_, err = h.Login(context.Background(), "admin@omega.com", "bad")
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestHTTPCertificatesSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.InspectionCertificate{{ID: "C-001", Status: models.CertStatusValid}})
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, srv.Client(), func() string { return "tok-123" })

	certs, err := h.Certificates(context.Background())
	if err != nil {
		t.Fatalf("Certificates: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if len(certs) != 1 || certs[0].ID != "C-001" {
		t.Errorf("certs = %+v", certs)
	}
}

func TestHTTPGetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, srv.Client(), nil)
	if _, err := h.Services(context.Background()); err == nil {
		t.Error("non-200 should surface as error")
	}
}

func TestHTTPUpdateCompanyInfo(t *testing.T) {
	var got models.CompanyInfo
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/company-info" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, srv.Client(), nil)
	if err := h.UpdateCompanyInfo(context.Background(), models.CompanyInfo{Name: "OMEGA"}); err != nil {
		t.Fatalf("UpdateCompanyInfo: %v", err)
	}
	if got.Name != "OMEGA" {
		t.Errorf("server saw %+v", got)
	}
}

func TestHTTPUnsupportedWrites(t *testing.T) {
	h := NewHTTP("http://unused.invalid", nil, nil)
	ctx := context.Background()

	if err := h.UpdateCertificates(ctx, nil); !errors.Is(err, apperr.ErrUnsupported) {
		t.Errorf("UpdateCertificates err = %v, want ErrUnsupported", err)
	}
	if err := h.UpdateProjects(ctx, nil); !errors.Is(err, apperr.ErrUnsupported) {
		t.Errorf("UpdateProjects err = %v, want ErrUnsupported", err)
	}
	if err := h.CreateBlogPost(ctx, models.BlogPost{}); !errors.Is(err, apperr.ErrUnsupported) {
		t.Errorf("CreateBlogPost err = %v, want ErrUnsupported", err)
	}
	if err := h.SaveJobs(ctx, nil); !errors.Is(err, apperr.ErrUnsupported) {
		t.Errorf("SaveJobs err = %v, want ErrUnsupported", err)
	}
}

func TestHTTPJobsAlwaysEmpty(t *testing.T) {
	h := NewHTTP("http://unused.invalid", nil, nil)

	jobs, err := h.Jobs(context.Background())
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("jobs = %+v, want empty", jobs)
	}
}
