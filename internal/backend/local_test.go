package backend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/omegapc/omegacms/internal/apperr"
	"github.com/omegapc/omegacms/internal/models"
	"github.com/omegapc/omegacms/internal/store"
)

func testLocal(t *testing.T, password string) *Local {
	t.Helper()
	return NewLocal(store.NewMemory(), password, 0)
}

func TestLoginSuccess(t *testing.T) {
	l := testLocal(t, "secret")

	sess, err := l.Login(context.Background(), "admin@omega.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.User.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", sess.User.Role)
	}
	if sess.User.Email != "admin@omega.com" {
		t.Errorf("email = %q", sess.User.Email)
	}
	if !strings.HasPrefix(sess.Token, "session-") {
		t.Errorf("token = %q, want session- prefix", sess.Token)
	}
}

func TestLoginNonAdminEmail(t *testing.T) {
	l := testLocal(t, "secret")

	_, err := l.Login(context.Background(), "visitor@omega.com", "secret")
	if !errors.Is(err, apperr.ErrAccessDenied) {
		t.Errorf("err = %v, want ErrAccessDenied", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	l := testLocal(t, "secret")

	_, err := l.Login(context.Background(), "admin@omega.com", "wrong")
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginNoPasswordConfigured(t *testing.T) {
	l := testLocal(t, "")

	_, err := l.Login(context.Background(), "admin@omega.com", "anything")
	if !errors.Is(err, apperr.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestLoginCancelledContext(t *testing.T) {
	l := NewLocal(store.NewMemory(), "secret", 1e9)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.Login(ctx, "admin@omega.com", "secret")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestServicesSeededOnFirstRead(t *testing.T) {
	s := store.NewMemory()
	l := NewLocal(s, "", 0)

	items, err := l.Services(context.Background())
	if err != nil {
		t.Fatalf("Services: %v", err)
	}
	if len(items) != 12 {
		t.Fatalf("seed has %d services, want 12", len(items))
	}

	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.ID] {
			t.Errorf("duplicate seed id %q", item.ID)
		}
		seen[item.ID] = true
	}

	// The seed is persisted, so a second read comes from the store.
	if !store.Exists(s, store.KeyServices) {
		t.Error("services slot not persisted after first read")
	}
	again, err := l.Services(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(items) {
		t.Errorf("second read has %d items, want %d", len(again), len(items))
	}
}

func TestCompanyInfoRoundTrip(t *testing.T) {
	l := testLocal(t, "")
	ctx := context.Background()

	info, err := l.CompanyInfo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name == "" {
		t.Fatal("seed company name is empty")
	}

	info.Phone = "+20 100 000 0000"
	if err := l.UpdateCompanyInfo(ctx, info); err != nil {
		t.Fatalf("UpdateCompanyInfo: %v", err)
	}

	got, err := l.CompanyInfo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Phone != "+20 100 000 0000" {
		t.Errorf("phone = %q, not persisted", got.Phone)
	}
}

func TestUpdateServicesDedupesLastWins(t *testing.T) {
	l := testLocal(t, "")
	ctx := context.Background()

	items := []models.ServiceItem{
		{ID: "ndt", Title: "First"},
		{ID: "scaffolding", Title: "Keep"},
		{ID: "ndt", Title: "Second"},
	}
	if err := l.UpdateServices(ctx, items); err != nil {
		t.Fatalf("UpdateServices: %v", err)
	}

	got, err := l.Services(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "ndt" || got[0].Title != "Second" {
		t.Errorf("got[0] = %+v, want last ndt occurrence at first position", got[0])
	}
	if got[1].ID != "scaffolding" {
		t.Errorf("got[1].ID = %q, want scaffolding", got[1].ID)
	}
}

func TestBlogPostsPrepend(t *testing.T) {
	l := testLocal(t, "")
	ctx := context.Background()

	posts, err := l.BlogPosts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 0 {
		t.Fatalf("fresh store has %d posts, want 0", len(posts))
	}

	if err := l.CreateBlogPost(ctx, models.BlogPost{ID: "a", Title: "older"}); err != nil {
		t.Fatal(err)
	}
	if err := l.CreateBlogPost(ctx, models.BlogPost{ID: "b", Title: "newer"}); err != nil {
		t.Fatal(err)
	}

	posts, err = l.BlogPosts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 || posts[0].ID != "b" || posts[1].ID != "a" {
		t.Errorf("posts = %+v, want newest first", posts)
	}
}

func TestSaveJobsPersists(t *testing.T) {
	s := store.NewMemory()
	l := NewLocal(s, "", 0)
	ctx := context.Background()

	jobs := []models.JobPosition{{ID: "j1", Title: "Rope Access Technician"}}
	if err := l.SaveJobs(ctx, jobs); err != nil {
		t.Fatalf("SaveJobs: %v", err)
	}

	// A second client over the same store sees the list.
	got, err := NewLocal(s, "", 0).Jobs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "j1" {
		t.Errorf("jobs = %+v", got)
	}
}

func TestDedupeByID(t *testing.T) {
	in := []models.ServiceItem{
		{ID: "a", Title: "a1"},
		{ID: "b", Title: "b1"},
		{ID: "a", Title: "a2"},
		{ID: "c", Title: "c1"},
		{ID: "a", Title: "a3"},
	}
	out := DedupeByID(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0].ID != "a" || out[0].Title != "a3" {
		t.Errorf("out[0] = %+v, want the last a", out[0])
	}
	if out[1].ID != "b" || out[2].ID != "c" {
		t.Errorf("order changed: %+v", out)
	}
}

func TestDedupeByIDEmpty(t *testing.T) {
	if out := DedupeByID(nil); len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}
