// Package clitest builds command contexts backed by a temporary store and
// an httptest backend.
package clitest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/hrportal/internal/api"
	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/config"
	"github.com/julianstephens/hrportal/internal/geo"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/session"
	"github.com/julianstephens/hrportal/internal/storage/sqlite"
)

// Now is the pinned wall clock: Wednesday 2026-01-07 10:00 UTC
var Now = time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC)

// Env is a ready command context plus its captured output
type Env struct {
	Ctx    *cli.Context
	Out    *bytes.Buffer
	Store  *sqlite.Store
	Server *httptest.Server
}

// New creates an Env whose API client talks to handler. A nil handler
// answers every request with 404.
func New(t *testing.T, handler http.Handler) *Env {
	t.Helper()
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "hrportal.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Config:  &config.Config{APIURL: srv.URL, DataDir: t.TempDir(), Timezone: "UTC"},
		Store:   store,
		API:     api.New(srv.URL, srv.Client()),
		Out:     out,
		Now:     func() time.Time { return Now },
		Locator: geo.StaticLocator{Position: geo.Position{Latitude: 12.97, Longitude: 77.59}},
		Geocoder: geo.GeocoderFunc(func(context.Context, geo.Position) (string, error) {
			return "Bengaluru", nil
		}),
	}
	return &Env{Ctx: ctx, Out: out, Store: store, Server: srv}
}

// Login stores user as the signed-in session
func (e *Env) Login(t *testing.T, user models.User) {
	t.Helper()
	sess, err := session.Open(e.Store)
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}
	if err := sess.Login(user); err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
}

// JSON writes v as a JSON response
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode reads a JSON request body into v
func Decode(t *testing.T, r *http.Request, v any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Errorf("failed to decode %s %s body: %v", r.Method, r.URL.Path, err)
	}
}
