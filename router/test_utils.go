package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ahudio-admin-server/internal/config"
	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/vapi"
	"ahudio-admin-server/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// TestEnv is a fully wired router over an in-memory database and a fake remote platform
type TestEnv struct {
	Router *Router
	Issuer *middleware.TokenIssuer
	Remote *httptest.Server
	Config *config.Config
}

// SetupTestRouter builds a TestEnv. The fake platform answers every list with an empty array.
func SetupTestRouter(t *testing.T, opts Options) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/assistant", "/phone-number", "/call":
			fmt.Fprint(w, `[]`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"not found"}`)
		}
	}))
	t.Cleanup(remote.Close)

	cfg := config.DefaultConfig()
	cfg.JWT.SigningKey = "router-test-signing-key"
	cfg.JWT.TokenTTL = time.Hour
	cfg.Vapi.Endpoint = remote.URL
	cfg.Upload.MaxBytes = 1 << 10

	issuer, err := middleware.NewTokenIssuer(cfg)
	if err != nil {
		t.Fatalf("failed to create token issuer: %v", err)
	}

	client := vapi.NewClient(cfg.Vapi.Endpoint, "test-credential")
	h := BuildHandlers(db.SetupTestDB(t), client, issuer, cfg)

	if opts.MaxUploadBytes == 0 {
		opts.MaxUploadBytes = cfg.Upload.MaxBytes
	}

	return &TestEnv{
		Router: NewRouter(h, issuer, opts),
		Issuer: issuer,
		Remote: remote,
		Config: cfg,
	}
}

// Token returns a valid bearer token for username
func (e *TestEnv) Token(t *testing.T, username string) string {
	t.Helper()
	token, err := e.Issuer.Issue(username)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}
