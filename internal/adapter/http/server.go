// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"healthmate/internal/app"
	"healthmate/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// OIDC holds the provider handles for the optional SSO login flow.
type OIDC struct {
	Provider *oidc.Provider
	OAuth2   oauth2.Config
}

// NewOIDC discovers the issuer and prepares the OAuth2 flow.
func NewOIDC(ctx context.Context, cfg config.OIDCConfig) (*OIDC, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	return &OIDC{
		Provider: provider,
		OAuth2: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}, nil
}

// Server is the driving HTTP adapter that routes requests to application
// services and renders the HTML views.
type Server struct {
	auth *app.AuthService
	logs *app.LogService
	tmpl *template.Template
	oidc *OIDC
}

// New creates a Server wired to the given application services. oidc may
// be nil, in which case the SSO routes are not registered.
func New(auth *app.AuthService, logs *app.LogService, oidc *OIDC) *Server {
	return &Server{
		auth: auth,
		logs: logs,
		tmpl: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		oidc: oidc,
	}
}

// Handler returns the root http.Handler for the application. Every route
// that reads or writes health logs sits behind requireAuth.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)

	mux.Handle("/", s.requireAuth(http.HandlerFunc(s.handleDashboard)))
	mux.Handle("/add", s.requireAuth(http.HandlerFunc(s.handleAddLog)))
	mux.Handle("/logout", s.requireAuth(http.HandlerFunc(s.handleLogout)))

	if s.oidc != nil {
		mux.HandleFunc("/sso/login", s.handleSSOLogin)
		mux.HandleFunc("/sso/callback", s.handleSSOCallback)
	}

	return s.loggingMiddleware(withNoCache(mux))
}
