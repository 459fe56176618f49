package adapthttp

import (
	"errors"
	"net/http"

	"healthmate/internal/app"
	"healthmate/internal/domain"
)

const sessionCookieName = "session"

// invalidCredentialsMessage is shown for unknown email and wrong password
// alike, so the form never reveals which accounts exist.
const invalidCredentialsMessage = "Invalid email or password."

type authPageData struct {
	Error      string
	Email      string
	SSOEnabled bool
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, http.StatusOK, "register.html", authPageData{SSOEnabled: s.oidc != nil})
	case http.MethodPost:
		s.handleRegisterSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, err := s.auth.Register(r.Context(), email, password)
	switch {
	case errors.Is(err, app.ErrInvalidRegistration):
		s.render(w, http.StatusUnprocessableEntity, "register.html", authPageData{
			Error: "Email and password are required.", Email: email, SSOEnabled: s.oidc != nil,
		})
	case errors.Is(err, domain.ErrDuplicateEmail):
		s.render(w, http.StatusUnprocessableEntity, "register.html", authPageData{
			Error: "That email is already registered.", Email: email, SSOEnabled: s.oidc != nil,
		})
	case err != nil:
		s.serverError(w, err)
	default:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, http.StatusOK, "login.html", authPageData{SSOEnabled: s.oidc != nil})
	case http.MethodPost:
		s.handleLoginSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	token, err := s.auth.Login(r.Context(), email, password)
	switch {
	case errors.Is(err, app.ErrInvalidCredentials):
		s.render(w, http.StatusUnprocessableEntity, "login.html", authPageData{
			Error: invalidCredentialsMessage, Email: email, SSOEnabled: s.oidc != nil,
		})
	case err != nil:
		s.serverError(w, err)
	default:
		s.setSessionCookie(w, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := s.auth.Logout(r.Context(), cookie.Value); err != nil {
			s.serverError(w, err)
			return
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(s.auth.SessionTTL().Seconds()),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
