package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	sessionSvc "github.com/KirkDiggler/guildkeeper/internal/services/session"
)

const stateCookie = "oauth_state"

type meResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// handleLogin redirects the user to Discord's authorize page
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		respondError(w, err)
		return
	}
	state := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600,
	})

	http.Redirect(w, r, s.oauthClient.AuthorizeURL(state), http.StatusTemporaryRedirect)
}

// handleCallback completes the OAuth dance: code for token, token for
// identity, identity for session
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || state == "" || cookie.Value != state {
		respondError(w, errUnauthorized)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, errUnauthorized)
		return
	}

	token, err := s.oauthClient.ExchangeCode(r.Context(), code)
	if err != nil {
		respondError(w, errUnauthorized)
		return
	}

	identity, err := s.oauthClient.FetchIdentity(r.Context(), token.AccessToken)
	if err != nil {
		respondError(w, errUnauthorized)
		return
	}

	output, err := s.sessionService.StartSession(r.Context(), &sessionSvc.StartSessionInput{
		UserID:      identity.ID,
		Username:    identity.Username,
		Avatar:      identity.Avatar,
		AccessToken: token.AccessToken,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    output.Session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  output.Session.ExpiresAt,
	})

	http.Redirect(w, r, s.webURL, http.StatusTemporaryRedirect)
}

// handleLogout revokes the session and clears the cookie
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err == nil {
		if err := s.sessionService.RevokeSession(r.Context(), &sessionSvc.RevokeSessionInput{
			Token: cookie.Value,
		}); err != nil {
			respondError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleMe returns the identity behind the session
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	respondJSON(w, http.StatusOK, meResponse{
		UserID:   session.UserID,
		Username: session.Username,
		Avatar:   session.Avatar,
	})
}
