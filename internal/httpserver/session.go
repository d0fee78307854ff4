// internal/httpserver/session.go
//
// Anonymous browser sessions.
// Each browser gets a random session ID carried in an HS256-signed JWT cookie.
// Stats, rounds and daily results are keyed by that ID.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"
)

// ctxSessionKey is the context key type for the session ID.
type ctxSessionKey struct{}

// withSession attaches the caller's session ID to the request context,
// issuing a fresh session cookie when none is present or it fails verification.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := s.parseSession(r)
		if id == "" {
			id = genID()
			if err := s.issueSession(w, id); err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("sign session")
				writeError(w, http.StatusInternalServerError, "session_failed")
				return
			}
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID returns the session ID placed in the context by withSession.
func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(ctxSessionKey{}).(string)
	return id
}

// parseSession returns the subject of a valid session cookie, or "".
func (s *Server) parseSession(r *http.Request) string {
	c, err := r.Cookie(s.cfg.CookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return ""
	}
	return claims.Subject
}

// issueSession signs a token for id and writes it as the session cookie.
func (s *Server) issueSession(w http.ResponseWriter, id string) error {
	now := s.now()
	exp := now.Add(s.cfg.SessionTTL())
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return err
	}
	secure := s.cfg.Production()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    ss,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
	return nil
}

// genID creates a 22‑char URL‑safe, crypto‑random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// nowUTC is the default clock.
func nowUTC() time.Time { return time.Now().UTC() }
