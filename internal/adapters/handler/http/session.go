package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the opaque per-browser session
// token. The token is the uniqueness key for one-vote-per-person, not a
// security credential.
const SessionCookieName = "vtf_session"

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionMiddleware assigns a session token to every request, minting a
// fresh one when the cookie is absent, and stores it in the context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			sessionID = cookie.Value
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   12 * 60 * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionIDFromContext returns the session token stored by
// SessionMiddleware, or "" when the middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
