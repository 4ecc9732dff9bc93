package handler

import (
	"net/http"
	"time"

	"github.com/bagdasarian/league-picks/internal/domain"
	"github.com/bagdasarian/league-picks/internal/session"
)

// RequireUser пропускает запрос дальше только с валидной сессией
func (h *Handler) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := h.sessions.TokenFromRequest(r)
		if token == "" {
			h.handleError(w, r, domain.ErrUnauthorized)
			return
		}

		userID, err := h.sessions.Parse(token)
		if err != nil {
			h.log.Debugw("rejected session", "path", r.URL.Path, "error", err)
			h.handleError(w, r, domain.ErrUnauthorized)
			return
		}

		next(w, r.WithContext(session.WithUserID(r.Context(), userID)))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// WithLogging пишет в лог метод, путь, статус и длительность каждого запроса
func (h *Handler) WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.log.Infow("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func currentUserID(r *http.Request) string {
	userID, _ := session.UserIDFromContext(r.Context())
	return userID
}
