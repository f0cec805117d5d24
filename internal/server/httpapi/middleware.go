package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/auth"
)

type ctxKey string

const principalIDKey ctxKey = "principalID"

// PrincipalID returns the durable account identifier the authentication
// gate injected for this request.
func PrincipalID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(principalIDKey).(string)
	return id, ok
}

// authenticate is the gate in front of every protected route. It extracts
// the bearer token, verifies it, and injects the principal into the request
// context; on any failure the handler is never reached. The gate touches no
// store state.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {

		header := req.Header.Get(common.AuthorizationHeaderName)
		if header == "" || !strings.HasPrefix(header, common.BearerSchemePrefix) {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		tokenString := strings.TrimPrefix(header, common.BearerSchemePrefix)

		claims, err := auth.ParseToken(tokenString, s.jwtSecret)
		if err != nil {
			// The client gets a bare 401; the reason stays in the log.
			s.logger.Debug(req.Context(), "token rejected", "error", err)
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(req.Context(), principalIDKey, claims.UserID)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// statusWriter captures the response status for request logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per request with method, path, status, and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, req)

		s.logger.Info(req.Context(), "request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}
