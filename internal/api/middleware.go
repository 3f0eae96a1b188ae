package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/pkg/httputil"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	uidKey
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware keeps a well-formed X-Request-ID coming from a proxy and
// generates one otherwise. The id is echoed back on the response.
func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, err := uuid.Parse(r.Header.Get(requestIDHeader))
		if err != nil {
			reqID = uuid.New()
		}
		w.Header().Set(requestIDHeader, reqID.String())
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, reqID)))
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attrs := []any{
			slog.String("from", r.RemoteAddr),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		}
		if reqID, ok := r.Context().Value(requestIDKey).(uuid.UUID); ok {
			attrs = append(attrs, slog.String("request_id", reqID.String()))
		}
		logger := slog.Default().With(attrs...)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey, logger)))
	})
}

// LoggerExtensionMiddleware runs after auth and tags the request logger with the user id.
func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := GetUIDFromContext(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context()).With(slog.String("uid", uid.String()))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey, logger)))
	})
}

// AuthMiddleware accepts bearer tokens issued by the auth service and puts the
// user id from their claims into the request context.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, status, err := s.authenticate(r)
		if err != nil {
			if status == http.StatusInternalServerError {
				logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, status, "error parsing token", nil)
				return
			}
			logger.Warn("auth failed", slog.String("reason", err.Error()))
			httputil.WriteErrorResponse(w, status, "authorization failed", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
	})
}

func (s *Server) authenticate(r *http.Request) (uuid.UUID, int, error) {
	tokenString, err := GetTokenFromHeader(r)
	if err != nil {
		return uuid.Nil, http.StatusUnauthorized, err
	}
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return uuid.Nil, http.StatusUnauthorized, errorvalues.ErrInvalidToken
		}
		return uuid.Nil, http.StatusInternalServerError, err
	}
	now := time.Now()
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) ||
		(claims.NotBefore != nil && claims.NotBefore.Time.After(now)) {
		return uuid.Nil, http.StatusUnauthorized, errTokenNotActive
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil || uid == uuid.Nil {
		return uuid.Nil, http.StatusUnauthorized, errBadSubject
	}
	return uid, http.StatusOK, nil
}

var (
	errTokenNotActive = errors.New("token expired or not yet valid")
	errBadSubject     = errors.New("token carries no valid user id")
	errNoUser         = errors.New("uid invalid or doesn't exist")
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MonitoringMiddleware records request count and latency labelled by route pattern.
func (s *Server) MonitoringMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		pattern := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}
		s.metrics.ObserveRequest(pattern, r.Method, rec.status, time.Since(start))
	})
}

func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.allow(clientIP(r)) {
			GetLoggerFromCtx(r.Context()).Warn("rate limit exceeded")
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetTokenFromHeader extracts the token of an "Authorization: Bearer <token>" header.
func GetTokenFromHeader(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errorvalues.ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return token, nil
}

func WithUserID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidKey, uid)
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errNoUser
	}
	return uid, nil
}
