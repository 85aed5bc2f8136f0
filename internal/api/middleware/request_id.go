package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequestID назначает запросу X-Request-ID (или берёт пришедший) и логирует его завершение
func RequestID(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)

			start := time.Now()
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))

			if rw.statusCode >= http.StatusInternalServerError {
				log.Error("%s %s - status=%d request_id=%s duration=%s", r.Method, r.URL.Path, rw.statusCode, requestID, time.Since(start))
				return
			}
			log.Info("%s %s - status=%d request_id=%s duration=%s", r.Method, r.URL.Path, rw.statusCode, requestID, time.Since(start))
		})
	}
}

// GetRequestID достаёт ID запроса из контекста
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
