package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

var sugar = zap.NewNop().Sugar()

// SetLogger передаёт в мидлвари логгер приложения.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		sugar = l
	}
}

// responseData — статус и размер ответа для логов и метрик.
type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	data *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.data.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.data.status = statusCode
}

func wrap(w http.ResponseWriter) (*loggingResponseWriter, *responseData) {
	data := &responseData{status: http.StatusOK}
	return &loggingResponseWriter{ResponseWriter: w, data: data}, data
}

// WithLogging пишет в лог каждый запрос. Уровень зависит от статуса:
// 5xx пишется как error, 4xx как warn.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw, data := wrap(w)

		next.ServeHTTP(lw, r)

		kv := []any{
			"method", r.Method,
			"uri", r.RequestURI,
			"route", routePattern(r),
			"ip", clientIP(r),
			"status", data.status,
			"size", data.size,
			"duration", time.Since(start),
		}
		switch {
		case data.status >= http.StatusInternalServerError:
			sugar.Errorw("request", kv...)
		case data.status >= http.StatusBadRequest:
			sugar.Warnw("request", kv...)
		default:
			sugar.Infow("request", kv...)
		}
	})
}
