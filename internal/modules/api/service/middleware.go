package service

import (
	"net/http"
	"time"

	"trade_gateway/pkg/logger"

	"github.com/opentracing/opentracing-go"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// observed wraps a handler with a tracing span and access logging.
func (h *Handlers) observed(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		span := opentracing.GlobalTracer().StartSpan(name)
		defer span.Finish()
		span.SetTag("http.method", r.Method)
		span.SetTag("http.url", r.URL.Path)

		started := time.Now()
		h.state.TouchRequest(started)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r.WithContext(opentracing.ContextWithSpan(r.Context(), span)))

		span.SetTag("http.status_code", rec.status)
		logger.Info("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(started))
	}
}
