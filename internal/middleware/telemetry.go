package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OtelTracing instruments /api/ routes only; health, metrics and swagger
// traffic is not traced.
func OtelTracing(serviceName string) gin.HandlerFunc {
	traced := otelgin.Middleware(serviceName)
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			traced(c)
			return
		}
		c.Next()
	}
}

// TraceID exposes the active trace id as X-Trace-Id and tags the span with
// the request id so logs and traces can be joined.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if sc := span.SpanContext(); sc.IsValid() {
			c.Header("X-Trace-Id", sc.TraceID().String())
			if id := c.GetString(RequestIDKey); id != "" {
				span.SetAttributes(attribute.String("request.id", id))
			}
		}
		c.Next()
	}
}
