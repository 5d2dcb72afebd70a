package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/ikkim/creme-backend/internal/errors"
	"github.com/ikkim/creme-backend/pkg/logger"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "request_id"
	loggerKey    = "logger"
)

// quietPaths complete at debug level; load balancers poll them constantly.
var quietPaths = map[string]bool{
	"/health": true,
}

// LoggingMiddleware attaches a request-scoped logger and logs one line per
// completed request, leveled by status code.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		log := logger.WithContext(logger.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
		})
		c.Set(loggerKey, log)

		log.Debug("Incoming request", logger.Fields{
			"user_agent": c.Request.UserAgent(),
			"query":      c.Request.URL.RawQuery,
		})

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		fields := logger.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"body_size":   c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		const msg = "Request completed"
		switch {
		case statusCode >= http.StatusInternalServerError:
			log.Error(msg, nil, fields)
		case statusCode >= http.StatusBadRequest:
			log.Warn(msg, fields)
		case quietPaths[c.FullPath()]:
			log.Debug(msg, fields)
		default:
			log.Info(msg, fields)
		}
	}
}

// RecoveryMiddleware turns a handler panic into a logged 500 with the usual
// error body.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLoggerFromContext(c).Error("Panic recovered", fmt.Errorf("%v", r), logger.Fields{
					"path": c.Request.URL.Path,
				})
				apperrors.InternalError(c, "")
			}
		}()
		c.Next()
	}
}

// GetLoggerFromContext returns the request-scoped logger, or the global one
// outside a request.
func GetLoggerFromContext(c *gin.Context) *logger.Logger {
	if l, ok := c.Get(loggerKey); ok {
		if log, ok := l.(*logger.Logger); ok {
			return log
		}
	}
	return logger.Get()
}

// GetRequestID returns the id assigned by LoggingMiddleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
