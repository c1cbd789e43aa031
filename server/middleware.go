package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// ContextRequestID is the gin context key holding the request's UUID.
	ContextRequestID = "requestID"

	// HeaderRequestID carries the request ID in both directions.
	HeaderRequestID = "X-Request-ID"
)

// RequestLogger tags each request with a UUID (reusing a valid incoming
// X-Request-ID) and logs one line per request once the handler returns.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderRequestID))
		if err != nil {
			id = uuid.New()
		}
		c.Set(ContextRequestID, id.String())
		c.Header(HeaderRequestID, id.String())

		began := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": id.String(),
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(began),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// requestID returns the ID assigned by RequestLogger, or a fresh one when the
// middleware is not installed.
func requestID(c *gin.Context) string {
	if id := c.GetString(ContextRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}
