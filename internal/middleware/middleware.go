package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NoticeCookieName carries a one-shot user-visible notice across a redirect,
// the flash mechanism of the original form flow. The view layer clears it
// after display.
const NoticeCookieName = "aviso"

// noticeMaxAge keeps stale notices from lingering if never displayed
const noticeMaxAge = 60

// SetNotice stores a transient notice for the next rendered page
func SetNotice(c *gin.Context, message string) {
	c.SetCookie(NoticeCookieName, message, noticeMaxAge, "/", "", false, false)
}

// WantsHTML reports whether the caller is a browser form client, which gets
// notice+redirect error handling instead of a JSON envelope
func WantsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html")
}

// RequestLogger logs each request with method, path, status and duration
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("clientIP", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}
