package middleware

import (
	"net/http"

	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BodyLimit answers 413 when the declared Content-Length is above maxBytes.
// Bodies of unknown length are wrapped in http.MaxBytesReader, so reading
// past the limit fails with *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			RequestTooLarge(c)
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequestTooLarge aborts with the 413 error body.
func RequestTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
		dto.NewErrorResponse(dto.ErrCodeRequestTooLarge, dto.MsgRequestTooLarge, GetRequestID(c)))
}
