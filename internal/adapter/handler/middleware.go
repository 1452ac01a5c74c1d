package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/auth"
	"github.com/nikolayk812/shopfront/internal/domain"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	identityKey     = "identity"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// Authenticate attaches the caller when a bearer token is present. Requests
// without a token continue anonymously, an invalid token is rejected.
func Authenticate(tokens TokenParser, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		id, err := tokens.Parse(token)
		if err != nil {
			logger.Debug("token rejected", zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
			c.AbortWithStatusJSON(statusOf(err), gin.H{"error": domain.PublicMessage(err)})
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

// OptionalIdentity treats an invalid token like a missing one.
func OptionalIdentity(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))
		if token != "" {
			if id, err := tokens.Parse(token); err == nil {
				setIdentity(c, id)
			}
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, id domain.Identity) {
	c.Set(identityKey, id)
	c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
}

func identity(c *gin.Context) *domain.Identity {
	return auth.IdentityFrom(c.Request.Context())
}
