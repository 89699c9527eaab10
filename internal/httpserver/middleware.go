package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rajvenkat512/fruits-webapp/internal/domain"
	authsvc "github.com/Rajvenkat512/fruits-webapp/internal/service/auth"
)

const (
	userIDHeader    = "x-user-id"
	requestIDHeader = "X-Request-ID"
	userIDKey       = "userID"
)

// requestIDMiddleware echoes the caller's request id, minting one when absent.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// authMiddleware resolves the bearer token to a user id. A x-user-id header,
// when sent, must name the same user.
func authMiddleware(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortMessage(c, http.StatusUnauthorized, "authentication required")
			return
		}
		userID, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidToken) {
				abortMessage(c, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			abortMessage(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if claimed := strings.TrimSpace(c.GetHeader(userIDHeader)); claimed != "" && claimed != userID {
			abortMessage(c, http.StatusUnauthorized, "user id does not match token")
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// adminMiddleware must run after authMiddleware.
func adminMiddleware(users UserService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := users.Profile(c.Request.Context(), currentUserID(c))
		if err != nil {
			logger.Printf("admin check: user=%s error=%v", currentUserID(c), err)
			abortMessage(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if p.Role != authsvc.RoleAdmin {
			abortMessage(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func abortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// writeError maps service errors onto status codes and {"message": ...} bodies.
func writeError(c *gin.Context, logger *log.Logger, err error) {
	var invalid *domain.ValidationError
	switch {
	case errors.As(err, &invalid):
		abortMessage(c, http.StatusBadRequest, invalid.Msg)
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		abortMessage(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, authsvc.ErrInvalidToken):
		abortMessage(c, http.StatusUnauthorized, "invalid or expired token")
	case errors.Is(err, domain.ErrNotFound):
		abortMessage(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		abortMessage(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		abortMessage(c, http.StatusConflict, err.Error())
	default:
		logger.Printf("%s %s: error=%v", c.Request.Method, c.FullPath(), err)
		abortMessage(c, http.StatusInternalServerError, "internal server error")
	}
}
