package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard/internal/httperr"
)

const identityKey = "auth_identity"

// RequireAuth validates the bearer token and stores the caller Identity in
// the request context. Requests without a valid access token get 401.
func RequireAuth(jwt *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, httperr.ErrUnauthenticated)
			return
		}

		id, err := jwt.ValidateAccess(token)
		if err != nil {
			httperr.Abort(c, httperr.ErrUnauthenticated)
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the Identity stored by RequireAuth.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
