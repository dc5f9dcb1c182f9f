//go:build unit

package api_test

import (
	"net/http"

	"room-booking/internal/domain/user"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// fakeAuth stands in for AuthMiddleware.RequireAuth: any Authorization header
// authenticates as the principal returned by current.
func fakeAuth(current func() *shared.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Access token required")
			return
		}
		p := current()
		c.Set("principal", p)
		c.Set("user_id", p.UserID)
		c.Set("user_role", user.Role(p.Role))
		c.Next()
	}
}
