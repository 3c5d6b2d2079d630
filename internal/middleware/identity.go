package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/JamilPr1/whatsapp-booking-system/internal/domain"
)

// Gateway-provided identity headers. Authentication itself happens
// upstream; this service only trusts what the gateway forwards.
const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"

	requesterKey = "requester"
)

// Identity stashes the caller's identity in the context when present.
// Routes that need one enforce it via RequireIdentity/RequireAdmin.
func Identity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		role := domain.Role(c.GetHeader(UserRoleHeader))
		if id != "" && role.Valid() {
			c.Set(requesterKey, domain.Requester{UserID: id, Role: role})
		}

		c.Next()
	}
}

func RequireIdentity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := RequesterFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		requester, ok := RequesterFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authentication required"})
			return
		}
		if !requester.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func RequesterFrom(c *ginext.Context) (domain.Requester, bool) {
	v, ok := c.Get(requesterKey)
	if !ok {
		return domain.Requester{}, false
	}
	requester, ok := v.(domain.Requester)
	return requester, ok
}
