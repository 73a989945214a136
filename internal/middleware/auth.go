package middleware

import (
	"context"
	"olympus_backend/internal/model"
	"olympus_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionAuthenticator turns a raw token into verified claims.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*util.Claims, error)
}

// RoleLookup reads a user's current role from storage.
type RoleLookup interface {
	CurrentRole(userID uint) (model.UserRole, error)
}

// CheckLogin fails with ErrAuthRequired when no identity is present.
func CheckLogin(claims *util.Claims) error {
	if claims == nil {
		return util.AuthRequired()
	}
	return nil
}

// CheckRole fails with ErrForbidden unless role is allowed. Admin is allowed
// wherever teacher is.
func CheckRole(role model.UserRole, allowed ...model.UserRole) error {
	for _, r := range allowed {
		if role == r || (r == model.Teacher && role == model.Admin) {
			return nil
		}
	}
	return util.ForbiddenError("you do not have permission to access this page")
}

// TokenFromRequest reads a bearer token, falling back to the session cookie.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

func RequireLogin(auth SessionAuthenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.Authenticate(c.Request.Context(), TokenFromRequest(c, cookieName))
		if err == nil {
			err = CheckLogin(claims)
		}
		if err != nil {
			util.RespondError(c, err)
			c.Abort()
			return
		}

		util.SetClaims(c, claims)
		c.Next()
	}
}

// OptionalLogin attaches the identity when a valid session is presented and
// lets anonymous requests through.
func OptionalLogin(auth SessionAuthenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := TokenFromRequest(c, cookieName); token != "" {
			if claims, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				util.SetClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRole must run after RequireLogin. The role is re-read from storage
// so a demoted user loses access before their session expires.
func RequireRole(lookup RoleLookup, roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetClaimsFromContext(c)
		if err := CheckLogin(claims); err != nil {
			util.RespondError(c, err)
			c.Abort()
			return
		}

		role, err := lookup.CurrentRole(claims.Identity.ID)
		if err == nil {
			err = CheckRole(role, roles...)
		}
		if err != nil {
			util.RespondError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
