package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const actorKey = "actorID"

// TokenVerifier validates a raw token and resolves the acting user.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, rawToken string) (uuid.UUID, error)
}

type Auth struct {
	verifier TokenVerifier
}

func NewAuth(verifier TokenVerifier) *Auth {
	return &Auth{verifier: verifier}
}

// Required guards routes that need a logged-in actor. Anonymous or
// invalid-token requests are redirected to the login page, they never
// see an error body.
func (a *Auth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, err := a.resolve(c)
		if err != nil || actorID == uuid.Nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(actorKey, actorID)
		c.Next()
	}
}

// Optional resolves the actor when a valid token is present and stays
// silent otherwise. Listing and detail pages use it so authors can see
// their own hidden posts.
func (a *Auth) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorID, err := a.resolve(c); err == nil && actorID != uuid.Nil {
			c.Set(actorKey, actorID)
		}
		c.Next()
	}
}

func (a *Auth) resolve(c *gin.Context) (uuid.UUID, error) {
	raw := Token(c)
	if raw == "" {
		return uuid.Nil, nil
	}
	return a.verifier.VerifyToken(c.Request.Context(), raw)
}

// Token extracts the bearer token from the Authorization header or,
// for browser flows, the session cookie.
func Token(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// ActorID returns the acting user set by Required/Optional, or
// uuid.Nil for an anonymous request.
func ActorID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(actorKey)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
