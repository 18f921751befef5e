package httpapi

import (
	"errors"
	"net/http"

	"blogicum/internal/core/errs"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// fail maps service errors onto HTTP responses. ErrForbidden is not
// handled here: denial is always a redirect to the relevant post, the
// controllers own that.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// redirectToPost is the graceful fallback of the author-only gate.
func redirectToPost(c *gin.Context, postID string) {
	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}

func redirectToProfile(c *gin.Context, username string) {
	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

// pathID parses a uuid path parameter. A malformed identifier behaves
// like a missing resource.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return uuid.Nil, false
	}
	return id, true
}
