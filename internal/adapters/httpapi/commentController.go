package httpapi

import (
	"errors"
	"net/http"

	"blogicum/internal/adapters/httpapi/middleware"
	"blogicum/internal/core/errs"
	commentPort "blogicum/internal/ports/comment"

	"github.com/gin-gonic/gin"
)

type CommentController struct{ cc CommentUseCase }

func NewCommentController(cc CommentUseCase) *CommentController {
	return &CommentController{cc: cc}
}

// Add posts a comment to an existing post. Invalid text is discarded
// silently: the user lands back on the detail page either way, only a
// valid submission leaves a row behind.
func (ctl *CommentController) Add(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}

	var in commentPort.CommentInput
	if err := c.ShouldBind(&in); err != nil {
		redirectToPost(c, postID.String())
		return
	}

	_, err := ctl.cc.Add(c.Request.Context(), middleware.ActorID(c), postID, in)
	if errors.Is(err, errs.ErrInvalidInput) {
		redirectToPost(c, postID.String())
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	redirectToPost(c, postID.String())
}

// EditForm serves the comment edit form with the current text.
func (ctl *CommentController) EditForm(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		return
	}

	dto, err := ctl.cc.GetOwned(c.Request.Context(), middleware.ActorID(c), postID, commentID)
	if errors.Is(err, errs.ErrForbidden) {
		redirectToPost(c, postID.String())
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": dto})
}

// Update rewrites the actor's own comment.
func (ctl *CommentController) Update(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		return
	}

	var in commentPort.CommentInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := ctl.cc.Update(c.Request.Context(), middleware.ActorID(c), postID, commentID, in)
	if errors.Is(err, errs.ErrForbidden) {
		redirectToPost(c, postID.String())
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	redirectToPost(c, postID.String())
}

// Delete removes the actor's own comment.
func (ctl *CommentController) Delete(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentID")
	if !ok {
		return
	}

	err := ctl.cc.Delete(c.Request.Context(), middleware.ActorID(c), postID, commentID)
	if errors.Is(err, errs.ErrForbidden) {
		redirectToPost(c, postID.String())
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	redirectToPost(c, postID.String())
}
