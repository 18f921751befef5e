package httpapi

import (
	"errors"
	"net/http"

	"blogicum/internal/adapters/httpapi/middleware"
	"blogicum/internal/core/errs"
	postPort "blogicum/internal/ports/post"
	"blogicum/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

// Index serves the public front page.
func (ctl *PostController) Index(c *gin.Context) {
	page, err := ctl.pc.Index(c.Request.Context(), pagination.ParsePage(c.Query("page")))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_obj": page})
}

// Detail serves a single post with its comments and an empty comment
// form. Non-authors only ever see publicly visible posts.
func (ctl *PostController) Detail(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}
	detail, err := ctl.pc.Detail(c.Request.Context(), middleware.ActorID(c), postID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateForm serves the empty post form with the category choices.
func (ctl *PostController) CreateForm(c *gin.Context) {
	categories, err := ctl.pc.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"form":       postPort.PostInput{},
		"categories": categories,
	})
}

// Create persists a new post and sends the author to their profile.
func (ctl *PostController) Create(c *gin.Context) {
	var in postPort.PostInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := ctl.pc.Create(c.Request.Context(), middleware.ActorID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	redirectToProfile(c, created.Author.Username)
}

// EditForm serves the edit form pre-filled with the post's current
// values. Non-authors are redirected to the post instead.
func (ctl *PostController) EditForm(c *gin.Context) {
	ctl.ownedContext(c, "form")
}

// DeleteForm serves the delete confirmation; it exposes the same field
// values as the edit form so the page can render the post.
func (ctl *PostController) DeleteForm(c *gin.Context) {
	ctl.ownedContext(c, "form")
}

func (ctl *PostController) ownedContext(c *gin.Context, key string) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}
	dto, err := ctl.pc.GetOwned(c.Request.Context(), middleware.ActorID(c), postID)
	if errors.Is(err, errs.ErrForbidden) {
		redirectToPost(c, postID.String())
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	categories, err := ctl.pc.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		key:          dto,
		"categories": categories,
	})
}

// Update overwrites a post's fields and returns to its detail page.
func (ctl *PostController) Update(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}
	var in postPort.PostInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err := ctl.pc.Update(c.Request.Context(), middleware.ActorID(c), postID, in)
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

// Delete removes a post and sends the author to their profile.
func (ctl *PostController) Delete(c *gin.Context) {
	postID, ok := pathID(c, "postID")
	if !ok {
		return
	}
	owned, err := ctl.pc.GetOwned(c.Request.Context(), middleware.ActorID(c), postID)
	if errors.Is(err, errs.ErrForbidden) {
		redirectToPost(c, postID.String())
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	if err := ctl.pc.Delete(c.Request.Context(), middleware.ActorID(c), postID); err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			redirectToPost(c, postID.String())
			return
		}
		fail(c, err)
		return
	}
	redirectToProfile(c, owned.Author.Username)
}
