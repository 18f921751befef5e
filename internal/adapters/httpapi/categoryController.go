package httpapi

import (
	"net/http"

	"blogicum/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ pc PostUseCase }

func NewCategoryController(pc PostUseCase) *CategoryController {
	return &CategoryController{pc: pc}
}

// Posts lists the visible posts of a published category. A missing or
// unpublished category is a plain 404.
func (ctl *CategoryController) Posts(c *gin.Context) {
	cat, page, err := ctl.pc.CategoryPosts(c.Request.Context(), c.Param("slug"), pagination.ParsePage(c.Query("page")))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": cat,
		"page_obj": page,
	})
}
