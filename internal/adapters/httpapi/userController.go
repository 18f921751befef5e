package httpapi

import (
	"net/http"

	"blogicum/internal/adapters/httpapi/middleware"
	userPort "blogicum/internal/ports/user"
	"blogicum/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	uc UserUseCase
	pc PostUseCase
}

func NewUserController(uc UserUseCase, pc PostUseCase) *UserController {
	return &UserController{uc: uc, pc: pc}
}

func (ctl *UserController) Register(c *gin.Context) {
	var in userPort.RegisterInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := ctl.uc.Register(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// LoginForm is the target of every unauthenticated redirect.
func (ctl *UserController) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": userPort.LoginInput{}})
}

// Login issues a token and also sets it as a cookie so browser-style
// form flows survive the redirects.
func (ctl *UserController) Login(c *gin.Context) {
	var in userPort.LoginInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := ctl.uc.Login(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.SetCookie("token", res.Token, int(res.ExpiresAt-nowUnix()), "/", "", false, true)
	c.JSON(http.StatusOK, res)
}

// Logout revokes the current token and clears the cookie.
func (ctl *UserController) Logout(c *gin.Context) {
	if raw := middleware.Token(c); raw != "" {
		if err := ctl.uc.Logout(c.Request.Context(), raw); err != nil {
			fail(c, err)
			return
		}
	}
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Profile lists a user's posts. The owner sees all of them, everyone
// else only the publicly visible ones.
func (ctl *UserController) Profile(c *gin.Context) {
	owner, page, err := ctl.pc.ProfilePosts(
		c.Request.Context(),
		c.Param("username"),
		middleware.ActorID(c),
		pagination.ParsePage(c.Query("page")),
	)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":  owner,
		"page_obj": page,
	})
}

// EditProfileForm serves the profile form with the current values.
func (ctl *UserController) EditProfileForm(c *gin.Context) {
	u, err := ctl.uc.Get(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": userPort.ProfileInput{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}})
}

// UpdateProfile edits the actor's account and returns to their
// profile page.
func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var in userPort.ProfileInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := ctl.uc.UpdateProfile(c.Request.Context(), middleware.ActorID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	redirectToProfile(c, u.Username)
}
