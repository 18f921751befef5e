package httpapi

import (
	"context"
	"time"

	"blogicum/internal/adapters/httpapi/middleware"
	categoryPort "blogicum/internal/ports/category"
	commentPort "blogicum/internal/ports/comment"
	postPort "blogicum/internal/ports/post"
	userPort "blogicum/internal/ports/user"
	"blogicum/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// Inbound ports: what the controllers need from the use-case layer.

type UserUseCase interface {
	Register(ctx context.Context, in userPort.RegisterInput) (*userPort.UserDTO, error)
	Login(ctx context.Context, in userPort.LoginInput) (*userPort.LoginResponse, error)
	Logout(ctx context.Context, rawToken string) error
	Get(ctx context.Context, id uuid.UUID) (*userPort.UserDTO, error)
	UpdateProfile(ctx context.Context, actorID uuid.UUID, in userPort.ProfileInput) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	Index(ctx context.Context, page int) (*pagination.Page[*postPort.PostDTO], error)
	CategoryPosts(ctx context.Context, slug string, page int) (*categoryPort.CategoryDTO, *pagination.Page[*postPort.PostDTO], error)
	ProfilePosts(ctx context.Context, username string, actorID uuid.UUID, page int) (*userPort.UserDTO, *pagination.Page[*postPort.PostDTO], error)
	Detail(ctx context.Context, actorID, postID uuid.UUID) (*postPort.DetailDTO, error)
	Create(ctx context.Context, actorID uuid.UUID, in postPort.PostInput) (*postPort.PostDTO, error)
	GetOwned(ctx context.Context, actorID, postID uuid.UUID) (*postPort.PostDTO, error)
	Update(ctx context.Context, actorID, postID uuid.UUID, in postPort.PostInput) (*postPort.PostDTO, error)
	Delete(ctx context.Context, actorID, postID uuid.UUID) error
	Categories(ctx context.Context) ([]*categoryPort.CategoryDTO, error)
}

type CommentUseCase interface {
	Add(ctx context.Context, actorID, postID uuid.UUID, in commentPort.CommentInput) (*commentPort.CommentDTO, error)
	GetOwned(ctx context.Context, actorID, postID, commentID uuid.UUID) (*commentPort.CommentDTO, error)
	Update(ctx context.Context, actorID, postID, commentID uuid.UUID, in commentPort.CommentInput) (*commentPort.CommentDTO, error)
	Delete(ctx context.Context, actorID, postID, commentID uuid.UUID) error
}

// SetupRoutes wires the controllers; use cases are injected from
// outside.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	auth *middleware.Auth,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC, postUC)
	pc := NewPostController(postUC)
	cc := NewCommentController(commentUC)
	cat := NewCategoryController(postUC)

	r.GET("/", pc.Index)

	r.POST("/register", uc.Register)
	r.GET("/login", uc.LoginForm)
	r.POST("/login", uc.Login)
	r.POST("/logout", auth.Required(), uc.Logout)

	posts := r.Group("/posts")
	posts.GET("/create/", auth.Required(), pc.CreateForm)
	posts.POST("/create/", auth.Required(), pc.Create)
	posts.GET("/:postID/", auth.Optional(), pc.Detail)
	posts.GET("/:postID/edit/", auth.Required(), pc.EditForm)
	posts.POST("/:postID/edit/", auth.Required(), pc.Update)
	posts.GET("/:postID/delete/", auth.Required(), pc.DeleteForm)
	posts.POST("/:postID/delete/", auth.Required(), pc.Delete)
	posts.POST("/:postID/comment/", auth.Required(), cc.Add)
	posts.GET("/:postID/edit_comment/:commentID/", auth.Required(), cc.EditForm)
	posts.POST("/:postID/edit_comment/:commentID/", auth.Required(), cc.Update)
	posts.POST("/:postID/delete_comment/:commentID/", auth.Required(), cc.Delete)

	r.GET("/category/:slug/", cat.Posts)
	r.GET("/profile/:username/", auth.Optional(), uc.Profile)
	r.GET("/edit_profile/", auth.Required(), uc.EditProfileForm)
	r.POST("/edit_profile/", auth.Required(), uc.UpdateProfile)

	return r
}

func nowUnix() int64 { return time.Now().Unix() }
