package postapp_test

import (
	"context"
	"testing"
	"time"

	"blogicum/internal/adapters/inmemory"
	"blogicum/internal/core/category"
	"blogicum/internal/core/errs"
	"blogicum/internal/core/post"
	"blogicum/internal/core/user"
	postapp "blogicum/internal/core/post/service"
	postPort "blogicum/internal/ports/post"
	"blogicum/pkg/pagination"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc      *postapp.PostService
	posts    *inmemory.PostRepository
	comments *inmemory.CommentRepository

	news   *category.Category
	hidden *category.Category
	alice  *user.User
	bob    *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		news:   &category.Category{ID: uuid.Must(uuid.NewV4()), Name: "News", Slug: "news", IsPublished: true},
		hidden: &category.Category{ID: uuid.Must(uuid.NewV4()), Name: "Hidden", Slug: "hidden", IsPublished: false},
		alice:  &user.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"},
		bob:    &user.User{ID: uuid.Must(uuid.NewV4()), Username: "bob"},
	}

	f.comments = inmemory.NewCommentRepository()
	f.posts = inmemory.NewPostRepository(f.comments)
	categories := inmemory.NewCategoryRepository(f.news, f.hidden)
	users := inmemory.NewUserRepository(f.alice, f.bob)

	f.svc = postapp.NewPostService(f.posts, categories, users, f.comments, pagination.New(10), zap.NewNop())
	return f
}

// addPost stores a post directly, bypassing the service, so tests can
// control every visibility field.
func (f *fixture) addPost(t *testing.T, author *user.User, cat *category.Category, published bool, pubDate time.Time) *post.Post {
	t.Helper()

	p := &post.Post{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       "t",
		Text:        "x",
		PubDate:     pubDate,
		IsPublished: published,
		AuthorID:    author.ID,
		Author:      *author,
		CategoryID:  cat.ID,
		Category:    *cat,
	}
	created, err := f.posts.Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func titles(page *pagination.Page[*postPort.PostDTO]) []string {
	var out []string
	for _, item := range page.Items {
		out = append(out, item.ID)
	}
	return out
}

func TestIndexAppliesVisibilityPredicate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	visible := f.addPost(t, f.alice, f.news, true, past)
	f.addPost(t, f.alice, f.news, true, future)       // future-dated
	f.addPost(t, f.alice, f.news, false, past)        // unpublished
	f.addPost(t, f.alice, f.hidden, true, past)       // category unpublished

	page, err := f.svc.Index(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{visible.ID.String()}, titles(page))
	assert.EqualValues(t, 1, page.Total)
}

func TestIndexOrdersNewestFirst(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	older := f.addPost(t, f.alice, f.news, true, time.Now().Add(-2*time.Hour))
	newer := f.addPost(t, f.bob, f.news, true, time.Now().Add(-time.Hour))

	page, err := f.svc.Index(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{newer.ID.String(), older.ID.String()}, titles(page))
}

func TestCategoryPosts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.addPost(t, f.alice, f.news, true, time.Now().Add(-time.Hour))

	cat, page, err := f.svc.CategoryPosts(context.Background(), "news", 1)
	require.NoError(t, err)
	assert.Equal(t, "news", cat.Slug)
	assert.Equal(t, []string{p.ID.String()}, titles(page))

	_, _, err = f.svc.CategoryPosts(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// an unpublished category behaves like a missing one
	_, _, err = f.svc.CategoryPosts(context.Background(), "hidden", 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProfilePostsOwnerSeesEverything(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	visible := f.addPost(t, f.alice, f.news, true, time.Now().Add(-time.Hour))
	draft := f.addPost(t, f.alice, f.news, false, time.Now().Add(-time.Hour))

	_, own, err := f.svc.ProfilePosts(context.Background(), "alice", f.alice.ID, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{visible.ID.String(), draft.ID.String()}, titles(own))

	_, other, err := f.svc.ProfilePosts(context.Background(), "alice", f.bob.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{visible.ID.String()}, titles(other))

	_, anonymous, err := f.svc.ProfilePosts(context.Background(), "alice", uuid.Nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{visible.ID.String()}, titles(anonymous))

	_, _, err = f.svc.ProfilePosts(context.Background(), "nobody", uuid.Nil, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDetailVisibility(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	draft := f.addPost(t, f.alice, f.news, false, time.Now().Add(-time.Hour))

	// the author always sees their own post
	detail, err := f.svc.Detail(context.Background(), f.alice.ID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID.String(), detail.Post.ID)

	// everyone else gets a NotFound, not a forbidden
	_, err = f.svc.Detail(context.Background(), f.bob.ID, draft.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = f.svc.Detail(context.Background(), uuid.Nil, draft.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = f.svc.Detail(context.Background(), f.alice.ID, uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	tests := []struct {
		name string
		in   postPort.PostInput
	}{
		{name: "missing title", in: postPort.PostInput{Text: "x", PubDate: "2024-01-01T10:00", CategoryID: f.news.ID.String()}},
		{name: "bad pub date", in: postPort.PostInput{Title: "t", Text: "x", PubDate: "soon", CategoryID: f.news.ID.String()}},
		{name: "bad category id", in: postPort.PostInput{Title: "t", Text: "x", PubDate: "2024-01-01T10:00", CategoryID: "nope"}},
		{name: "unknown category", in: postPort.PostInput{Title: "t", Text: "x", PubDate: "2024-01-01T10:00", CategoryID: uuid.Must(uuid.NewV4()).String()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), f.alice.ID, tt.in)
			assert.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestCreateSetsActorAsAuthor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), f.alice.ID, postPort.PostInput{
		Title:      "hello",
		Text:       "world",
		PubDate:    "2024-01-01T10:00",
		Location:   "Berlin",
		CategoryID: f.news.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Author.Username)
	assert.Equal(t, "news", created.Category.Slug)
	assert.True(t, created.IsPublished)

	stored, err := f.posts.FindByID(context.Background(), uuid.FromStringOrNil(created.ID))
	require.NoError(t, err)
	assert.Equal(t, f.alice.ID, stored.AuthorID)
}

func TestUpdateAndDeleteAreAuthorOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.addPost(t, f.alice, f.news, true, time.Now().Add(-time.Hour))

	in := postPort.PostInput{Title: "changed", Text: "x", PubDate: "2024-01-01T10:00", CategoryID: f.news.ID.String()}

	_, err := f.svc.Update(context.Background(), f.bob.ID, p.ID, in)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	err = f.svc.Delete(context.Background(), f.bob.ID, p.ID)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	// nothing changed
	stored, err := f.posts.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", stored.Title)

	// the author can do both
	updated, err := f.svc.Update(context.Background(), f.alice.ID, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Title)

	require.NoError(t, f.svc.Delete(context.Background(), f.alice.ID, p.ID))
	_, err = f.posts.FindByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetOwned(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	p := f.addPost(t, f.alice, f.news, false, time.Now().Add(time.Hour))

	dto, err := f.svc.GetOwned(context.Background(), f.alice.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID.String(), dto.ID)

	_, err = f.svc.GetOwned(context.Background(), f.bob.ID, p.ID)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}
