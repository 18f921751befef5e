package post

import (
	commentPort "blogicum/internal/ports/comment"
)

// DetailDTO is the context of the post detail page: the post itself,
// its comments oldest first, and an empty comment-submission form.
type DetailDTO struct {
	Post     *PostDTO                  `json:"post"`
	Comments []*commentPort.CommentDTO `json:"comments"`
	Form     commentPort.CommentInput  `json:"form"`
}
