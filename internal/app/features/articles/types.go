// internal/app/features/articles/types.go
package articles

// createArticleRequest carries the client-supplied article fields.
// Authorship fields are stamped from the resolved identity and cannot
// appear here.
type createArticleRequest struct {
	Title            string `json:"title"   validate:"required"`
	Content          string `json:"content" validate:"required"`
	ShortDescription string `json:"shortDescription"`
	CoverImage       string `json:"coverImage"`
	Category         string `json:"category"`
}

// updateArticleRequest is the partial-merge payload.
type updateArticleRequest struct {
	Title            *string `json:"title"`
	ShortDescription *string `json:"shortDescription"`
	Content          *string `json:"content"`
	CoverImage       *string `json:"coverImage"`
	Category         *string `json:"category"`
}

// createCommentRequest carries only the comment text. Any
// client-supplied author fields are ignored; comment authorship always
// comes from the authenticated identity.
type createCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
