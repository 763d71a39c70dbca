package app

import "time"

type CreateProfileRequest struct {
	ID    int
	Name  string
	Email string
}

// CreatePostRequest describes a standard post. Likes and Dislikes are
// pointers so an explicit zero can be told apart from a missing value.
type CreatePostRequest struct {
	ID        int
	Text      string
	Likes     *int
	Dislikes  *int
	CreatedAt time.Time
	AuthorID  int
}

// CreateAdvancedPostRequest adds hashtags and a view budget. A zero Views
// budget is accepted and yields a post that is hidden from the start.
type CreateAdvancedPostRequest struct {
	CreatePostRequest
	Hashtags []string
	Views    *int
}

type AddCommentRequest struct {
	PostID   int
	AuthorID int
	Text     string
}

// HashtagCount is a hashtag and the number of distinct posts carrying it.
type HashtagCount struct {
	Hashtag string
	Posts   int
}

// Int returns a pointer to v, for the optional request fields.
func Int(v int) *int {
	return &v
}
