package app

import "github.com/CrestNiraj12/socialfeed/domain"

// SocialFeed is the full set of feed operations the terminal UI can invoke.
// Listing methods that count as a view spend advanced posts' view budgets;
// AllPosts and PopularHashtags never do.
type SocialFeed interface {
	// CreateProfile validates and stores a new profile.
	CreateProfile(req CreateProfileRequest) (domain.Profile, error)

	// FindProfile returns the first profile matching any of the query fields.
	FindProfile(q domain.ProfileQuery) (domain.Profile, error)

	// Profiles lists every profile in creation order.
	Profiles() []domain.Profile

	// DeleteProfile removes a profile together with every post it authored.
	DeleteProfile(id int) error

	CreatePost(req CreatePostRequest) (domain.Post, error)
	CreateAdvancedPost(req CreateAdvancedPostRequest) (domain.Post, error)

	Like(postID int) (domain.Post, error)
	Dislike(postID int) (domain.Post, error)
	IsPopular(p domain.Post) bool

	// QueryPosts returns the visible posts matching every query field.
	// Every matched advanced post spends one view, including those it hides.
	QueryPosts(q domain.PostQuery) []domain.Post

	// PostsByProfile returns a profile's visible posts, spending one view on
	// each advanced post that still had views left.
	PostsByProfile(profileID int) ([]domain.Post, error)

	// PostsByHashtag returns the visible advanced posts carrying tag after
	// spending one view on every match.
	PostsByHashtag(tag string) []domain.Post

	// PopularHashtags returns the hashtags used by more than one post.
	PopularHashtags() []HashtagCount

	// PopularPosts runs an unfiltered QueryPosts and keeps the popular posts.
	PopularPosts() []domain.Post

	DeletePost(id int) error

	// AllPosts lists every visible post without spending views.
	AllPosts() []domain.Post

	// ViewFeed lists every visible post as it was before this view, then
	// spends one view on each advanced post listed.
	ViewFeed() []domain.Post

	AddComment(req AddCommentRequest) (domain.Comment, error)
	DeleteComment(postID, commentID int) error
}

// ProfileStore is the profile collection the service composes.
type ProfileStore interface {
	Insert(p *domain.Profile)
	Find(q domain.ProfileQuery) *domain.Profile
	Remove(id int)
	All() []*domain.Profile
}

// PostStore is the post collection the service composes. Insert and Remove
// keep the author's post list in step with the store.
type PostStore interface {
	Insert(p *domain.Post)
	Get(id int) *domain.Post
	Query(q domain.PostQuery) []*domain.Post
	All() []*domain.Post
	Remove(id int) bool
}
