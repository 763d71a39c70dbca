package domain

import (
	"slices"
	"time"
)

// PostKind tags the post variant.
type PostKind int

const (
	KindStandard PostKind = iota
	KindAdvanced
)

func (k PostKind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindAdvanced:
		return "advanced"
	}
	return "unknown"
}

// Advanced holds the fields only advanced posts carry.
type Advanced struct {
	Hashtags       []string // Order preserved, duplicates allowed
	RemainingViews int      // Never negative; 0 means the post is hidden
}

// Post is a single feed entry. Advanced is nil unless Kind is KindAdvanced.
type Post struct {
	ID        int
	Text      string
	Likes     int
	Dislikes  int
	CreatedAt time.Time
	Author    AuthorRef
	Comments  []Comment
	Kind      PostKind
	Advanced  *Advanced
}

// Comment belongs to exactly one post. Its ID is only unique within that post.
type Comment struct {
	ID     int
	Text   string
	Author AuthorRef
}

// IsAdvanced reports whether the post carries hashtags and a view budget.
func (p *Post) IsAdvanced() bool {
	return p.Kind == KindAdvanced && p.Advanced != nil
}

// Like adds one like.
func (p *Post) Like() { p.Likes++ }

// Dislike adds one dislike.
func (p *Post) Dislike() { p.Dislikes++ }

// IsPopular reports whether likes exceed one and a half times the dislikes.
func (p *Post) IsPopular() bool {
	return float64(p.Likes) > 1.5*float64(p.Dislikes)
}

// Exhausted reports whether an advanced post has used up its view budget.
// Standard posts are never exhausted.
func (p *Post) Exhausted() bool {
	return p.IsAdvanced() && p.Advanced.RemainingViews <= 0
}

// Visible is the inverse of Exhausted.
func (p *Post) Visible() bool {
	return !p.Exhausted()
}

// ConsumeView spends one view of an advanced post's budget, stopping at zero.
// It is a no-op for standard posts.
func (p *Post) ConsumeView() {
	if !p.IsAdvanced() {
		return
	}
	if p.Advanced.RemainingViews > 0 {
		p.Advanced.RemainingViews--
	}
}

// HasHashtag reports whether the post is advanced and carries tag exactly.
func (p *Post) HasHashtag(tag string) bool {
	return p.IsAdvanced() && slices.Contains(p.Advanced.Hashtags, tag)
}

// Hashtags returns the post's hashtags, or nil for a standard post.
func (p *Post) Hashtags() []string {
	if !p.IsAdvanced() {
		return nil
	}
	return p.Advanced.Hashtags
}

// RemainingViews returns the view budget, or -1 for a standard post.
func (p *Post) RemainingViews() int {
	if !p.IsAdvanced() {
		return -1
	}
	return p.Advanced.RemainingViews
}

// AddComment appends a comment whose id is the current comment count plus one.
// Ids are not reserved after deletion, so a later comment can reuse one.
func (p *Post) AddComment(text string, author AuthorRef) Comment {
	c := Comment{ID: len(p.Comments) + 1, Text: text, Author: author}
	p.Comments = append(p.Comments, c)
	return c
}

// RemoveComment deletes the first comment with the given id.
func (p *Post) RemoveComment(id int) bool {
	for i, c := range p.Comments {
		if c.ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy safe to hand to callers outside the service.
func (p *Post) Snapshot() Post {
	out := *p
	out.Comments = append([]Comment(nil), p.Comments...)
	if p.Advanced != nil {
		adv := *p.Advanced
		adv.Hashtags = append([]string(nil), p.Advanced.Hashtags...)
		out.Advanced = &adv
	}
	return out
}
