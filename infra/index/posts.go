package index

import (
	"slices"

	"github.com/CrestNiraj12/socialfeed/domain"
)

// PostIndex owns every post. Posts live in an id-keyed arena; order keeps
// the global insertion order, and each author's Profile.PostIDs is the
// per-profile view. Both views are updated together on Insert and Remove.
type PostIndex struct {
	profiles *ProfileIndex
	arena    map[int]*domain.Post
	order    []int
}

// NewPostIndex creates an empty index that resolves authors through profiles.
func NewPostIndex(profiles *ProfileIndex) *PostIndex {
	return &PostIndex{
		profiles: profiles,
		arena:    make(map[int]*domain.Post),
	}
}

// Insert stores p and appends its id to the author's post list when the
// author is a known profile. Callers check id uniqueness first.
func (x *PostIndex) Insert(p *domain.Post) {
	x.arena[p.ID] = p
	x.order = append(x.order, p.ID)
	if p.Author.ID == 0 {
		return
	}
	if author := x.profiles.ByID(p.Author.ID); author != nil {
		author.PostIDs = append(author.PostIDs, p.ID)
	}
}

// Get returns the post with the given id, or nil.
func (x *PostIndex) Get(id int) *domain.Post {
	return x.arena[id]
}

// Query returns the posts matching every supplied criterion, in insertion
// order. An empty query returns all posts.
func (x *PostIndex) Query(q domain.PostQuery) []*domain.Post {
	var out []*domain.Post
	for _, id := range x.order {
		p := x.arena[id]
		if q.MatchAll(p) {
			out = append(out, p)
		}
	}
	return out
}

// All returns every post in insertion order.
func (x *PostIndex) All() []*domain.Post {
	out := make([]*domain.Post, 0, len(x.order))
	for _, id := range x.order {
		out = append(out, x.arena[id])
	}
	return out
}

// Remove drops the post from the arena, the global order and its author's
// post list. It reports whether the post existed.
func (x *PostIndex) Remove(id int) bool {
	p, ok := x.arena[id]
	if !ok {
		return false
	}
	if author := x.profiles.ByID(p.Author.ID); author != nil {
		author.RemovePost(id)
	}
	delete(x.arena, id)
	if i := slices.Index(x.order, id); i >= 0 {
		x.order = slices.Delete(x.order, i, i+1)
	}
	return true
}

// Len returns the number of stored posts.
func (x *PostIndex) Len() int {
	return len(x.order)
}
