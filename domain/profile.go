package domain

import "slices"

// Profile is a feed member. PostIDs indexes the posts the profile authored,
// in creation order; the posts themselves live in the post index.
type Profile struct {
	ID      int
	Name    string
	Email   string
	PostIDs []int
}

// AuthorRef is a non-owning link from a post or comment to its author.
type AuthorRef struct {
	ID   int
	Name string
}

// Ref returns the handle posts and comments store for this profile.
func (p *Profile) Ref() AuthorRef {
	return AuthorRef{ID: p.ID, Name: p.Name}
}

// Clone returns a copy that does not share the post id slice.
func (p Profile) Clone() Profile {
	p.PostIDs = append([]int(nil), p.PostIDs...)
	return p
}

// HasPost reports whether id is in the profile's post list.
func (p *Profile) HasPost(id int) bool {
	return slices.Contains(p.PostIDs, id)
}

// RemovePost drops the first occurrence of id. It reports whether one was found.
func (p *Profile) RemovePost(id int) bool {
	i := slices.Index(p.PostIDs, id)
	if i < 0 {
		return false
	}
	p.PostIDs = slices.Delete(p.PostIDs, i, i+1)
	return true
}
