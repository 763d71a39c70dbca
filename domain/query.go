package domain

import "strings"

// ProfileQuery selects profiles by any of its set fields. Nil fields are ignored.
type ProfileQuery struct {
	ID    *int
	Name  *string
	Email *string
}

// Empty reports whether no criteria are set.
func (q ProfileQuery) Empty() bool {
	return q.ID == nil && q.Name == nil && q.Email == nil
}

// MatchAny reports whether p satisfies at least one set criterion.
func (q ProfileQuery) MatchAny(p *Profile) bool {
	return (q.ID != nil && p.ID == *q.ID) ||
		(q.Name != nil && p.Name == *q.Name) ||
		(q.Email != nil && p.Email == *q.Email)
}

// PostQuery selects posts by all of its set fields. Nil fields are ignored.
type PostQuery struct {
	ID       *int
	Text     *string // Substring of the post text
	Hashtag  *string // Exact hashtag; only advanced posts can match
	AuthorID *int
}

// Empty reports whether no criteria are set.
func (q PostQuery) Empty() bool {
	return q.ID == nil && q.Text == nil && q.Hashtag == nil && q.AuthorID == nil
}

// MatchAll reports whether p satisfies every set criterion.
func (q PostQuery) MatchAll(p *Post) bool {
	if q.ID != nil && p.ID != *q.ID {
		return false
	}
	if q.Text != nil && !strings.Contains(p.Text, *q.Text) {
		return false
	}
	if q.Hashtag != nil && !p.HasHashtag(*q.Hashtag) {
		return false
	}
	if q.AuthorID != nil && p.Author.ID != *q.AuthorID {
		return false
	}
	return true
}

// ByProfileID, ByName and ByEmail build single-field profile queries.
func ByProfileID(id int) ProfileQuery   { return ProfileQuery{ID: &id} }
func ByName(name string) ProfileQuery   { return ProfileQuery{Name: &name} }
func ByEmail(email string) ProfileQuery { return ProfileQuery{Email: &email} }

// ByPostID and ByHashtag build single-field post queries.
func ByPostID(id int) PostQuery      { return PostQuery{ID: &id} }
func ByHashtag(tag string) PostQuery { return PostQuery{Hashtag: &tag} }
