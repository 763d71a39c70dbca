package index

import (
	"slices"

	"github.com/CrestNiraj12/socialfeed/domain"
)

// ProfileIndex is an insertion-ordered collection of profiles.
// It does not enforce uniqueness; callers check with Find before Insert.
type ProfileIndex struct {
	profiles []*domain.Profile
}

// NewProfileIndex creates an empty index.
func NewProfileIndex() *ProfileIndex {
	return &ProfileIndex{}
}

// Insert appends p.
func (x *ProfileIndex) Insert(p *domain.Profile) {
	x.profiles = append(x.profiles, p)
}

// Find returns the first profile matching any of the supplied criteria,
// or nil. An id, name or email match alone is enough.
func (x *ProfileIndex) Find(q domain.ProfileQuery) *domain.Profile {
	if q.Empty() {
		return nil
	}
	for _, p := range x.profiles {
		if q.MatchAny(p) {
			return p
		}
	}
	return nil
}

// ByID is shorthand for Find with only an id.
func (x *ProfileIndex) ByID(id int) *domain.Profile {
	return x.Find(domain.ByProfileID(id))
}

// Remove drops the first profile with the given id. Missing ids are ignored.
func (x *ProfileIndex) Remove(id int) {
	i := slices.IndexFunc(x.profiles, func(p *domain.Profile) bool { return p.ID == id })
	if i >= 0 {
		x.profiles = slices.Delete(x.profiles, i, i+1)
	}
}

// All returns the profiles in insertion order. The slice is a copy;
// the profiles are not.
func (x *ProfileIndex) All() []*domain.Profile {
	out := make([]*domain.Profile, len(x.profiles))
	copy(out, x.profiles)
	return out
}

// Len returns the number of stored profiles.
func (x *ProfileIndex) Len() int {
	return len(x.profiles)
}
