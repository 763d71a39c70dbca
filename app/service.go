package app

import (
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/CrestNiraj12/socialfeed/domain"
)

// Service implements SocialFeed over a profile store and a post store.
// It is the only writer of both stores and of every entity in them.
type Service struct {
	profiles ProfileStore
	posts    PostStore
	Logger   *log.Logger
}

// Enforce that Service implements SocialFeed.
var _ SocialFeed = (*Service)(nil)

// NewService composes the two stores. The post store must resolve authors
// through the same profile store.
func NewService(profiles ProfileStore, posts PostStore) *Service {
	return &Service{
		profiles: profiles,
		posts:    posts,
		Logger:   log.Default(),
	}
}

// --- Profiles ---

func (s *Service) CreateProfile(req CreateProfileRequest) (domain.Profile, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	switch {
	case req.ID == 0:
		return domain.Profile{}, s.reject(errors.Wrap(domain.ErrValidation, "profile id is required"))
	case name == "":
		return domain.Profile{}, s.reject(errors.Wrap(domain.ErrValidation, "profile name is required"))
	case email == "":
		return domain.Profile{}, s.reject(errors.Wrap(domain.ErrValidation, "profile email is required"))
	}

	// Each key is checked on its own; any single collision rejects the profile.
	if s.profiles.Find(domain.ByProfileID(req.ID)) != nil {
		return domain.Profile{}, s.reject(errors.Wrapf(domain.ErrDuplicateKey, "profile id %d", req.ID))
	}
	if s.profiles.Find(domain.ByName(name)) != nil {
		return domain.Profile{}, s.reject(errors.Wrapf(domain.ErrDuplicateKey, "profile name %q", name))
	}
	if s.profiles.Find(domain.ByEmail(email)) != nil {
		return domain.Profile{}, s.reject(errors.Wrapf(domain.ErrDuplicateKey, "profile email %q", email))
	}

	p := &domain.Profile{ID: req.ID, Name: name, Email: email}
	s.profiles.Insert(p)
	s.Logger.Printf("profile %d created (%s)", p.ID, p.Name)
	return p.Clone(), nil
}

func (s *Service) FindProfile(q domain.ProfileQuery) (domain.Profile, error) {
	p := s.profiles.Find(q)
	if p == nil {
		return domain.Profile{}, errors.Wrap(domain.ErrNotFound, "profile")
	}
	return p.Clone(), nil
}

func (s *Service) Profiles() []domain.Profile {
	all := s.profiles.All()
	out := make([]domain.Profile, 0, len(all))
	for _, p := range all {
		out = append(out, p.Clone())
	}
	return out
}

// DeleteProfile deletes the profile's posts first, walking a copy of its
// post list because each DeletePost shrinks the live one.
func (s *Service) DeleteProfile(id int) error {
	p := s.profiles.Find(domain.ByProfileID(id))
	if p == nil {
		return s.reject(errors.Wrapf(domain.ErrNotFound, "profile %d", id))
	}

	owned := append([]int(nil), p.PostIDs...)
	for _, postID := range owned {
		if err := s.DeletePost(postID); err != nil {
			return errors.Wrapf(err, "deleting posts of profile %d", id)
		}
	}

	s.profiles.Remove(id)
	s.Logger.Printf("profile %d deleted with %d posts", id, len(owned))
	return nil
}

// --- Posts ---

func (s *Service) CreatePost(req CreatePostRequest) (domain.Post, error) {
	author, err := s.checkNewPost(req)
	if err != nil {
		return domain.Post{}, err
	}

	p := newPost(req, author)
	s.posts.Insert(p)
	s.Logger.Printf("post %d created by profile %d", p.ID, author.ID)
	return p.Snapshot(), nil
}

func (s *Service) CreateAdvancedPost(req CreateAdvancedPostRequest) (domain.Post, error) {
	if req.Views == nil {
		return domain.Post{}, s.reject(errors.Wrap(domain.ErrValidation, "view budget is required"))
	}
	if *req.Views < 0 {
		return domain.Post{}, s.reject(errors.Wrapf(domain.ErrValidation, "view budget %d is negative", *req.Views))
	}
	author, err := s.checkNewPost(req.CreatePostRequest)
	if err != nil {
		return domain.Post{}, err
	}

	p := newPost(req.CreatePostRequest, author)
	p.Kind = domain.KindAdvanced
	p.Advanced = &domain.Advanced{
		Hashtags:       append([]string(nil), req.Hashtags...),
		RemainingViews: *req.Views,
	}
	s.posts.Insert(p)
	s.Logger.Printf("advanced post %d created by profile %d (views=%d, tags=%v)", p.ID, author.ID, *req.Views, p.Advanced.Hashtags)
	return p.Snapshot(), nil
}

func newPost(req CreatePostRequest, author *domain.Profile) *domain.Post {
	return &domain.Post{
		ID:        req.ID,
		Text:      req.Text,
		Likes:     *req.Likes,
		Dislikes:  *req.Dislikes,
		CreatedAt: req.CreatedAt,
		Author:    author.Ref(),
		Kind:      domain.KindStandard,
	}
}

// checkNewPost validates req, rejects a taken id and resolves the author.
func (s *Service) checkNewPost(req CreatePostRequest) (*domain.Profile, error) {
	switch {
	case req.ID == 0:
		return nil, s.reject(errors.Wrap(domain.ErrValidation, "post id is required"))
	case strings.TrimSpace(req.Text) == "":
		return nil, s.reject(errors.Wrap(domain.ErrValidation, "post text is required"))
	case req.Likes == nil:
		return nil, s.reject(errors.Wrap(domain.ErrValidation, "likes are required"))
	case req.Dislikes == nil:
		return nil, s.reject(errors.Wrap(domain.ErrValidation, "dislikes are required"))
	case *req.Likes < 0 || *req.Dislikes < 0:
		return nil, s.reject(errors.Wrap(domain.ErrValidation, "likes and dislikes cannot be negative"))
	case req.CreatedAt.IsZero():
		return nil, s.reject(errors.Wrap(domain.ErrValidation, "post timestamp is required"))
	case req.AuthorID == 0:
		return nil, s.reject(errors.Wrap(domain.ErrValidation, "post author is required"))
	}

	if s.posts.Get(req.ID) != nil {
		return nil, s.reject(errors.Wrapf(domain.ErrDuplicateKey, "post id %d", req.ID))
	}

	author := s.profiles.Find(domain.ByProfileID(req.AuthorID))
	if author == nil {
		return nil, s.reject(errors.Wrapf(domain.ErrNotFound, "author profile %d", req.AuthorID))
	}
	return author, nil
}

func (s *Service) Like(postID int) (domain.Post, error) {
	p := s.firstPost(postID)
	if p == nil {
		return domain.Post{}, s.reject(errors.Wrapf(domain.ErrNotFound, "post %d", postID))
	}
	p.Like()
	return p.Snapshot(), nil
}

func (s *Service) Dislike(postID int) (domain.Post, error) {
	p := s.firstPost(postID)
	if p == nil {
		return domain.Post{}, s.reject(errors.Wrapf(domain.ErrNotFound, "post %d", postID))
	}
	p.Dislike()
	return p.Snapshot(), nil
}

func (s *Service) firstPost(id int) *domain.Post {
	matches := s.posts.Query(domain.ByPostID(id))
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

func (s *Service) IsPopular(p domain.Post) bool {
	return p.IsPopular()
}

// QueryPosts spends a view on every matched advanced post. Visibility is
// decided on the budget the post had before this view, so a post with one
// view left is returned once more and then never again.
func (s *Service) QueryPosts(q domain.PostQuery) []domain.Post {
	return consumeMatches(s.posts.Query(q))
}

// PostsByProfile walks the profile's own post list. Exhausted posts are
// skipped without touching their budget.
func (s *Service) PostsByProfile(profileID int) ([]domain.Post, error) {
	profile := s.profiles.Find(domain.ByProfileID(profileID))
	if profile == nil {
		return nil, s.reject(errors.Wrapf(domain.ErrNotFound, "profile %d", profileID))
	}

	var out []domain.Post
	for _, id := range profile.PostIDs {
		p := s.posts.Get(id)
		if p == nil || p.Exhausted() {
			continue
		}
		p.ConsumeView()
		out = append(out, p.Snapshot())
	}
	return out, nil
}

func (s *Service) PostsByHashtag(tag string) []domain.Post {
	return consumeMatches(s.posts.Query(domain.ByHashtag(tag)))
}

// PopularHashtags counts, per hashtag, the distinct posts carrying it. A tag
// repeated inside one post counts once. Results keep first-seen order.
func (s *Service) PopularHashtags() []HashtagCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range s.posts.All() {
		if !p.IsAdvanced() {
			continue
		}
		seen := make(map[string]bool, len(p.Advanced.Hashtags))
		for _, tag := range p.Advanced.Hashtags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			if _, ok := counts[tag]; !ok {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	var out []HashtagCount
	for _, tag := range order {
		if counts[tag] > 1 {
			out = append(out, HashtagCount{Hashtag: tag, Posts: counts[tag]})
		}
	}
	return out
}

func (s *Service) PopularPosts() []domain.Post {
	var out []domain.Post
	for _, p := range s.QueryPosts(domain.PostQuery{}) {
		if p.IsPopular() {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) DeletePost(id int) error {
	if !s.posts.Remove(id) {
		return s.reject(errors.Wrapf(domain.ErrNotFound, "post %d", id))
	}
	s.Logger.Printf("post %d deleted", id)
	return nil
}

func (s *Service) AllPosts() []domain.Post {
	return visibleSnapshots(s.posts.All())
}

func (s *Service) ViewFeed() []domain.Post {
	var shown []*domain.Post
	for _, p := range s.posts.All() {
		if p.Visible() {
			shown = append(shown, p)
		}
	}
	out := make([]domain.Post, 0, len(shown))
	for _, p := range shown {
		out = append(out, p.Snapshot())
		p.ConsumeView()
	}
	return out
}

// consumeMatches picks the posts still visible, then spends one view on every
// match. The returned snapshots carry the budget left after the view.
func consumeMatches(matched []*domain.Post) []domain.Post {
	var shown []*domain.Post
	for _, p := range matched {
		if p.Visible() {
			shown = append(shown, p)
		}
		p.ConsumeView()
	}
	out := make([]domain.Post, 0, len(shown))
	for _, p := range shown {
		out = append(out, p.Snapshot())
	}
	return out
}

func visibleSnapshots(posts []*domain.Post) []domain.Post {
	var out []domain.Post
	for _, p := range posts {
		if p.Visible() {
			out = append(out, p.Snapshot())
		}
	}
	return out
}

// --- Comments ---

// AddComment numbers the comment after the post's current comment count.
// Ids freed by DeleteComment are handed out again.
func (s *Service) AddComment(req AddCommentRequest) (domain.Comment, error) {
	p := s.posts.Get(req.PostID)
	if p == nil {
		return domain.Comment{}, s.reject(errors.Wrapf(domain.ErrNotFound, "post %d", req.PostID))
	}
	author := s.profiles.Find(domain.ByProfileID(req.AuthorID))
	if author == nil {
		return domain.Comment{}, s.reject(errors.Wrapf(domain.ErrNotFound, "profile %d", req.AuthorID))
	}
	if strings.TrimSpace(req.Text) == "" {
		return domain.Comment{}, s.reject(errors.Wrap(domain.ErrValidation, "comment text is required"))
	}

	c := p.AddComment(req.Text, author.Ref())
	s.Logger.Printf("comment %d added to post %d by profile %d", c.ID, p.ID, author.ID)
	return c, nil
}

func (s *Service) DeleteComment(postID, commentID int) error {
	p := s.posts.Get(postID)
	if p == nil {
		return s.reject(errors.Wrapf(domain.ErrNotFound, "post %d", postID))
	}
	if !p.RemoveComment(commentID) {
		return s.reject(errors.Wrapf(domain.ErrNotFound, "comment %d on post %d", commentID, postID))
	}
	s.Logger.Printf("comment %d removed from post %d", commentID, postID)
	return nil
}

func (s *Service) reject(err error) error {
	s.Logger.Printf("rejected: %v", err)
	return err
}
