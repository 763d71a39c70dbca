package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CrestNiraj12/socialfeed/app"
	"github.com/CrestNiraj12/socialfeed/infra/clock"
)

// File is the on-disk fixture layout.
type File struct {
	Profiles []Profile `json:"profiles"`
	Posts    []Post    `json:"posts"`
	Comments []Comment `json:"comments"`
}

type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post is advanced when Views is set.
type Post struct {
	ID        int        `json:"id"`
	Author    int        `json:"author"`
	Text      string     `json:"text"`
	Likes     *int       `json:"likes,omitempty"`
	Dislikes  *int       `json:"dislikes,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	Hashtags  []string   `json:"hashtags,omitempty"`
	Views     *int       `json:"views,omitempty"`
}

type Comment struct {
	Post   int    `json:"post"`
	Author int    `json:"author"`
	Text   string `json:"text"`
}

// Report counts what was created. Rejected records are kept in Errors and
// do not stop the load.
type Report struct {
	Profiles int
	Posts    int
	Comments int
	Errors   []error
}

// Loader replays fixtures through the public feed API, so every record goes
// through the same validation as interactive input.
type Loader struct {
	Feed  app.SocialFeed
	Clock clock.Clock
}

func NewLoader(feed app.SocialFeed, c clock.Clock) *Loader {
	return &Loader{Feed: feed, Clock: c}
}

// LoadFile decodes and applies the fixture at path.
func (l *Loader) LoadFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load decodes a fixture from r and applies it: profiles first, then posts,
// then comments.
func (l *Loader) Load(r io.Reader) (Report, error) {
	var file File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return Report{}, fmt.Errorf("decoding seed: %w", err)
	}
	return l.Apply(file), nil
}

// Apply creates every record in file.
func (l *Loader) Apply(file File) Report {
	var rep Report

	for _, p := range file.Profiles {
		_, err := l.Feed.CreateProfile(app.CreateProfileRequest{ID: p.ID, Name: p.Name, Email: p.Email})
		if err != nil {
			rep.Errors = append(rep.Errors, fmt.Errorf("profile %d: %w", p.ID, err))
			continue
		}
		rep.Profiles++
	}

	for _, p := range file.Posts {
		if err := l.createPost(p); err != nil {
			rep.Errors = append(rep.Errors, fmt.Errorf("post %d: %w", p.ID, err))
			continue
		}
		rep.Posts++
	}

	for i, c := range file.Comments {
		_, err := l.Feed.AddComment(app.AddCommentRequest{PostID: c.Post, AuthorID: c.Author, Text: c.Text})
		if err != nil {
			rep.Errors = append(rep.Errors, fmt.Errorf("comment #%d on post %d: %w", i+1, c.Post, err))
			continue
		}
		rep.Comments++
	}

	return rep
}

// createPost fills the counters and timestamp that fixtures may omit.
func (l *Loader) createPost(p Post) error {
	req := app.CreatePostRequest{
		ID:       p.ID,
		Text:     p.Text,
		Likes:    p.Likes,
		Dislikes: p.Dislikes,
		AuthorID: p.Author,
	}
	if req.Likes == nil {
		req.Likes = app.Int(0)
	}
	if req.Dislikes == nil {
		req.Dislikes = app.Int(0)
	}
	if p.CreatedAt != nil {
		req.CreatedAt = p.CreatedAt.UTC()
	} else {
		req.CreatedAt = l.Clock.NowUtc()
	}

	if p.Views == nil {
		_, err := l.Feed.CreatePost(req)
		return err
	}
	_, err := l.Feed.CreateAdvancedPost(app.CreateAdvancedPostRequest{
		CreatePostRequest: req,
		Hashtags:          p.Hashtags,
		Views:             p.Views,
	})
	return err
}
