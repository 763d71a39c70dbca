package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CrestNiraj12/socialfeed/app"
	"github.com/CrestNiraj12/socialfeed/domain"
	"github.com/CrestNiraj12/socialfeed/tui/common"
	"github.com/CrestNiraj12/socialfeed/tui/form"
)

// result is what an action hands back to the root model. A non-empty body
// opens the result view; otherwise status is shown on the menu.
type result struct {
	title  string
	body   string
	status string
	err    error
	target *domain.Post // Opens the like/dislike view
}

// action is one menu entry: the fields to prompt for and the single feed
// operation it runs with the raw answers.
type action struct {
	label  string
	fields func(d Deps) []form.Field
	run    func(d Deps, values []string) result
}

func failed(err error) result {
	return result{err: err}
}

func defaultActions() []action {
	return []action{
		{label: "Create profile", fields: profileFields, run: createProfile},
		{label: "Create post", fields: postFields, run: createPost},
		{label: "Create advanced post", fields: advancedPostFields, run: createAdvancedPost},
		{label: "Find profile", fields: findProfileFields, run: findProfile},
		{label: "Query posts / like or dislike", fields: queryFields, run: queryPosts},
		{label: "Posts by hashtag", fields: hashtagFields, run: postsByHashtag},
		{label: "Posts by profile", fields: profileIDFields, run: postsByProfile},
		{label: "Delete profile", fields: profileIDFields, run: deleteProfile},
		{label: "Delete post", fields: postIDFields, run: deletePost},
		{label: "Add comment", fields: commentFields, run: addComment},
		{label: "Delete comment", fields: deleteCommentFields, run: deleteComment},
		{label: "Popular posts", run: popularPosts},
		{label: "Popular hashtags", run: popularHashtags},
		{label: "Full feed", run: viewFeed},
		{label: "View profiles", run: listProfiles},
	}
}

// --- Fields ---

func profileFields(Deps) []form.Field {
	return []form.Field{
		{Label: "Profile ID", Placeholder: "1"},
		{Label: "Name"},
		{Label: "Email"},
	}
}

func postFields(Deps) []form.Field {
	return []form.Field{
		{Label: "Author profile ID"},
		{Label: "Post ID"},
		{Label: "Text", Long: true},
	}
}

func advancedPostFields(d Deps) []form.Field {
	return append(postFields(d),
		form.Field{Label: "Hashtags", Placeholder: "comma separated"},
		form.Field{Label: "View budget", Value: strconv.Itoa(d.ViewBudget)},
	)
}

func findProfileFields(Deps) []form.Field {
	return []form.Field{
		{Label: "Profile ID", Placeholder: "any field matches"},
		{Label: "Name"},
		{Label: "Email"},
	}
}

func queryFields(Deps) []form.Field {
	return []form.Field{
		{Label: "Post ID", Placeholder: "blank: any"},
		{Label: "Text contains", Placeholder: "blank: any"},
		{Label: "Hashtag", Placeholder: "blank: any"},
		{Label: "Author profile ID", Placeholder: "blank: any"},
	}
}

func hashtagFields(Deps) []form.Field {
	return []form.Field{{Label: "Hashtag"}}
}

func profileIDFields(Deps) []form.Field {
	return []form.Field{{Label: "Profile ID"}}
}

func postIDFields(Deps) []form.Field {
	return []form.Field{{Label: "Post ID"}}
}

func commentFields(Deps) []form.Field {
	return []form.Field{
		{Label: "Post ID"},
		{Label: "Author profile ID"},
		{Label: "Comment", Long: true},
	}
}

func deleteCommentFields(Deps) []form.Field {
	return []form.Field{
		{Label: "Post ID"},
		{Label: "Comment ID"},
	}
}

// --- Runs ---

func createProfile(d Deps, v []string) result {
	id, err := common.ParseInt("Profile ID", v[0])
	if err != nil {
		return failed(err)
	}
	p, err := d.Feed.CreateProfile(app.CreateProfileRequest{ID: id, Name: v[1], Email: v[2]})
	if err != nil {
		return failed(err)
	}
	return result{status: fmt.Sprintf("Profile %s created. Welcome!", p.Name)}
}

// parsePost reads the author, id and text fields shared by both post forms.
// New posts start with no likes or dislikes.
func parsePost(d Deps, v []string) (app.CreatePostRequest, error) {
	authorID, err := common.ParseInt("Author profile ID", v[0])
	if err != nil {
		return app.CreatePostRequest{}, err
	}
	id, err := common.ParseInt("Post ID", v[1])
	if err != nil {
		return app.CreatePostRequest{}, err
	}
	return app.CreatePostRequest{
		ID:        id,
		Text:      v[2],
		Likes:     app.Int(0),
		Dislikes:  app.Int(0),
		CreatedAt: d.Clock.NowUtc(),
		AuthorID:  authorID,
	}, nil
}

func createPost(d Deps, v []string) result {
	req, err := parsePost(d, v)
	if err != nil {
		return failed(err)
	}
	p, err := d.Feed.CreatePost(req)
	if err != nil {
		return failed(err)
	}
	return result{status: fmt.Sprintf("Post #%d created.", p.ID)}
}

func createAdvancedPost(d Deps, v []string) result {
	req, err := parsePost(d, v)
	if err != nil {
		return failed(err)
	}
	views, err := common.ParseOptionalInt("View budget", v[4])
	if err != nil {
		return failed(err)
	}
	p, err := d.Feed.CreateAdvancedPost(app.CreateAdvancedPostRequest{
		CreatePostRequest: req,
		Hashtags:          common.ParseHashtags(v[3]),
		Views:             views,
	})
	if err != nil {
		return failed(err)
	}
	return result{status: fmt.Sprintf("Advanced post #%d created with %d views.", p.ID, p.RemainingViews())}
}

func findProfile(d Deps, v []string) result {
	id, err := common.ParseOptionalInt("Profile ID", v[0])
	if err != nil {
		return failed(err)
	}
	q := domain.ProfileQuery{ID: id, Name: common.OptionalString(v[1]), Email: common.OptionalString(v[2])}
	p, err := d.Feed.FindProfile(q)
	if err != nil {
		return failed(err)
	}
	return result{title: "Profile found", body: common.RenderProfile(p)}
}

func queryPosts(d Deps, v []string) result {
	id, err := common.ParseOptionalInt("Post ID", v[0])
	if err != nil {
		return failed(err)
	}
	authorID, err := common.ParseOptionalInt("Author profile ID", v[3])
	if err != nil {
		return failed(err)
	}
	q := domain.PostQuery{
		ID:       id,
		Text:     common.OptionalString(v[1]),
		Hashtag:  common.OptionalString(strings.TrimPrefix(strings.TrimSpace(v[2]), "#")),
		AuthorID: authorID,
	}

	posts := d.Feed.QueryPosts(q)
	if id != nil && len(posts) == 1 {
		p := posts[0]
		return result{title: fmt.Sprintf("Post #%d", p.ID), target: &p}
	}
	return result{
		title: fmt.Sprintf("Posts (%d)", len(posts)),
		body:  common.RenderPosts(posts, d.WrapWidth, "No posts found."),
	}
}

func postsByHashtag(d Deps, v []string) result {
	tag := strings.TrimPrefix(strings.TrimSpace(v[0]), "#")
	posts := d.Feed.PostsByHashtag(tag)
	return result{
		title: "Posts tagged #" + tag,
		body:  common.RenderPosts(posts, d.WrapWidth, "No posts found with this hashtag."),
	}
}

func postsByProfile(d Deps, v []string) result {
	id, err := common.ParseInt("Profile ID", v[0])
	if err != nil {
		return failed(err)
	}
	posts, err := d.Feed.PostsByProfile(id)
	if err != nil {
		return failed(err)
	}
	return result{
		title: fmt.Sprintf("Posts by profile %d", id),
		body:  common.RenderPosts(posts, d.WrapWidth, "No posts found."),
	}
}

func deleteProfile(d Deps, v []string) result {
	id, err := common.ParseInt("Profile ID", v[0])
	if err != nil {
		return failed(err)
	}
	if err := d.Feed.DeleteProfile(id); err != nil {
		return failed(err)
	}
	return result{status: fmt.Sprintf("Profile %d deleted.", id)}
}

func deletePost(d Deps, v []string) result {
	id, err := common.ParseInt("Post ID", v[0])
	if err != nil {
		return failed(err)
	}
	if err := d.Feed.DeletePost(id); err != nil {
		return failed(err)
	}
	return result{status: fmt.Sprintf("Post #%d deleted.", id)}
}

func addComment(d Deps, v []string) result {
	postID, err := common.ParseInt("Post ID", v[0])
	if err != nil {
		return failed(err)
	}
	authorID, err := common.ParseInt("Author profile ID", v[1])
	if err != nil {
		return failed(err)
	}
	c, err := d.Feed.AddComment(app.AddCommentRequest{PostID: postID, AuthorID: authorID, Text: v[2]})
	if err != nil {
		return failed(err)
	}
	return result{status: fmt.Sprintf("Comment %d added to post #%d.", c.ID, postID)}
}

func deleteComment(d Deps, v []string) result {
	postID, err := common.ParseInt("Post ID", v[0])
	if err != nil {
		return failed(err)
	}
	commentID, err := common.ParseInt("Comment ID", v[1])
	if err != nil {
		return failed(err)
	}
	if err := d.Feed.DeleteComment(postID, commentID); err != nil {
		return failed(err)
	}
	return result{status: fmt.Sprintf("Comment %d removed from post #%d.", commentID, postID)}
}

func popularPosts(d Deps, _ []string) result {
	return result{
		title: "Popular posts",
		body:  common.RenderPosts(d.Feed.PopularPosts(), d.WrapWidth, "No popular post can be shown."),
	}
}

func popularHashtags(d Deps, _ []string) result {
	return result{title: "Popular hashtags", body: common.RenderHashtags(d.Feed.PopularHashtags())}
}

func viewFeed(d Deps, _ []string) result {
	posts := d.Feed.ViewFeed()
	return result{
		title: fmt.Sprintf("Full feed (%d)", len(posts)),
		body:  common.RenderPosts(posts, d.WrapWidth, "No posts found."),
	}
}

func listProfiles(d Deps, _ []string) result {
	profiles := d.Feed.Profiles()
	if len(profiles) == 0 {
		return result{title: "Profiles", body: common.TaglineStyle.Render("No profiles yet.")}
	}
	lines := make([]string, 0, len(profiles))
	for _, p := range profiles {
		lines = append(lines, common.RenderProfile(p))
	}
	return result{title: fmt.Sprintf("Profiles (%d)", len(profiles)), body: strings.Join(lines, "\n")}
}
