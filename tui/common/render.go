package common

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/socialfeed/app"
	"github.com/CrestNiraj12/socialfeed/domain"
)

const timeLayout = "2006-01-02 15:04"

// Wrap word-wraps plain text to width columns.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}

// ClampLines cuts every line of an already styled block to width cells.
func ClampLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) > width {
			lines[i] = ansi.Truncate(ln, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

// RenderPost draws a post card: header, text, hashtags and view budget for
// advanced posts, counters, and comments.
func RenderPost(p domain.Post, width int) string {
	var b strings.Builder

	b.WriteString(AuthorStyle.Render(p.Author.Name))
	b.WriteString(" ")
	b.WriteString(TimestampStyle.Render(fmt.Sprintf("#%d · %s", p.ID, p.CreatedAt.Local().Format(timeLayout))))
	if p.IsPopular() {
		b.WriteString(PopularBadgeStyle.Render("★ popular"))
	}
	b.WriteString("\n")
	b.WriteString(ContentStyle.Render(Wrap(p.Text, width)))
	b.WriteString("\n")

	if p.IsAdvanced() {
		if tags := p.Hashtags(); len(tags) > 0 {
			b.WriteString(HashtagStyle.Render(Wrap(FormatHashtags(tags), width)))
			b.WriteString("\n")
		}
		b.WriteString(ViewsStyle.Render(fmt.Sprintf("%d views left", p.RemainingViews())))
		b.WriteString("\n")
	}

	b.WriteString(TimestampStyle.Render(fmt.Sprintf("%d likes · %d dislikes", p.Likes, p.Dislikes)))

	if len(p.Comments) > 0 {
		b.WriteString("\n")
		b.WriteString(TimestampStyle.Render(fmt.Sprintf("%d comments", len(p.Comments))))
		for _, c := range p.Comments {
			b.WriteString("\n")
			b.WriteString(RenderComment(c, width))
		}
	}

	return CardStyle.Render(b.String())
}

// RenderComment draws one comment line.
func RenderComment(c domain.Comment, width int) string {
	prefix := fmt.Sprintf(" [%d] ", c.ID)
	textWidth := width - ansi.StringWidth(prefix) - ansi.StringWidth(c.Author.Name) - 2
	return TimestampStyle.Render(prefix) + AuthorStyle.Render(c.Author.Name) + ": " +
		ContentStyle.Render(Wrap(c.Text, max(textWidth, 10)))
}

// RenderPosts draws every post, or empty when there are none.
func RenderPosts(posts []domain.Post, width int, empty string) string {
	if len(posts) == 0 {
		return TaglineStyle.Render(empty)
	}
	cards := make([]string, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, RenderPost(p, width))
	}
	return strings.Join(cards, "\n")
}

// RenderProfile summarizes a profile.
func RenderProfile(p domain.Profile) string {
	return fmt.Sprintf("%s %s %s",
		AuthorStyle.Render(p.Name),
		TimestampStyle.Render(fmt.Sprintf("#%d · %s", p.ID, p.Email)),
		ContentStyle.Render(fmt.Sprintf("· %d posts", len(p.PostIDs))),
	)
}

// RenderHashtags lists popular hashtags with their post counts.
func RenderHashtags(counts []app.HashtagCount) string {
	if len(counts) == 0 {
		return TaglineStyle.Render("No hashtag is used by more than one post.")
	}
	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		lines = append(lines, HashtagStyle.Render("#"+c.Hashtag)+" "+ContentStyle.Render(fmt.Sprintf("%d posts", c.Posts)))
	}
	return strings.Join(lines, "\n")
}

// FormatHashtags renders tags as "#a #b".
func FormatHashtags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}
