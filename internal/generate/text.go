package generate

import (
	"fmt"
	"strings"

	"datasynth/internal/dataset"
)

var platforms = []string{"Twitter", "Facebook", "Instagram", "LinkedIn"}

// reviewsTable builds product review records.
func (g *Generator) reviewsTable(count int) *dataset.Table {
	t := dataset.New("reviews",
		"review_id", "product_name", "reviewer_name", "rating",
		"review_title", "review_text", "helpful_votes", "review_date")

	now := g.anchor
	for i := 0; i < count; i++ {
		t.Append(
			fmt.Sprintf("REV%05d", i+1),
			g.fake.ProductName(),
			g.fake.Name(),
			1+g.rng.Intn(5),
			strings.TrimSuffix(g.fake.Sentence(6), "."),
			g.fake.Paragraph(1, 3, 12, " "),
			g.rng.Intn(101),
			g.fake.DateRange(now.AddDate(-1, 0, 0), now).Format("2006-01-02"),
		)
	}
	return t
}

// blogPostsTable builds blog post records.
func (g *Generator) blogPostsTable(count int) *dataset.Table {
	t := dataset.New("blog_posts",
		"post_id", "title", "author", "content", "tags", "views",
		"likes", "publish_date")

	now := g.anchor
	for i := 0; i < count; i++ {
		tags := []string{g.fake.Word(), g.fake.Word(), g.fake.Word()}
		t.Append(
			fmt.Sprintf("POST%05d", i+1),
			strings.TrimSuffix(g.fake.Sentence(8), "."),
			g.fake.Name(),
			g.fake.Paragraph(1, 5, 14, " "),
			strings.Join(tags, ", "),
			100+g.rng.Intn(9901),
			5+g.rng.Intn(496),
			g.fake.DateRange(now.AddDate(0, -6, 0), now).Format("2006-01-02"),
		)
	}
	return t
}

// socialMediaTable builds short social posts with hashtags.
func (g *Generator) socialMediaTable(count int) *dataset.Table {
	t := dataset.New("social_media",
		"post_id", "username", "platform", "post_text", "hashtags",
		"likes", "shares", "comments", "post_datetime")

	now := g.anchor
	for i := 0; i < count; i++ {
		t.Append(
			fmt.Sprintf("SM%06d", i+1),
			g.fake.Username(),
			g.pick(platforms),
			g.fake.Sentence(12),
			fmt.Sprintf("#%s #%s", g.fake.Word(), g.fake.Word()),
			g.rng.Intn(1001),
			g.rng.Intn(101),
			g.rng.Intn(51),
			g.fake.DateRange(now.AddDate(0, 0, -30), now),
		)
	}
	return t
}
