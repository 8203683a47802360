package feed

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// Age renders a server timestamp relative to now ("3 hours ago").
// Unparseable timestamps are returned unchanged.
func Age(createdAt string, now time.Time) string {
	t, err := utils.ParseTimestamp(createdAt)
	if err != nil {
		return createdAt
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// PostView is a post prepared for display
type PostView struct {
	ID       int
	Author   string
	Content  string
	Type     string
	Likes    int
	Liked    bool
	Comments int
	Age      string
	Images   int
}

// View prepares posts for userID
func View(posts []models.Post, userID string, now time.Time) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostView{
			ID:       p.ID,
			Author:   p.Author,
			Content:  p.Content,
			Type:     p.Type,
			Likes:    p.LikesCount,
			Liked:    LikedBy(p, userID),
			Comments: len(p.Comments),
			Age:      Age(p.CreatedAt, now),
			Images:   len(p.Images),
		})
	}
	return out
}
