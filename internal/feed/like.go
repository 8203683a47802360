package feed

import (
	"slices"

	"github.com/julianstephens/hrportal/internal/models"
)

// ToggleLike flips userID's like on a copy of post and adjusts the count
func ToggleLike(post models.Post, userID string) models.Post {
	out := post.Clone()
	if i := slices.Index(out.Likes, userID); i >= 0 {
		out.Likes = slices.Delete(out.Likes, i, i+1)
		out.LikesCount = max(0, out.LikesCount-1)
		return out
	}
	out.Likes = append(out.Likes, userID)
	out.LikesCount++
	return out
}

// LikedBy reports whether userID has liked post
func LikedBy(post models.Post, userID string) bool {
	return slices.Contains(post.Likes, userID)
}

func clonePosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}

func update(id int, fn func(models.Post) models.Post) func([]models.Post) []models.Post {
	return func(posts []models.Post) []models.Post {
		for i := range posts {
			if posts[i].ID == id {
				posts[i] = fn(posts[i])
			}
		}
		return posts
	}
}
