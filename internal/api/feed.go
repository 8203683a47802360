package api

import (
	"context"
	"net/url"

	"github.com/julianstephens/hrportal/internal/models"
)

// FeedService covers the social feed
type FeedService struct{ c *Client }

// Posts lists posts, newest first
func (s *FeedService) Posts(ctx context.Context) ([]models.Post, error) {
	var ps []models.Post
	if err := s.c.get(ctx, "/posts/", nil, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// Create publishes a post
func (s *FeedService) Create(ctx context.Context, p models.NewPost) (*models.Post, error) {
	var out models.Post
	if err := s.c.post(ctx, "/posts/", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleLike likes or unlikes a post. The reply message is "Liked" or "Unliked".
func (s *FeedService) ToggleLike(ctx context.Context, postID int, employeeID string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := s.c.post(ctx, "/posts/"+itoa(postID)+"/like/", models.LikeRequest{EmployeeID: employeeID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Comment adds a comment to a post
func (s *FeedService) Comment(ctx context.Context, postID int, employeeID, content string) (*models.CommentAck, error) {
	var ack models.CommentAck
	req := models.CommentRequest{EmployeeID: employeeID, Content: content}
	if err := s.c.post(ctx, "/posts/"+itoa(postID)+"/comment/", req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// DeleteComment removes the caller's comment
func (s *FeedService) DeleteComment(ctx context.Context, postID, commentID int, employeeID string) error {
	q := url.Values{"employee_id": {employeeID}}
	return s.c.delete(ctx, "/posts/"+itoa(postID)+"/comment/"+itoa(commentID)+"/", q)
}

// Delete removes a post
func (s *FeedService) Delete(ctx context.Context, postID int) error {
	return s.c.delete(ctx, "/posts/"+itoa(postID)+"/", nil)
}
