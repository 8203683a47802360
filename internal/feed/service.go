package feed

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/syncstate"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyComment = errors.New("comment cannot be empty")
)

// API is the slice of the REST client the feed needs
type API interface {
	Posts(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, p models.NewPost) (*models.Post, error)
	ToggleLike(ctx context.Context, postID int, employeeID string) (*models.MessageResponse, error)
	Comment(ctx context.Context, postID int, employeeID, content string) (*models.CommentAck, error)
	DeleteComment(ctx context.Context, postID, commentID int, employeeID string) error
	Delete(ctx context.Context, postID int) error
}

// Service keeps the feed with optimistic likes, comments and deletes.
// Like and comment failures are rolled back and logged only; delete
// failures are rolled back and returned.
type Service struct {
	api  API
	user models.User

	store  *syncstate.Store[[]models.Post]
	nextID int
}

// NewService creates a feed for the signed-in user
func NewService(api API, user models.User) *Service {
	return &Service{
		api:    api,
		user:   user,
		store:  syncstate.NewStore[[]models.Post](nil, clonePosts),
		nextID: -1,
	}
}

// Posts returns the current feed
func (s *Service) Posts() []models.Post {
	return s.store.Get()
}

// Post returns one post by id
func (s *Service) Post(id int) (models.Post, bool) {
	for _, p := range s.store.Get() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Refresh loads the feed. A response that raced a local edit is dropped
// and reported as not applied.
func (s *Service) Refresh(ctx context.Context) (bool, error) {
	tok := s.store.BeginFetch()
	posts, err := s.api.Posts(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load feed: %w", err)
	}
	applied := s.store.Reconcile(tok, posts)
	if !applied {
		logger.Debug("dropped stale feed response")
	}
	return applied, nil
}

// Publish creates a post and reloads the feed
func (s *Service) Publish(ctx context.Context, p models.NewPost) error {
	if p.AuthorID == "" {
		p.AuthorID = s.user.Identifier()
	}
	if _, err := s.api.Create(ctx, p); err != nil {
		return fmt.Errorf("failed to publish post: %w", err)
	}
	_, err := s.Refresh(ctx)
	return err
}

// ToggleLike flips the user's like immediately and confirms it with the
// server. It reports whether the server accepted the change.
func (s *Service) ToggleLike(ctx context.Context, postID int) (bool, error) {
	if _, ok := s.Post(postID); !ok {
		return false, ErrPostNotFound
	}
	uid := s.user.Identifier()
	flip := update(postID, func(p models.Post) models.Post { return ToggleLike(p, uid) })

	tk := s.store.Mutate(flip, flip)
	if _, err := s.api.ToggleLike(ctx, postID, uid); err != nil {
		s.store.Rollback(tk)
		logger.Warn("like failed, reverted", "post", postID, "err", err)
		return false, nil
	}
	s.store.Commit(tk)
	return true, nil
}

// Comment appends a comment immediately and confirms it with the server
func (s *Service) Comment(ctx context.Context, postID int, content string) (bool, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return false, ErrEmptyComment
	}
	if _, ok := s.Post(postID); !ok {
		return false, ErrPostNotFound
	}

	tempID := s.nextID
	s.nextID--
	c := models.Comment{
		ID:       tempID,
		AuthorID: s.user.Identifier(),
		Author:   s.user.DisplayName(),
		Content:  content,
	}
	add := update(postID, func(p models.Post) models.Post {
		p.Comments = append(p.Comments, c)
		return p
	})
	drop := update(postID, func(p models.Post) models.Post {
		p.Comments = slices.DeleteFunc(p.Comments, func(x models.Comment) bool { return x.ID == tempID })
		return p
	})

	tk := s.store.Mutate(add, drop)
	ack, err := s.api.Comment(ctx, postID, c.AuthorID, content)
	if err != nil {
		s.store.Rollback(tk)
		logger.Warn("comment failed, reverted", "post", postID, "err", err)
		return false, nil
	}

	// Swap the placeholder id for the server's
	confirm := update(postID, func(p models.Post) models.Post {
		for i := range p.Comments {
			if p.Comments[i].ID == tempID {
				p.Comments[i].ID = ack.ID
			}
		}
		return p
	})
	s.store.Commit(s.store.Mutate(confirm, nil))
	s.store.Commit(tk)
	return true, nil
}

// DeleteComment removes the user's comment, restoring it on failure
func (s *Service) DeleteComment(ctx context.Context, postID, commentID int) error {
	post, ok := s.Post(postID)
	if !ok {
		return ErrPostNotFound
	}
	idx := slices.IndexFunc(post.Comments, func(c models.Comment) bool { return c.ID == commentID })
	if idx < 0 {
		return fmt.Errorf("comment %d not found", commentID)
	}
	removed := post.Comments[idx]

	drop := update(postID, func(p models.Post) models.Post {
		p.Comments = slices.DeleteFunc(p.Comments, func(c models.Comment) bool { return c.ID == commentID })
		return p
	})
	restore := update(postID, func(p models.Post) models.Post {
		p.Comments = slices.Insert(p.Comments, min(idx, len(p.Comments)), removed)
		return p
	})

	tk := s.store.Mutate(drop, restore)
	if err := s.api.DeleteComment(ctx, postID, commentID, s.user.Identifier()); err != nil {
		s.store.Rollback(tk)
		logger.Warn("comment delete failed, reverted", "post", postID, "comment", commentID, "err", err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	s.store.Commit(tk)
	return nil
}

// DeletePost removes a post, restoring it on failure
func (s *Service) DeletePost(ctx context.Context, postID int) error {
	posts := s.store.Get()
	idx := slices.IndexFunc(posts, func(p models.Post) bool { return p.ID == postID })
	if idx < 0 {
		return ErrPostNotFound
	}
	removed := posts[idx]

	drop := func(ps []models.Post) []models.Post {
		return slices.DeleteFunc(ps, func(p models.Post) bool { return p.ID == postID })
	}
	restore := func(ps []models.Post) []models.Post {
		return slices.Insert(ps, min(idx, len(ps)), removed)
	}

	tk := s.store.Mutate(drop, restore)
	if err := s.api.Delete(ctx, postID); err != nil {
		s.store.Rollback(tk)
		logger.Warn("post delete failed, reverted", "post", postID, "err", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	s.store.Commit(tk)
	return nil
}
