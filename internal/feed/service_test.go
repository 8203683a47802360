package feed

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/julianstephens/hrportal/internal/models"
)

type fakeAPI struct {
	mu       sync.Mutex
	posts    []models.Post
	fail     error
	likes    int
	comments int
	// gate, when set, blocks ToggleLike until closed
	gate chan struct{}
}

func (f *fakeAPI) Posts(context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return clonePosts(f.posts), nil
}

func (f *fakeAPI) Create(_ context.Context, p models.NewPost) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	post := models.Post{ID: len(f.posts) + 100, AuthorID: p.AuthorID, Content: p.Content, Type: p.Type}
	f.posts = append(f.posts, post)
	return &post, nil
}

func (f *fakeAPI) ToggleLike(ctx context.Context, _ int, _ string) (*models.MessageResponse, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.likes++
	if f.fail != nil {
		return nil, f.fail
	}
	return &models.MessageResponse{Message: "ok"}, nil
}

func (f *fakeAPI) Comment(_ context.Context, _ int, _, _ string) (*models.CommentAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments++
	if f.fail != nil {
		return nil, f.fail
	}
	return &models.CommentAck{Message: "ok", ID: 55}, nil
}

func (f *fakeAPI) DeleteComment(context.Context, int, int, string) error { return f.fail }
func (f *fakeAPI) Delete(context.Context, int) error                     { return f.fail }

var me = models.User{EmployeeID: "E123", FirstName: "Asha", LastName: "Rao"}

func newFeed(t *testing.T, api *fakeAPI) *Service {
	t.Helper()
	s := NewService(api, me)
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	return s
}

func TestToggleLikePure(t *testing.T) {
	p := models.Post{ID: 1, Likes: []string{"E9"}, LikesCount: 1}

	liked := ToggleLike(p, "E123")
	if !LikedBy(liked, "E123") || liked.LikesCount != 2 {
		t.Errorf("like: %+v", liked)
	}
	if LikedBy(p, "E123") {
		t.Error("ToggleLike modified its input")
	}

	unliked := ToggleLike(liked, "E123")
	if LikedBy(unliked, "E123") || unliked.LikesCount != 1 {
		t.Errorf("unlike: %+v", unliked)
	}
}

func TestLikeRevertsOnFailure(t *testing.T) {
	api := &fakeAPI{posts: []models.Post{{ID: 1}}, gate: make(chan struct{})}
	s := newFeed(t, api)
	api.fail = errors.New("503")

	done := make(chan bool)
	go func() {
		ok, _ := s.ToggleLike(context.Background(), 1)
		done <- ok
	}()

	// Visible before the server answers
	waitFor(t, func() bool {
		p, _ := s.Post(1)
		return p.LikesCount == 1 && slices.Equal(p.Likes, []string{"E123"})
	})

	close(api.gate)
	if <-done {
		t.Error("ToggleLike() reported success for a failed request")
	}
	p, _ := s.Post(1)
	if p.LikesCount != 0 || len(p.Likes) != 0 {
		t.Errorf("after failure post = %+v, want no likes", p)
	}
}

func TestFailedLikeKeepsFresherFeed(t *testing.T) {
	api := &fakeAPI{posts: []models.Post{{ID: 1}}, gate: make(chan struct{})}
	s := newFeed(t, api)
	api.fail = errors.New("503")

	done := make(chan bool)
	go func() {
		ok, _ := s.ToggleLike(context.Background(), 1)
		done <- ok
	}()
	waitFor(t, func() bool {
		p, _ := s.Post(1)
		return p.LikesCount == 1
	})

	// A poll sent after the click lands before the like fails
	api.mu.Lock()
	api.posts = append(api.posts, models.Post{ID: 2, Content: "new"})
	api.mu.Unlock()
	if applied, err := s.Refresh(context.Background()); err != nil || !applied {
		t.Fatalf("Refresh() = %v, %v", applied, err)
	}

	close(api.gate)
	if <-done {
		t.Error("ToggleLike() reported success for a failed request")
	}
	posts := s.Posts()
	if len(posts) != 2 {
		t.Fatalf("posts = %+v, want the refreshed feed", posts)
	}
	if posts[0].LikesCount != 0 {
		t.Errorf("LikesCount = %d, want 0", posts[0].LikesCount)
	}
}

func TestLikeConfirmed(t *testing.T) {
	api := &fakeAPI{posts: []models.Post{{ID: 1, Likes: []string{"E123"}, LikesCount: 1}}}
	s := newFeed(t, api)

	ok, err := s.ToggleLike(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("ToggleLike() = %v, %v", ok, err)
	}
	p, _ := s.Post(1)
	if p.LikesCount != 0 {
		t.Errorf("LikesCount = %d, want 0", p.LikesCount)
	}
	if _, err := s.ToggleLike(context.Background(), 42); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("unknown post error = %v", err)
	}
}

func TestStaleRefreshDoesNotUndoLike(t *testing.T) {
	api := &fakeAPI{posts: []models.Post{{ID: 1}}}
	s := newFeed(t, api)

	tok := s.store.BeginFetch()
	if ok, _ := s.ToggleLike(context.Background(), 1); !ok {
		t.Fatal("like failed")
	}
	// The poll began before the click and still shows zero likes
	if s.store.Reconcile(tok, []models.Post{{ID: 1}}) {
		t.Error("stale poll applied")
	}
	if p, _ := s.Post(1); p.LikesCount != 1 {
		t.Errorf("LikesCount = %d, want 1", p.LikesCount)
	}
}

func TestComment(t *testing.T) {
	api := &fakeAPI{posts: []models.Post{{ID: 1}}}
	s := newFeed(t, api)

	if _, err := s.Comment(context.Background(), 1, "   "); !errors.Is(err, ErrEmptyComment) {
		t.Errorf("blank comment error = %v", err)
	}
	if api.comments != 0 {
		t.Error("blank comment reached the server")
	}

	ok, err := s.Comment(context.Background(), 1, "congrats!")
	if err != nil || !ok {
		t.Fatalf("Comment() = %v, %v", ok, err)
	}
	p, _ := s.Post(1)
	if len(p.Comments) != 1 || p.Comments[0].ID != 55 || p.Comments[0].Author != "Asha Rao" {
		t.Errorf("comments = %+v", p.Comments)
	}

	api.fail = errors.New("boom")
	ok, err = s.Comment(context.Background(), 1, "second")
	if err != nil || ok {
		t.Errorf("failed Comment() = %v, %v; want silent false", ok, err)
	}
	if p, _ := s.Post(1); len(p.Comments) != 1 {
		t.Errorf("failed comment not reverted: %+v", p.Comments)
	}
}

func TestDeletes(t *testing.T) {
	api := &fakeAPI{posts: []models.Post{
		{ID: 1, Comments: []models.Comment{{ID: 7, AuthorID: "E123"}, {ID: 8}}},
		{ID: 2},
	}}
	s := newFeed(t, api)

	api.fail = errors.New("forbidden")
	if err := s.DeletePost(context.Background(), 1); err == nil {
		t.Error("DeletePost() should surface the failure")
	}
	if len(s.Posts()) != 2 || s.Posts()[0].ID != 1 {
		t.Errorf("post not restored in place: %+v", s.Posts())
	}
	if err := s.DeleteComment(context.Background(), 1, 7); err == nil {
		t.Error("DeleteComment() should surface the failure")
	}
	if p, _ := s.Post(1); len(p.Comments) != 2 || p.Comments[0].ID != 7 {
		t.Errorf("comment not restored in place: %+v", p.Comments)
	}

	api.fail = nil
	if err := s.DeleteComment(context.Background(), 1, 7); err != nil {
		t.Fatalf("DeleteComment() error = %v", err)
	}
	if err := s.DeletePost(context.Background(), 2); err != nil {
		t.Fatalf("DeletePost() error = %v", err)
	}
	posts := s.Posts()
	if len(posts) != 1 || len(posts[0].Comments) != 1 {
		t.Errorf("after deletes = %+v", posts)
	}
}

func TestPublishRefreshes(t *testing.T) {
	api := &fakeAPI{}
	s := newFeed(t, api)
	if err := s.Publish(context.Background(), models.NewPost{Content: "hello", Type: "Activity"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	posts := s.Posts()
	if len(posts) != 1 || posts[0].AuthorID != "E123" {
		t.Errorf("posts = %+v", posts)
	}
}
