package feed

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/julianstephens/hrportal/internal/cli/clitest"
	"github.com/julianstephens/hrportal/internal/models"
)

var employee = models.User{ID: "1", EmployeeID: "E1", FirstName: "Asha"}

type backend struct {
	mu       sync.Mutex
	posts    []models.Post
	failLike bool
	failDel  bool
	likes    []string
	created  []models.NewPost
}

func newBackend() *backend {
	return &backend{posts: []models.Post{
		{
			ID: 1, Author: "Ravi", Content: "Team lunch Friday", Type: "Event",
			Likes: []string{"E2"}, LikesCount: 1, CreatedAt: "2026-01-07T07:00:00",
			Comments: []models.Comment{{ID: 10, AuthorID: "E1", Author: "Asha", Content: "Count me in", CreatedAt: "2026-01-07T08:00:00"}},
		},
		{ID: 2, Author: "Meera", Content: "Shipped v2", Type: "Activity", CreatedAt: "2026-01-06T10:00:00"},
	}}
}

func (b *backend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			clitest.JSON(w, http.StatusOK, b.posts)
		case http.MethodPost:
			var p models.NewPost
			clitest.Decode(t, r, &p)
			b.created = append(b.created, p)
			post := models.Post{ID: 3, Author: "Asha", AuthorID: p.AuthorID, Content: p.Content, Type: p.Type}
			b.posts = append([]models.Post{post}, b.posts...)
			clitest.JSON(w, http.StatusCreated, post)
		}
	})
	mux.HandleFunc("/posts/1/like/", func(w http.ResponseWriter, r *http.Request) {
		var req models.LikeRequest
		clitest.Decode(t, r, &req)
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failLike {
			clitest.JSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		b.likes = append(b.likes, req.EmployeeID)
		clitest.JSON(w, http.StatusOK, models.MessageResponse{Message: "liked"})
	})
	mux.HandleFunc("/posts/1/comment/", func(w http.ResponseWriter, r *http.Request) {
		clitest.JSON(w, http.StatusCreated, models.CommentAck{ID: 11})
	})
	mux.HandleFunc("/posts/1/comment/10/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("employee_id") == "" {
			t.Errorf("comment delete without employee_id: %s", r.URL)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/posts/2/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failDel {
			clitest.JSON(w, http.StatusForbidden, map[string]string{"error": "Not your post"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func setup(t *testing.T) (*clitest.Env, *backend) {
	b := newBackend()
	env := clitest.New(t, b.handler(t))
	env.Login(t, employee)
	return env, b
}

func TestListCmd(t *testing.T) {
	env, _ := setup(t)

	if err := (&ListCmd{Comments: true}).Run(env.Ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	out := env.Out.String()
	for _, want := range []string{"#1 Ravi", "3 hours ago", "Count me in", "#2 Meera", "1 day ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLikeCmd(t *testing.T) {
	env, b := setup(t)

	if err := (&LikeCmd{ID: 1}).Run(env.Ctx); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if len(b.likes) != 1 || b.likes[0] != "E1" {
		t.Errorf("likes sent = %v", b.likes)
	}
	if !strings.Contains(env.Out.String(), "Liked post 1 (2 likes)") {
		t.Errorf("unexpected output: %s", env.Out.String())
	}
}

func TestLikeCmd_FailureIsQuiet(t *testing.T) {
	env, b := setup(t)
	b.failLike = true

	if err := (&LikeCmd{ID: 1}).Run(env.Ctx); err != nil {
		t.Fatalf("like failure surfaced as error: %v", err)
	}
	if !strings.Contains(env.Out.String(), "nothing changed") {
		t.Errorf("unexpected output: %s", env.Out.String())
	}
}

func TestLikeCmd_UnknownPost(t *testing.T) {
	env, _ := setup(t)
	if err := (&LikeCmd{ID: 42}).Run(env.Ctx); err == nil {
		t.Error("expected an error for an unknown post")
	}
}

func TestCommentCmd(t *testing.T) {
	env, _ := setup(t)

	if err := (&CommentCmd{ID: 1, Content: "  "}).Run(env.Ctx); err == nil {
		t.Error("expected an error for an empty comment")
	}
	if err := (&CommentCmd{ID: 1, Content: "See you there"}).Run(env.Ctx); err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "Commented on post 1 (2 comments)") {
		t.Errorf("unexpected output: %s", env.Out.String())
	}
}

func TestPostCmd(t *testing.T) {
	env, b := setup(t)

	if err := (&PostCmd{Content: "Hello", Event: true}).Run(env.Ctx); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if len(b.created) != 1 || b.created[0].AuthorID != "E1" || b.created[0].Type != "Event" {
		t.Errorf("created = %+v", b.created)
	}
	if !strings.Contains(env.Out.String(), "The feed has 3 posts") {
		t.Errorf("unexpected output: %s", env.Out.String())
	}
}

func TestDeleteCmds(t *testing.T) {
	env, b := setup(t)

	if err := (&DeleteCommentCmd{PostID: 1, CommentID: 10}).Run(env.Ctx); err != nil {
		t.Fatalf("delete comment failed: %v", err)
	}
	if err := (&DeleteCmd{ID: 2, Yes: true}).Run(env.Ctx); err != nil {
		t.Fatalf("delete post failed: %v", err)
	}

	b.failDel = true
	err := (&DeleteCmd{ID: 2, Yes: true}).Run(env.Ctx)
	if err == nil || !strings.Contains(err.Error(), "Not your post") {
		t.Errorf("Run() error = %v, want the server's refusal", err)
	}
}
