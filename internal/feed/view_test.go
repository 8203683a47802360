package feed

import (
	"testing"
	"time"

	"github.com/julianstephens/hrportal/internal/models"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want string
	}{
		{"2026-01-07T11:00:00", "3 hours ago"},
		{"2026-01-07 13:59:30.000000", "30 seconds ago"},
		{"2026-01-05T14:00:00Z", "2 days ago"},
		{"yesterday", "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Age(tt.in, now); got != tt.want {
				t.Errorf("Age(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestView(t *testing.T) {
	now := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)
	posts := []models.Post{{
		ID: 1, Author: "Ravi", Likes: []string{"E123"}, LikesCount: 1,
		Comments: []models.Comment{{ID: 1}}, CreatedAt: "2026-01-07T13:00:00",
	}}
	v := View(posts, "E123", now)
	if len(v) != 1 || !v[0].Liked || v[0].Comments != 1 || v[0].Age != "1 hour ago" {
		t.Errorf("View() = %+v", v)
	}
	if View(posts, "E9", now)[0].Liked {
		t.Error("Liked should be per user")
	}
}
