package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

// recorder captures the last request a test server saw
type recorder struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
	hits   int
}

func newServer(t *testing.T, status int, response string) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.hits++
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.header = r.Header.Clone()
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", srv.Client()), rec
}

func TestRequestHeaders(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `[]`)

	if _, err := c.Feed.Posts(context.Background()); err != nil {
		t.Fatalf("Posts() error = %v", err)
	}
	if rec.path != "/api/posts/" {
		t.Errorf("path = %q", rec.path)
	}
	want := map[string]string{
		"Content-Type":  "application/json",
		"Cache-Control": "no-cache, no-store, must-revalidate",
		"Pragma":        "no-cache",
	}
	for k, v := range want {
		if got := rec.header.Get(k); got != v {
			t.Errorf("header %s = %q, want %q", k, got, v)
		}
	}
	if len(rec.header.Get("X-Request-ID")) != 36 {
		t.Errorf("X-Request-ID = %q, want a uuid", rec.header.Get("X-Request-ID"))
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantAuth bool
		wantNF   bool
	}{
		{"error field", http.StatusBadRequest, `{"error": "Leave already applied for this date range"}`, "Leave already applied for this date range", false, false},
		{"detail field", http.StatusForbidden, `{"detail": "Your account is inactive. Please contact HR."}`, "Your account is inactive. Please contact HR.", true, false},
		{"invalid otp", http.StatusUnauthorized, `{"error": "Invalid OTP"}`, "Invalid OTP", true, false},
		{"empty body", http.StatusNotFound, ``, "API Error: Not Found", false, true},
		{"html body", http.StatusInternalServerError, `<html>oops</html>`, "API Error: Internal Server Error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newServer(t, tt.status, tt.body)
			_, err := c.Leave.Apply(context.Background(), models.LeaveApplication{EmployeeID: "E1"})
			if err == nil {
				t.Fatal("expected an error")
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %T is not *api.Error", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Error() != tt.wantMsg || apiErr.UserMessage() != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Error(), tt.wantMsg)
			}
			if errors.Is(err, ErrUnauthorized) != tt.wantAuth {
				t.Errorf("errors.Is(ErrUnauthorized) = %v, want %v", !tt.wantAuth, tt.wantAuth)
			}
			if errors.Is(err, ErrNotFound) != tt.wantNF {
				t.Errorf("errors.Is(ErrNotFound) = %v, want %v", !tt.wantNF, tt.wantNF)
			}
		})
	}
}

func TestBalanceShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]float64
	}{
		{
			name: "object with total",
			body: `{"cl": 3, "sl": 5.5, "el": 17, "total": 25.5}`,
			want: map[string]float64{"cl": 3, "sl": 5.5, "el": 17},
		},
		{
			name: "array",
			body: `[{"code": "cl", "available": 2}, {"code": "bl", "available": 5}]`,
			want: map[string]float64{"cl": 2, "bl": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newServer(t, http.StatusOK, tt.body)
			got, err := c.Leave.Balance(context.Background(), "MW-007")
			if err != nil {
				t.Fatalf("Balance() error = %v", err)
			}
			if rec.path != "/api/leaves/balance/MW-007/" {
				t.Errorf("path = %q", rec.path)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %+v", len(got), len(tt.want), got)
			}
			for _, e := range got {
				if tt.want[e.Code] != e.Available {
					t.Errorf("%s = %v, want %v", e.Code, e.Available, tt.want[e.Code])
				}
			}
		})
	}
}

func TestClockBody(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"message": "Successfully Clocked IN", "type": "IN", "time": "09:31 AM", "summary": {"check_in": "09:31 AM", "check_out": "-"}}`)

	resp, err := c.Attendance.Clock(context.Background(), models.ClockRequest{
		EmployeeID: "MW-007",
		Location:   "Office (17.000000, 78.000000)",
		Type:       constants.ClockIn,
	})
	if err != nil {
		t.Fatalf("Clock() error = %v", err)
	}
	if resp.Type != constants.ClockIn || resp.Summary.CheckIn != "09:31 AM" {
		t.Errorf("response = %+v", resp)
	}

	var sent map[string]string
	if err := json.Unmarshal(rec.body, &sent); err != nil {
		t.Fatal(err)
	}
	if sent["employee_id"] != "MW-007" || sent["type"] != "IN" || sent["location"] == "" {
		t.Errorf("body = %v", sent)
	}
}

func TestPathsAndQueries(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   string
	}{
		{
			name:       "regularization list",
			call:       func(c *Client) error { _, err := c.Attendance.Regularizations(ctx, "MW-1", "manager"); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/api/attendance/regularization-requests/MW-1/",
			wantQuery:  "role=manager",
		},
		{
			name:       "regularization action",
			call:       func(c *Client) error { return c.Attendance.ActionRegularization(ctx, 12, "Approved") },
			wantMethod: http.MethodPost,
			wantPath:   "/api/attendance/regularization/12/action/",
			wantBody:   `{"action":"Approved"}`,
		},
		{
			name:       "leave action",
			call:       func(c *Client) error { return c.Leave.Action(ctx, 4, "Reject") },
			wantMethod: http.MethodPost,
			wantPath:   "/api/leaves/4/action/",
			wantBody:   `{"action":"Reject"}`,
		},
		{
			name:       "delete comment",
			call:       func(c *Client) error { return c.Feed.DeleteComment(ctx, 3, 9, "MW-1") },
			wantMethod: http.MethodDelete,
			wantPath:   "/api/posts/3/comment/9/",
			wantQuery:  "employee_id=MW-1",
		},
		{
			name:       "member search",
			call:       func(c *Client) error { _, err := c.Team.Members(ctx, MemberFilter{Search: "asha"}); return err },
			wantMethod: http.MethodGet,
			wantPath:   "/api/team/members/",
			wantQuery:  "search=asha",
		},
		{
			name: "account status",
			call: func(c *Client) error {
				_, err := c.Auth.UpdateAccountStatus(ctx, "9876543210", "123456", constants.AccountDeactivate)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/auth/account-status/",
			wantBody:   `{"phone":"9876543210","otp":"123456","action":"deactivate"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newServer(t, http.StatusOK, `[]`)
			if tt.wantMethod != http.MethodGet {
				c, rec = newServer(t, http.StatusOK, `{}`)
			}
			if err := tt.call(c); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if rec.method != tt.wantMethod || rec.path != tt.wantPath || rec.query != tt.wantQuery {
				t.Errorf("request = %s %s?%s, want %s %s?%s", rec.method, rec.path, rec.query, tt.wantMethod, tt.wantPath, tt.wantQuery)
			}
			if tt.wantBody != "" && string(rec.body) != tt.wantBody {
				t.Errorf("body = %s, want %s", rec.body, tt.wantBody)
			}
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"success": true, "user": {"id": "0", "employee_id": "MW-ADMIN", "first_name": "Admin", "is_admin": true}}`)
	u, err := c.Auth.VerifyOTP(context.Background(), "9876543210", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
	if u.Identifier() != "MW-ADMIN" || !u.IsAdmin {
		t.Errorf("user = %+v", u)
	}

	c, _ = newServer(t, http.StatusOK, `{"success": false, "message": "No user"}`)
	if _, err := c.Auth.VerifyOTP(context.Background(), "9876543210", "123456"); err == nil || err.Error() != "No user" {
		t.Errorf("VerifyOTP() error = %v, want %q", err, "No user")
	}
}

func TestContextCancel(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Feed.Posts(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if rec.hits != 0 {
		t.Errorf("server saw %d requests, want 0", rec.hits)
	}
}
