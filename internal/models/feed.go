package models

// Comment is a comment on a feed post
type Comment struct {
	ID        int    `json:"id"`
	AuthorID  string `json:"author_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"` // naive ISO-8601, UTC
}

// Post is a social feed post. Likes holds the ids of employees who liked it.
type Post struct {
	ID         int       `json:"id"`
	Author     string    `json:"author"`
	AuthorID   string    `json:"author_id,omitempty"`
	Content    string    `json:"content"`
	Images     []string  `json:"images"`
	Type       string    `json:"type"`
	Likes      []string  `json:"likes"`
	LikesCount int       `json:"likes_count"`
	Comments   []Comment `json:"comments"`
	CreatedAt  string    `json:"created_at"`
}

// Clone returns a deep copy so optimistic edits never alias server state
func (p Post) Clone() Post {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Likes = append([]string(nil), p.Likes...)
	out.Comments = append([]Comment(nil), p.Comments...)
	return out
}

// NewPost is the body of a post submission
type NewPost struct {
	AuthorID string   `json:"author_id" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Images   []string `json:"images"`
	Type     string   `json:"type" validate:"oneof=Activity Event"`
}

// LikeRequest toggles a like for an employee
type LikeRequest struct {
	EmployeeID string `json:"employee_id"`
}

// CommentRequest adds a comment
type CommentRequest struct {
	EmployeeID string `json:"employee_id"`
	Content    string `json:"content" validate:"required"`
}

// CommentAck is the server's reply to a new comment
type CommentAck struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}
