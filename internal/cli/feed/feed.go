package feed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/feed"
	"github.com/julianstephens/hrportal/internal/models"
)

// load opens the feed for the signed-in user
func load(ctx *cli.Context) (*feed.Service, models.User, error) {
	user, err := ctx.User()
	if err != nil {
		return nil, user, err
	}
	svc := feed.NewService(ctx.API.Feed, user)
	if _, err := svc.Refresh(ctx.Context()); err != nil {
		return nil, user, err
	}
	return svc, user, nil
}

type ListCmd struct {
	Limit    int  `short:"n" help:"Show at most this many posts." default:"20"`
	Comments bool `short:"c" help:"Include comments."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	svc, user, err := load(ctx)
	if err != nil {
		return err
	}
	posts := svc.Posts()
	if len(posts) == 0 {
		ctx.Println("The feed is empty.")
		return nil
	}
	if c.Limit > 0 && len(posts) > c.Limit {
		posts = posts[:c.Limit]
	}

	now := ctx.Clock()
	for i, v := range feed.View(posts, user.Identifier(), now) {
		heart := "♡"
		if v.Liked {
			heart = "♥"
		}
		ctx.Printf("%s  %s %s\n", cli.TitleStyle.Render(fmt.Sprintf("#%d %s", v.ID, v.Author)), cli.MutedStyle.Render(v.Type), cli.MutedStyle.Render(v.Age))
		ctx.Printf("  %s\n", strings.ReplaceAll(v.Content, "\n", "\n  "))
		if v.Images > 0 {
			ctx.Printf("  [%d image(s)]\n", v.Images)
		}
		ctx.Printf("  %s %d   💬 %d\n", heart, v.Likes, v.Comments)
		if c.Comments {
			for _, cm := range posts[i].Comments {
				ctx.Printf("    #%d %s: %s %s\n", cm.ID, cm.Author, cm.Content, cli.MutedStyle.Render(feed.Age(cm.CreatedAt, now)))
			}
		}
		ctx.Println()
	}
	return nil
}

type PostCmd struct {
	Content string   `arg:"" help:"Post text."`
	Event   bool     `help:"Publish as an event instead of an activity."`
	Image   []string `help:"Image URL to attach. Repeatable."`
}

func (c *PostCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.Content) == "" {
		return errors.New("post content cannot be empty")
	}
	svc, _, err := load(ctx)
	if err != nil {
		return err
	}
	kind := constants.PostActivity
	if c.Event {
		kind = constants.PostEvent
	}
	if err := svc.Publish(ctx.Context(), models.NewPost{Content: c.Content, Images: c.Image, Type: kind}); err != nil {
		return err
	}
	ctx.Printf("Posted. The feed has %d posts.\n", len(svc.Posts()))
	return nil
}

type LikeCmd struct {
	ID int `arg:"" help:"Post ID."`
}

func (c *LikeCmd) Run(ctx *cli.Context) error {
	svc, user, err := load(ctx)
	if err != nil {
		return err
	}
	ok, err := svc.ToggleLike(ctx.Context(), c.ID)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Could not update the like; nothing changed.")
		return nil
	}
	p, _ := svc.Post(c.ID)
	verb := "Unliked"
	if feed.LikedBy(p, user.Identifier()) {
		verb = "Liked"
	}
	ctx.Printf("%s post %d (%d likes)\n", verb, c.ID, p.LikesCount)
	return nil
}

type CommentCmd struct {
	ID      int    `arg:"" help:"Post ID."`
	Content string `arg:"" help:"Comment text."`
}

func (c *CommentCmd) Run(ctx *cli.Context) error {
	svc, _, err := load(ctx)
	if err != nil {
		return err
	}
	ok, err := svc.Comment(ctx.Context(), c.ID, c.Content)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Could not add the comment; nothing changed.")
		return nil
	}
	p, _ := svc.Post(c.ID)
	ctx.Printf("Commented on post %d (%d comments)\n", c.ID, len(p.Comments))
	return nil
}

type DeleteCmd struct {
	ID  int  `arg:"" help:"Post ID."`
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	svc, _, err := load(ctx)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete post %d?", c.ID), true)
		if err != nil || !ok {
			return err
		}
	}
	if err := svc.DeletePost(ctx.Context(), c.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted post %d\n", c.ID)
	return nil
}

type DeleteCommentCmd struct {
	PostID    int `arg:"" help:"Post ID."`
	CommentID int `arg:"" help:"Comment ID."`
}

func (c *DeleteCommentCmd) Run(ctx *cli.Context) error {
	svc, _, err := load(ctx)
	if err != nil {
		return err
	}
	if err := svc.DeleteComment(ctx.Context(), c.PostID, c.CommentID); err != nil {
		return err
	}
	ctx.Printf("Deleted comment %d\n", c.CommentID)
	return nil
}
