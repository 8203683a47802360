package requests

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/logger"
)

// advise warns when the stored role suggests the server will refuse a
// review action. The server has the final say.
func advise(ctx *cli.Context) error {
	user, err := ctx.User()
	if err != nil {
		return err
	}
	if !user.CanApprove() {
		ctx.Println(cli.MutedStyle.Render("Your role may not review requests; the server decides."))
	}
	return nil
}

func act(ctx *cli.Context, kind string, id int, action string, send func(context.Context, int, string) error) error {
	if err := advise(ctx); err != nil {
		return err
	}
	if err := send(ctx.Context(), id, action); err != nil {
		logger.Warn("review action failed", "kind", kind, "id", id, "action", action, "err", err)
		return fmt.Errorf("failed to %s %s request %d: %w", strings.ToLower(action), strings.ToLower(kind), id, err)
	}
	ctx.Printf("%s request %d %s.\n", kind, id, pastTense(action))
	return nil
}

func pastTense(action string) string {
	switch action {
	case constants.ActionApprove:
		return "approved"
	case constants.ActionReject:
		return "rejected"
	}
	return strings.ToLower(action)
}

// sessionName maps the short flag values onto leave session names
func sessionName(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "first half", "1":
		return constants.SessionFirstHalf
	case "second", "second half", "2":
		return constants.SessionSecondHalf
	}
	return constants.SessionFullDay
}
