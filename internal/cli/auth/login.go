package auth

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/julianstephens/hrportal/internal/cli"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	otpPattern   = regexp.MustCompile(`^\d{6}$`)
)

type LoginCmd struct {
	Phone string `arg:"" optional:"" help:"10-digit mobile number."`
	Email string `help:"Log in with an emailed code instead of a phone number."`
	OTP   string `name:"otp" help:"Code received. Without it a new code is sent."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if (c.Phone == "") == (c.Email == "") {
		return errors.New("give either a phone number or --email")
	}
	if c.Phone != "" && !phonePattern.MatchString(c.Phone) {
		return errors.New("phone number must be exactly 10 digits")
	}

	if c.OTP == "" {
		if err := c.send(ctx); err != nil {
			return err
		}
		if !ctx.Interactive {
			ctx.Println("Code sent. Run login again with --otp to finish.")
			return nil
		}
	}

	if err := ctx.Ask("Enter the 6-digit code", &c.OTP, checkOTP); err != nil {
		return err
	}

	user, err := c.verify(ctx)
	if err != nil {
		return err
	}

	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	if err := sess.Login(*user); err != nil {
		return err
	}
	logger.Info("logged in", "employee", user.Identifier())
	ctx.Printf("Welcome, %s (%s)\n", user.DisplayName(), user.Role)
	return nil
}

func (c *LoginCmd) send(ctx *cli.Context) error {
	var err error
	if c.Email != "" {
		err = ctx.API.Auth.SendEmailOTP(ctx.Context(), c.Email)
	} else {
		err = ctx.API.Auth.SendOTP(ctx.Context(), c.Phone)
	}
	if err != nil {
		return fmt.Errorf("failed to send code: %w", err)
	}
	return nil
}

func (c *LoginCmd) verify(ctx *cli.Context) (*models.User, error) {
	if c.Email != "" {
		return ctx.API.Auth.VerifyEmailOTP(ctx.Context(), c.Email, c.OTP)
	}
	return ctx.API.Auth.VerifyOTP(ctx.Context(), c.Phone, c.OTP)
}

func checkOTP(s string) error {
	if !otpPattern.MatchString(s) {
		return errors.New("code must be exactly 6 digits")
	}
	return nil
}
