package account

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"sync"

	"github.com/julianstephens/hrportal/internal/api"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
)

// State is a step of the activation/deactivation flow
type State int

const (
	CollectingPhone State = iota
	OTPSent
	Verifying
	Closed
)

func (s State) String() string {
	switch s {
	case CollectingPhone:
		return "collecting-phone"
	case OTPSent:
		return "otp-sent"
	case Verifying:
		return "verifying"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MsgAdminOnly replaces the server's 403 text
const MsgAdminOnly = "Only administrators can perform this action."

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidMobile     = errors.New("Mobile number must be exactly 10 digits.")
	ErrInvalidOTP        = errors.New("OTP must be exactly 6 digits.")
	ErrInvalidAction     = errors.New("action must be activate or deactivate")
	ErrAdminOnly         = errors.New(MsgAdminOnly)
)

var (
	mobilePattern = regexp.MustCompile(`^\d{10}$`)
	otpPattern    = regexp.MustCompile(`^\d{6}$`)
)

// API is the slice of the REST client the flow drives
type API interface {
	SendAccountStatusOTP(ctx context.Context, phone, action string) error
	UpdateAccountStatus(ctx context.Context, phone, otp, action string) (*models.MessageResponse, error)
}

// Flow is one activation or deactivation attempt. The actor's admin flag
// only decides what the UI offers; the server decides what is allowed.
type Flow struct {
	api     API
	actor   models.User
	onClose func(msg string)

	mu     sync.Mutex
	state  State
	mobile string
	action string
}

// NewFlow starts a flow in CollectingPhone. onClose runs once after a
// confirmed status change and may be nil.
func NewFlow(a API, actor models.User, onClose func(msg string)) *Flow {
	return &Flow{api: a, actor: actor, onClose: onClose}
}

// State returns the current step
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Mobile returns the number the OTP was sent to
func (f *Flow) Mobile() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mobile
}

// CanTargetOthers reports whether the UI should offer changing another
// employee's status. Advisory only.
func (f *Flow) CanTargetOthers() bool {
	return f.actor.IsAdmin
}

// SendOTP asks the server to text a code for action to mobile
func (f *Flow) SendOTP(ctx context.Context, mobile, action string) error {
	if action != constants.AccountActivate && action != constants.AccountDeactivate {
		return ErrInvalidAction
	}
	if !mobilePattern.MatchString(mobile) {
		return ErrInvalidMobile
	}

	f.mu.Lock()
	if f.state != CollectingPhone {
		defer f.mu.Unlock()
		return fmt.Errorf("%w: cannot send an OTP from %s", ErrInvalidTransition, f.state)
	}
	f.mu.Unlock()

	if err := f.api.SendAccountStatusOTP(ctx, mobile, action); err != nil {
		logger.Warn("account status OTP failed", "action", action, "err", err)
		return mapError(err)
	}

	f.mu.Lock()
	f.state, f.mobile, f.action = OTPSent, mobile, action
	f.mu.Unlock()
	return nil
}

// Resume moves to OTPSent for a code that was already delivered to mobile,
// for callers that cannot keep the flow alive between steps.
func (f *Flow) Resume(mobile, action string) error {
	if action != constants.AccountActivate && action != constants.AccountDeactivate {
		return ErrInvalidAction
	}
	if !mobilePattern.MatchString(mobile) {
		return ErrInvalidMobile
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != CollectingPhone {
		return fmt.Errorf("%w: cannot resume from %s", ErrInvalidTransition, f.state)
	}
	f.state, f.mobile, f.action = OTPSent, mobile, action
	return nil
}

// Verify confirms the pending action with otp. A failure returns the flow
// to OTPSent so the code can be retyped.
func (f *Flow) Verify(ctx context.Context, otp string) (string, error) {
	if !otpPattern.MatchString(otp) {
		return "", ErrInvalidOTP
	}

	f.mu.Lock()
	if f.state != OTPSent {
		defer f.mu.Unlock()
		return "", fmt.Errorf("%w: cannot verify from %s", ErrInvalidTransition, f.state)
	}
	f.state = Verifying
	mobile, action := f.mobile, f.action
	f.mu.Unlock()

	resp, err := f.api.UpdateAccountStatus(ctx, mobile, otp, action)

	f.mu.Lock()
	if err != nil {
		f.state = OTPSent
		f.mu.Unlock()
		logger.Warn("account status update failed", "action", action, "err", err)
		return "", mapError(err)
	}
	f.state = Closed
	f.mu.Unlock()

	msg := resp.Message
	if msg == "" {
		msg = fmt.Sprintf("Account %sd successfully.", action)
	}
	logger.Info("account status changed", "action", action)
	if f.onClose != nil {
		f.onClose(msg)
	}
	return msg, nil
}

// Back abandons the sent OTP and returns to phone entry
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != OTPSent {
		return fmt.Errorf("%w: cannot go back from %s", ErrInvalidTransition, f.state)
	}
	f.state = CollectingPhone
	f.mobile, f.action = "", ""
	return nil
}

func mapError(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		return ErrAdminOnly
	}
	return err
}
