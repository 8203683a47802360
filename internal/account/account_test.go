package account

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/julianstephens/hrportal/internal/api"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/models"
)

type fakeAPI struct {
	sendErr   error
	updateErr error
	sent      int
	updated   int
}

func (f *fakeAPI) SendAccountStatusOTP(context.Context, string, string) error {
	f.sent++
	return f.sendErr
}

func (f *fakeAPI) UpdateAccountStatus(context.Context, string, string, string) (*models.MessageResponse, error) {
	f.updated++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.MessageResponse{Message: "Account deactivated"}, nil
}

func TestHappyPath(t *testing.T) {
	fake := &fakeAPI{}
	var closedWith string
	f := NewFlow(fake, models.User{IsAdmin: true}, func(msg string) { closedWith = msg })

	if err := f.SendOTP(context.Background(), "9876543210", constants.AccountDeactivate); err != nil {
		t.Fatalf("SendOTP() error = %v", err)
	}
	if f.State() != OTPSent || f.Mobile() != "9876543210" {
		t.Fatalf("after SendOTP state = %s mobile = %q", f.State(), f.Mobile())
	}

	msg, err := f.Verify(context.Background(), "123456")
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if f.State() != Closed || msg != "Account deactivated" || closedWith != msg {
		t.Errorf("state = %s, msg = %q, closed with %q", f.State(), msg, closedWith)
	}
}

func TestInputChecks(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		action string
		want   error
	}{
		{"short mobile", "98765", constants.AccountActivate, ErrInvalidMobile},
		{"letters", "98765abcde", constants.AccountActivate, ErrInvalidMobile},
		{"eleven digits", "98765432101", constants.AccountActivate, ErrInvalidMobile},
		{"unknown action", "9876543210", "delete", ErrInvalidAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAPI{}
			f := NewFlow(fake, models.User{}, nil)
			if err := f.SendOTP(context.Background(), tt.mobile, tt.action); !errors.Is(err, tt.want) {
				t.Errorf("SendOTP() error = %v, want %v", err, tt.want)
			}
			if fake.sent != 0 || f.State() != CollectingPhone {
				t.Errorf("sent = %d, state = %s", fake.sent, f.State())
			}
		})
	}
}

func TestTransitions(t *testing.T) {
	fake := &fakeAPI{}
	f := NewFlow(fake, models.User{}, nil)

	if _, err := f.Verify(context.Background(), "123456"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Verify before SendOTP error = %v", err)
	}
	if err := f.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Back from CollectingPhone error = %v", err)
	}

	if err := f.SendOTP(context.Background(), "9876543210", constants.AccountActivate); err != nil {
		t.Fatal(err)
	}
	if err := f.SendOTP(context.Background(), "9876543210", constants.AccountActivate); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second SendOTP error = %v", err)
	}
	if _, err := f.Verify(context.Background(), "12ab56"); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("bad OTP error = %v", err)
	}

	if err := f.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if f.State() != CollectingPhone || f.Mobile() != "" {
		t.Errorf("after Back state = %s mobile = %q", f.State(), f.Mobile())
	}
}

func TestVerifyFailureReturnsToOTPSent(t *testing.T) {
	fake := &fakeAPI{updateErr: &api.Error{StatusCode: http.StatusBadRequest, Message: "Invalid OTP"}}
	f := NewFlow(fake, models.User{}, func(string) { t.Error("onClose called on failure") })

	if err := f.SendOTP(context.Background(), "9876543210", constants.AccountActivate); err != nil {
		t.Fatal(err)
	}
	_, err := f.Verify(context.Background(), "000000")
	if err == nil || err.Error() != "Invalid OTP" {
		t.Errorf("Verify() error = %v, want server message", err)
	}
	if f.State() != OTPSent {
		t.Errorf("state = %s, want otp-sent", f.State())
	}
}

func TestServerRejectsNonAdmin(t *testing.T) {
	forbidden := &api.Error{StatusCode: http.StatusForbidden, Message: "Forbidden"}
	fake := &fakeAPI{sendErr: forbidden}
	f := NewFlow(fake, models.User{IsAdmin: false}, nil)

	if f.CanTargetOthers() {
		t.Error("non-admin should not be offered other targets")
	}

	// The client does not block the call; the server does.
	err := f.SendOTP(context.Background(), "9876543210", constants.AccountDeactivate)
	if fake.sent != 1 {
		t.Errorf("request sent %d times, want 1", fake.sent)
	}
	if !errors.Is(err, ErrAdminOnly) {
		t.Errorf("SendOTP() error = %v, want ErrAdminOnly", err)
	}
	if err != nil && err.Error() != MsgAdminOnly {
		t.Errorf("message = %q", err.Error())
	}
	if f.State() != CollectingPhone {
		t.Errorf("state = %s", f.State())
	}
}

func TestStateString(t *testing.T) {
	if Verifying.String() != "verifying" || State(9).String() != "state(9)" {
		t.Error("unexpected State strings")
	}
}

func TestResume(t *testing.T) {
	fake := &fakeAPI{}
	f := NewFlow(fake, models.User{}, nil)

	if err := f.Resume("12345", constants.AccountActivate); !errors.Is(err, ErrInvalidMobile) {
		t.Errorf("Resume() short mobile error = %v", err)
	}
	if err := f.Resume("9876543210", constants.AccountActivate); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if fake.sent != 0 {
		t.Errorf("Resume() sent %d OTPs, want 0", fake.sent)
	}
	if f.State() != OTPSent {
		t.Fatalf("state = %s, want otp-sent", f.State())
	}
	if err := f.Resume("9876543210", constants.AccountActivate); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Resume() error = %v, want ErrInvalidTransition", err)
	}
	if _, err := f.Verify(context.Background(), "654321"); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if fake.updated != 1 || f.State() != Closed {
		t.Errorf("updated = %d, state = %s", fake.updated, f.State())
	}
}
