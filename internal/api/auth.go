package api

import (
	"context"
	"errors"

	"github.com/julianstephens/hrportal/internal/models"
)

// AuthService covers OTP login, profiles and account status
type AuthService struct{ c *Client }

// SendOTP texts a login code to a phone number
func (s *AuthService) SendOTP(ctx context.Context, phone string) error {
	return s.c.post(ctx, "/auth/send-otp/", models.OTPRequest{Phone: phone}, nil)
}

// VerifyOTP exchanges a phone code for the user record
func (s *AuthService) VerifyOTP(ctx context.Context, phone, otp string) (*models.User, error) {
	var resp models.LoginResponse
	if err := s.c.post(ctx, "/auth/verify-otp/", models.OTPVerifyRequest{Phone: phone, OTP: otp}, &resp); err != nil {
		return nil, err
	}
	return loginUser(resp)
}

// SendEmailOTP mails a login code
func (s *AuthService) SendEmailOTP(ctx context.Context, email string) error {
	return s.c.post(ctx, "/auth/send-email-otp/", models.OTPRequest{Email: email}, nil)
}

// VerifyEmailOTP exchanges an email code for the user record
func (s *AuthService) VerifyEmailOTP(ctx context.Context, email, otp string) (*models.User, error) {
	var resp models.LoginResponse
	if err := s.c.post(ctx, "/auth/verify-email-otp/", models.OTPVerifyRequest{Email: email, OTP: otp}, &resp); err != nil {
		return nil, err
	}
	return loginUser(resp)
}

func loginUser(resp models.LoginResponse) (*models.User, error) {
	if resp.User.ID == "" && resp.User.EmployeeID == "" {
		msg := resp.Message
		if msg == "" {
			msg = "login response did not include a user"
		}
		return nil, errors.New(msg)
	}
	u := resp.User
	return &u, nil
}

// Profile fetches an employee's profile
func (s *AuthService) Profile(ctx context.Context, employeeID string) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.get(ctx, "/auth/profile/"+seg(employeeID)+"/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SendAccountStatusOTP starts an activate/deactivate request
func (s *AuthService) SendAccountStatusOTP(ctx context.Context, phone, action string) error {
	return s.c.post(ctx, "/auth/account-status/send-otp/", models.AccountStatusRequest{Phone: phone, Action: action}, nil)
}

// UpdateAccountStatus confirms an activate/deactivate request with its OTP
func (s *AuthService) UpdateAccountStatus(ctx context.Context, phone, otp, action string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	req := models.AccountStatusRequest{Phone: phone, OTP: otp, Action: action}
	if err := s.c.post(ctx, "/auth/account-status/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
