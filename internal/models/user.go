package models

import "github.com/julianstephens/hrportal/internal/constants"

// User is the authenticated employee record returned by OTP verification
// and persisted in the session.
type User struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email"`
	Contact        string `json:"contact,omitempty"`
	Role           string `json:"role"`
	Status         string `json:"status,omitempty"`
	Location       string `json:"location,omitempty"`
	TeamID         *int   `json:"team_id"`
	TeamLeadName   string `json:"team_lead_name,omitempty"`
	IsManager      bool   `json:"is_manager"`
	IsAdmin        bool   `json:"is_admin"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// Identifier returns the id the backend expects in employee-scoped paths.
// The employee code wins over the row id when both are present.
func (u User) Identifier() string {
	if u.EmployeeID != "" {
		return u.EmployeeID
	}
	return u.ID
}

// DisplayName joins first and last name, falling back to Name
func (u User) DisplayName() string {
	if u.FirstName == "" {
		return u.Name
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CanApprove reports whether the user sees team approval queues. Advisory only.
func (u User) CanApprove() bool {
	return u.IsManager || u.IsAdmin || u.Role == constants.RoleManager || u.Role == constants.RoleAdministrator
}

// Profile is the extended employee profile
type Profile struct {
	User
	Qualification string `json:"qualification,omitempty"`
	Aadhar        string `json:"aadhar,omitempty"`
	JoiningDate   string `json:"joining_date,omitempty"`
	Designation   string `json:"designation,omitempty"`
	TeamName      string `json:"team_name,omitempty"`
}

// OTPRequest starts a phone or email OTP login
type OTPRequest struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// OTPVerifyRequest completes a phone or email OTP login
type OTPVerifyRequest struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	OTP   string `json:"otp"`
}

// LoginResponse is returned by successful OTP verification
type LoginResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// AccountStatusRequest carries an activation or deactivation attempt
type AccountStatusRequest struct {
	Phone  string `json:"phone"`
	OTP    string `json:"otp,omitempty"`
	Action string `json:"action"`
}

// MessageResponse is the generic {message} acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id,omitempty"`
}
