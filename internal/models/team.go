package models

// Team is a named group of employees with a manager
type Team struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Manager     string `json:"manager,omitempty"`
	ManagerName string `json:"manager_name,omitempty"`
	MemberCount int    `json:"member_count"`
}

// TeamInput creates or updates a team
type TeamInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Manager     string `json:"manager,omitempty"`
}

// Member is an employee as listed under a team
type Member struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	Location      string `json:"location"`
	Email         string `json:"email"`
	Contact       string `json:"contact"`
	Aadhar        string `json:"aadhar,omitempty"`
	Qualification string `json:"qualification,omitempty"`
	Teams         []int  `json:"teams,omitempty"`
}

// NewEmployee is the add/edit employee form. Tags mirror the client-side rules.
type NewEmployee struct {
	EmployeeID    string `json:"employee_id" validate:"required"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name"`
	Email         string `json:"email" validate:"required,contains=@"`
	Role          string `json:"role" validate:"required"`
	Contact       string `json:"contact" validate:"required,numeric,len=10"`
	Aadhar        string `json:"aadhar" validate:"required,numeric,len=12"`
	Location      string `json:"location" validate:"required"`
	Qualification string `json:"qualification"`
	Status        string `json:"status,omitempty"`
	TeamID        *int   `json:"team_id,omitempty"`
}

// RegistryEntry is one employee in the global registry
type RegistryEntry struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	TeamName   string `json:"team_name,omitempty"`
}

// TeamStats is the team dashboard summary
type TeamStats struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	OnLeave         int     `json:"onLeave"`
	Remote          int     `json:"remote"`
	AvgWorkingHours float64 `json:"avg_working_hours"`
	OnTimeArrival   float64 `json:"on_time_arrival"`
}

// Designation is a selectable job title
type Designation struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DashboardStats is the administrator dashboard summary
type DashboardStats struct {
	TotalEmployees int      `json:"total_employees"`
	AbsenteesCount int      `json:"absentees_count"`
	Absentees      []Member `json:"absentees"`
}
