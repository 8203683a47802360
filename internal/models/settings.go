package models

// Settings represents locally persisted client settings
type Settings struct {
	ShiftStart            string `json:"shift_start"`         // "HH:MM" expected arrival
	ShiftEnd              string `json:"shift_end"`           // "HH:MM" expected departure
	LateGraceMin          int    `json:"late_grace_min"`      // minutes after shift start still counted on time
	EarlyThresholdMin     int    `json:"early_threshold_min"` // minutes before shift start that count as early
	FullDayMin            int    `json:"full_day_min"`        // effective minutes for a full day
	Timezone              string `json:"timezone"`            // IANA name or "Local"
	SessionBackend        string `json:"session_backend"`     // "sqlite" or "keyring"
	BalanceMode           string `json:"balance_mode"`        // "net" or "gross"
	PollRequestsSec       int    `json:"poll_requests_sec"`
	PollRegularizationSec int    `json:"poll_regularization_sec"`
	PollDashboardSec      int    `json:"poll_dashboard_sec"`
}
