package constants

const (
	// General Settings
	SettingShiftStart        = "shift_start"
	SettingShiftEnd          = "shift_end"
	SettingLateGraceMin      = "late_grace_min"
	SettingEarlyThresholdMin = "early_threshold_min"
	SettingFullDayMin        = "full_day_min"
	SettingTimezone          = "timezone"
	SettingSessionBackend    = "session_backend"
	SettingBalanceMode       = "balance_mode"

	// Poll Settings
	SettingPollRequestsSec       = "poll_requests_sec"
	SettingPollRegularizationSec = "poll_regularization_sec"
	SettingPollDashboardSec      = "poll_dashboard_sec"

	// Session backends
	SessionBackendSQLite  = "sqlite"
	SessionBackendKeyring = "keyring"

	// Balance modes
	BalanceModeNet   = "net"
	BalanceModeGross = "gross"

	// Default Settings Values
	DefaultTimezone              = "Local" // Use system local timezone by default
	DefaultSessionBackend        = SessionBackendSQLite
	DefaultBalanceMode           = BalanceModeNet
	DefaultPollRequestsSec       = 5
	DefaultPollRegularizationSec = 15
	DefaultPollDashboardSec      = 30
)
