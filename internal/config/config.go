package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/logger"
)

// Environment variable names
const (
	EnvAPIURL     = "HRPORTAL_API_URL"
	EnvDataDir    = "HRPORTAL_DATA_DIR"
	EnvGeocodeURL = "HRPORTAL_GEOCODE_URL"
	EnvTimezone   = "HRPORTAL_TIMEZONE"
	EnvLatitude   = "HRPORTAL_LAT"
	EnvLongitude  = "HRPORTAL_LON"
	EnvDebug      = "HRPORTAL_DEBUG"
)

// Config is the process configuration resolved from .env, the environment and flags.
type Config struct {
	APIURL     string
	DataDir    string
	GeocodeURL string
	Timezone   string
	Debug      bool

	// Fixed coordinates used as the device position. Nil when unset.
	Latitude  *float64
	Longitude *float64
}

// Load reads the given dotenv files (".env" when none are given) and then
// the process environment. Missing dotenv files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("No .env file loaded, using process environment", "error", err)
	}

	cfg := &Config{
		APIURL:     strings.TrimRight(getEnv(EnvAPIURL, constants.DefaultAPIURL), "/"),
		GeocodeURL: strings.TrimRight(getEnv(EnvGeocodeURL, constants.DefaultGeocodeURL), "/"),
		Timezone:   getEnv(EnvTimezone, constants.DefaultTimezone),
		Debug:      parseBool(os.Getenv(EnvDebug)),
	}

	dataDir, err := ExpandPath(getEnv(EnvDataDir, constants.DefaultDataDir))
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dataDir

	lat, err := parseCoordinate(EnvLatitude, -90, 90)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate(EnvLongitude, -180, 180)
	if err != nil {
		return nil, err
	}
	if (lat == nil) != (lon == nil) {
		return nil, fmt.Errorf("%s and %s must be set together", EnvLatitude, EnvLongitude)
	}
	cfg.Latitude, cfg.Longitude = lat, lon

	return cfg, nil
}

// DBPath returns the SQLite database path inside the data directory
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, constants.DefaultDBFile)
}

// HasFixedPosition reports whether device coordinates were configured
func (c *Config) HasFixedPosition() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// ExpandPath resolves a leading "~" to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

func parseCoordinate(key string, min, max float64) (*float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if v < min || v > max {
		return nil, fmt.Errorf("%s %v is outside range [%v, %v]", key, v, min, max)
	}
	return &v, nil
}
