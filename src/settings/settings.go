package settings

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

// Response formats understood by the server.
const (
	FormatJSON = "json"
	FormatBSON = "bson"
)

type Arguments struct {
	// the host name or IP address to listen on
	Host string `env:"PBC_HOST"`

	// the port number to listen on
	Port int `env:"PBC_PORT"`

	// Directory for log files. Empty logs to stdout only.
	LogDir string `env:"PBC_LOG_DIR"`

	// Strongly verbose logging
	Verbose bool `env:"PBC_VERBOSE"`

	Debug bool `env:"PBC_DEBUG"`

	// Print log messages to stdout as well as the log file
	PrintToScreen bool `env:"PBC_PRINT"`

	AuthEnabled bool `env:"PBC_AUTH"` // Enable authentication

	// Initial user when authentication is enabled. Environment only.
	AdminUser     string `env:"PBC_ADMIN_USER"`
	AdminPassword string `env:"PBC_ADMIN_PASSWORD"`

	// Name and player count of the playbook created at startup
	PlaybookName string `env:"PBC_PLAYBOOK_NAME"`
	PlayerNumber int    `env:"PBC_PLAYER_NUMBER"`

	// json or bson
	ResponseFormat string `env:"PBC_RESPONSE_FORMAT"`

	Version string `env:"PBC_VERSION"`

	// Connections with no traffic for this long are closed. Zero disables.
	IdleTimeout time.Duration `env:"PBC_IDLE_TIMEOUT"`
}

// Defaults returns the settings used when neither flags nor environment say otherwise.
func Defaults() Arguments {
	return Arguments{
		Host:           "127.0.0.1",
		Port:           1776,
		LogDir:         "",
		Verbose:        false,
		Debug:          false,
		PrintToScreen:  true,
		AuthEnabled:    false,
		PlaybookName:   "New Playbook",
		PlayerNumber:   5,
		ResponseFormat: FormatJSON,
		Version:        "0.1.0",
		IdleTimeout:    5 * time.Minute,
	}
}

var (
	instance *Arguments
	mu       sync.Mutex
)

// GetSettings returns the process-wide settings, creating them with
// Defaults on first use.
func GetSettings() *Arguments {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		defaults := Defaults()
		instance = &defaults
	}
	return instance
}

// Reset restores the process-wide settings to Defaults. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}

// LoadEnv overlays any PBC_* environment variables onto args. Fields whose
// variable is unset keep their current value.
func LoadEnv(args *Arguments) error {
	if err := env.Parse(args); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate returns an error describing the first invalid setting.
func Validate(args *Arguments) error {
	if args.Port < 1 || args.Port > 65535 {
		return fmt.Errorf("invalid port number: %d (must be between 1 and 65535)", args.Port)
	}

	if args.PlayerNumber < 1 {
		return fmt.Errorf("invalid player number: %d (must be positive)", args.PlayerNumber)
	}

	validFormats := map[string]bool{FormatJSON: true, FormatBSON: true}
	if _, valid := validFormats[args.ResponseFormat]; !valid {
		return fmt.Errorf("invalid response format: %s (must be 'json' or 'bson')", args.ResponseFormat)
	}

	if args.AuthEnabled && (args.AdminUser == "" || args.AdminPassword == "") {
		return fmt.Errorf("authentication enabled but PBC_ADMIN_USER or PBC_ADMIN_PASSWORD is empty")
	}

	if args.IdleTimeout < 0 {
		return fmt.Errorf("invalid idle timeout: %s", args.IdleTimeout)
	}

	return nil
}
