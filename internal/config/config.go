package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the server needs at startup.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	Mail          Mail
}

// Mail carries the outbound SMTP credentials. Notification is disabled
// unless every field is set.
type Mail struct {
	Server    string
	Port      string
	Username  string
	Password  string
	Recipient string
}

// Configured reports whether all transport credentials are present.
func (m Mail) Configured() bool {
	return m.Server != "" && m.Port != "" && m.Username != "" && m.Password != "" && m.Recipient != ""
}

// Load reads the application configuration from the environment,
// falling back to safe defaults for anything unset. A .env file in the
// working directory is honoured when present.
func Load() AppConfig {
	godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "solarmach.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "solarmach-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	mailPort := strings.TrimSpace(os.Getenv("MAIL_PORT"))
	if mailPort == "" {
		mailPort = "465"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,
		Mail: Mail{
			Server:    strings.TrimSpace(os.Getenv("MAIL_SERVER")),
			Port:      mailPort,
			Username:  strings.TrimSpace(os.Getenv("MAIL_USERNAME")),
			Password:  strings.TrimSpace(os.Getenv("MAIL_PASSWORD")),
			Recipient: strings.TrimSpace(os.Getenv("MAIL_RECIPIENT")),
		},
	}
}
