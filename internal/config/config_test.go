package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LISTEN_ADDR", "DATABASE_PATH", "SESSION_SECRET", "GIN_MODE",
		"MAIL_SERVER", "MAIL_PORT", "MAIL_USERNAME", "MAIL_PASSWORD", "MAIL_RECIPIENT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "solarmach.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("expected default gin mode release, got %q", cfg.GinMode)
	}
	if cfg.Mail.Port != "465" {
		t.Fatalf("expected default mail port 465, got %q", cfg.Mail.Port)
	}
	if cfg.Mail.Configured() {
		t.Fatalf("mail must not be configured without credentials")
	}
}

func TestLoadHonoursEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_PATH", " /tmp/solar/test.db ")
	t.Setenv("MAIL_SERVER", "smtp.example.com")
	t.Setenv("MAIL_PORT", "465")
	t.Setenv("MAIL_USERNAME", "mailer@example.com")
	t.Setenv("MAIL_PASSWORD", "hunter2")
	t.Setenv("MAIL_RECIPIENT", "sales@example.com")

	cfg := Load()

	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected listen addr derived from PORT, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "/tmp/solar/test.db" {
		t.Fatalf("expected trimmed database path, got %q", cfg.DatabasePath)
	}
	if !cfg.Mail.Configured() {
		t.Fatalf("expected mail to be configured")
	}
}

func TestMailConfiguredRequiresEveryField(t *testing.T) {
	full := Mail{
		Server:    "smtp.example.com",
		Port:      "465",
		Username:  "mailer@example.com",
		Password:  "hunter2",
		Recipient: "sales@example.com",
	}
	if !full.Configured() {
		t.Fatalf("expected full credentials to be configured")
	}

	blank := func(mutate func(*Mail)) Mail {
		m := full
		mutate(&m)
		return m
	}

	cases := []Mail{
		blank(func(m *Mail) { m.Server = "" }),
		blank(func(m *Mail) { m.Port = "" }),
		blank(func(m *Mail) { m.Username = "" }),
		blank(func(m *Mail) { m.Password = "" }),
		blank(func(m *Mail) { m.Recipient = "" }),
	}
	for i, m := range cases {
		if m.Configured() {
			t.Fatalf("case %d: expected missing field to disable mail", i)
		}
	}
}
