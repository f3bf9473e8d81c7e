package db

import (
	"path/filepath"
	"testing"
)

func TestInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "solarmach.db")

	if err := Init(path); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("second init failed: %v", err)
	}

	if !DB.Migrator().HasTable(&ContactMessage{}) {
		t.Fatalf("expected contact_messages table to exist")
	}

	msg := ContactMessage{Name: "Alice", Email: "a@example.com", Message: "hello"}
	if err := DB.Create(&msg).Error; err != nil {
		t.Fatalf("insert after re-init failed: %v", err)
	}
	if msg.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if msg.CreatedAt.IsZero() {
		t.Fatalf("expected assigned creation timestamp")
	}
}

func TestInitCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "site.db")

	if err := Init(path); err != nil {
		t.Fatalf("init with nested path failed: %v", err)
	}

	var count int64
	if err := DB.Model(&ContactMessage{}).Count(&count).Error; err != nil {
		t.Fatalf("count on fresh database failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d rows", count)
	}
}
