package db

import "time"

// ContactMessage is one contact-form submission. Rows are append-only:
// nothing in the application updates or deletes them, and Notified
// records the outcome of the single delivery attempt made at submit
// time.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Interest  string    `gorm:"size:80" json:"interest"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the storage table name.
func (ContactMessage) TableName() string {
	return "contact_messages"
}
