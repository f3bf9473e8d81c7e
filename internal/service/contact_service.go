package service

import (
	"errors"
	"strings"

	"github.com/solarmach/internal/db"
	"github.com/solarmach/internal/mailer"
	"gorm.io/gorm"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
)

// Notifier is the outbound notification seam. Implementations report
// delivery success but never fail the caller.
type Notifier interface {
	Send(sub mailer.Submission) bool
}

// ContactInput is one raw form submission before validation.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Message  string
}

// ContactService runs the contact submission workflow: validate the
// input, attempt notification, then persist the message together with
// the delivery outcome.
type ContactService struct {
	db       *gorm.DB
	notifier Notifier
}

// NewContactService returns a new ContactService instance.
func NewContactService(gdb *gorm.DB, notifier Notifier) *ContactService {
	return &ContactService{db: gdb, notifier: notifier}
}

// Submit validates and stores one submission. A validation error means
// nothing was persisted or sent. The notification result is captured in
// the stored record; only a storage error fails the submission.
func (s *ContactService) Submit(input ContactInput) (*db.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if message == "" {
		return nil, ErrMessageRequired
	}

	sub := mailer.Submission{
		Name:     name,
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Interest: strings.TrimSpace(input.Interest),
		Message:  message,
	}

	notified := false
	if s.notifier != nil {
		notified = s.notifier.Send(sub)
	}

	record := &db.ContactMessage{
		Name:     sub.Name,
		Email:    sub.Email,
		Phone:    sub.Phone,
		Interest: sub.Interest,
		Message:  sub.Message,
		Notified: notified,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// IsValidationError reports whether err is a rejected-input error
// rather than a storage failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrMessageRequired)
}
