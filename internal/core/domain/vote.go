package domain

import (
	"time"

	"github.com/google/uuid"
)

// Choice is one of the two mutually exclusive vote options.
type Choice string

const (
	ChoiceCracked Choice = "CRACKED"
	ChoiceCooked  Choice = "COOKED"
)

// ParseChoice validates a raw choice string.
func ParseChoice(s string) (Choice, error) {
	switch Choice(s) {
	case ChoiceCracked, ChoiceCooked:
		return Choice(s), nil
	}
	return "", ErrInvalidChoice
}

// Vote is a user's current choice for one startup. StartupName is a weak
// reference (name string, no foreign key). At most one row exists per
// (StartupName, UserID) pair; a later vote overwrites choice and CreatedAt
// in place, keeping the same ID.
type Vote struct {
	ID          uuid.UUID `json:"id"`
	StartupName string    `json:"startup_name"`
	UserID      uuid.UUID `json:"user_id"`
	Choice      Choice    `json:"choice"`
	CreatedAt   time.Time `json:"created_at"`
}
