package domain

import (
	"time"

	"github.com/google/uuid"
)

// Startup is a voteable entry. CrackedCount and CookedCount are
// materialized tallies maintained alongside the vote rows.
type Startup struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Category     string    `json:"category,omitempty"`
	CrackedCount int64     `json:"cracked_count"`
	CookedCount  int64     `json:"cooked_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Startup) TotalVotes() int64 {
	return s.CrackedCount + s.CookedCount
}
