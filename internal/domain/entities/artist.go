package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Artist represents an artist whose works are listed by galleries
type Artist struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	Photo     null.String `json:"photo,omitempty"`
	Biography null.String `json:"biography,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
