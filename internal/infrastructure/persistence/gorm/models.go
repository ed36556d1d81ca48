// Package gorm provides GORM model definitions and repository
// implementations for the catalog and session/event collaborators
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MenuItemModel represents the GORM model for catalog items
type MenuItemModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	VenueID     uuid.UUID `gorm:"type:char(36);not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null;default:0"`
	Category    string    `gorm:"type:varchar(100);index"`
	Kind        string    `gorm:"type:varchar(10);not null;index"`

	Tags StringSlice `gorm:"type:json"`

	Popularity  float64 `gorm:"default:0"`
	Push        bool    `gorm:"default:false"`
	Unavailable bool    `gorm:"default:false"`
	OutOfStock  bool    `gorm:"column:out_of_stock;default:false"`

	// Position preserves catalog insertion order within a venue
	Position int `gorm:"not null;default:0;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// RecommendationEventModel represents one persisted recommendation tuple
type RecommendationEventModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	SessionID uuid.UUID `gorm:"type:char(36);not null;index"`
	VenueID   uuid.UUID `gorm:"type:char(36);not null;index"`
	ItemID    uuid.UUID `gorm:"type:char(36);not null"`
	Rank      int       `gorm:"not null"`
	Score     float64   `gorm:"not null"`
	Upsell    bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides the table name
func (RecommendationEventModel) TableName() string {
	return "recommendation_events"
}

// StringSlice is a string slice stored as JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}
