package calendar

import "time"

// Holiday is an explicitly listed shop-wide non-working day. The weekly
// day off is a rule, not a row; it is applied by the scheduling core on
// top of whatever this table holds.
type Holiday struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	Day       time.Time `gorm:"not null;uniqueIndex" json:"day"`
	Name      string    `gorm:"size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the Holiday model.
func (Holiday) TableName() string {
	return "holidays"
}

// Leave is one mechanic's approved absence on a specific day. Distinct
// from a holiday: it blocks only that mechanic.
type Leave struct {
	ID         string    `gorm:"primarykey;size:36" json:"id"`
	MechanicID string    `gorm:"size:64;not null;index" json:"mechanic_id"`
	Day        time.Time `gorm:"not null;index" json:"day"`
	Reason     string    `gorm:"size:200" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for the Leave model.
func (Leave) TableName() string {
	return "leaves"
}
