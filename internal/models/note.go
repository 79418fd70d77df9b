package models

import "time"

// GlobalNote is a free-form note that belongs to a user rather than a hive
type GlobalNote struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:userid;size:64;not null;index" json:"userid"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"column:created" json:"created"`
	UpdatedAt time.Time `gorm:"column:modified" json:"modified"`
}

// ActivityCounter counts tracked API calls per user
type ActivityCounter struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:userid;size:64;not null;uniqueIndex" json:"userid"`
	Activity  int64     `gorm:"not null;default:0" json:"activity"`
	CreatedAt time.Time `gorm:"column:created" json:"created"`
	UpdatedAt time.Time `gorm:"column:modified" json:"modified"`
}

// TableName overrides the table name for GlobalNote
func (GlobalNote) TableName() string {
	return "global_notes"
}

// TableName overrides the table name for ActivityCounter
func (ActivityCounter) TableName() string {
	return "activity_counters"
}

// All returns every model managed by auto-migration, parents first
func All() []interface{} {
	return []interface{}{
		&Hive{},
		&Observation{},
		&GlobalNote{},
		&ActivityCounter{},
	}
}
