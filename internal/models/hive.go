package models

import "time"

// Hive is a beehive owned by a single user
type Hive struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:userid;size:64;not null;index:idx_hive_user_number,priority:1" json:"userid"`
	Number    string    `gorm:"size:16;not null;index:idx_hive_user_number,priority:2" json:"number"`
	Colour    string    `gorm:"size:16;not null" json:"colour"`
	Place     string    `gorm:"size:128;not null" json:"place"`
	Frames    *int      `json:"frames"`
	Archived  bool      `gorm:"not null;default:false" json:"archived"`
	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"column:created" json:"created"`
	UpdatedAt time.Time `gorm:"column:modified" json:"modified"`
}

// Observation is one inspection of a hive
type Observation struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	HiveID    uint64    `gorm:"not null;index:idx_observation_hive_date,priority:1" json:"hive.id"`
	Hive      *Hive     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	UserID    string    `gorm:"column:userid;size:64;not null;index" json:"userid"`
	Date      Date      `gorm:"column:observation_date;not null;index:idx_observation_hive_date,priority:2" json:"date"`
	Comment   *string   `gorm:"type:text" json:"comment"`
	Queen     int       `gorm:"not null" json:"queen"`
	Larva     int       `gorm:"not null" json:"larva"`
	Egg       int       `gorm:"not null" json:"egg"`
	Mood      int       `gorm:"not null" json:"mood"`
	Size      int       `gorm:"not null" json:"size"`
	Varroa    int       `gorm:"not null" json:"varroa"`
	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"column:created" json:"created"`
	UpdatedAt time.Time `gorm:"column:modified" json:"modified"`
}

// TableName overrides the table name for Hive
func (Hive) TableName() string {
	return "hives"
}

// TableName overrides the table name for Observation
func (Observation) TableName() string {
	return "observations"
}
