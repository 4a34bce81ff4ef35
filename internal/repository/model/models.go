package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	MobileToken  *string   `gorm:"size:512"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type Room struct {
	GUID         string        `gorm:"size:32;primaryKey"`
	Name         string        `gorm:"size:255;not null"`
	HostName     string        `gorm:"size:255;index;not null"`
	Limit        int           `gorm:"column:participant_limit;not null"`
	CreatedAt    time.Time     `gorm:"not null"`
	Participants []Participant `gorm:"foreignKey:RoomGUID;constraint:OnDelete:CASCADE"`
}

type Participant struct {
	RoomGUID string `gorm:"size:32;primaryKey"`
	Username string `gorm:"size:255;primaryKey;index"`
	Position int    `gorm:"not null"`
}
