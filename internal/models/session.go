package models

import (
	"time"
)

// Session is the durable row behind the postgres session store. Questions and
// Evaluations hold JSON encoded slices.
type Session struct {
	UserID      string    `gorm:"type:text;primaryKey" json:"user_id"`
	Questions   string    `gorm:"type:text" json:"questions"`
	Evaluations string    `gorm:"type:text" json:"evaluations"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Session) TableName() string {
	return "interview_sessions"
}
