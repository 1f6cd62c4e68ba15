package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ProgressStatus string

const (
	StatusPlanned    ProgressStatus = "PLANNED"
	StatusInProgress ProgressStatus = "IN_PROGRESS"
	StatusCompleted  ProgressStatus = "COMPLETED"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "BEGINNER"
	SkillIntermediate SkillLevel = "INTERMEDIATE"
	SkillAdvanced     SkillLevel = "ADVANCED"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityFriends Visibility = "FRIENDS"
)

// StringList stores a slice of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// ProgressUpdate is a visibility-scoped content item. UserID is set once,
// from the resolved caller, when the row is created and never changes.
type ProgressUpdate struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"-" gorm:"index;not null"`
	Title       string         `json:"title"`
	Topic       string         `json:"topic"`
	Description string         `json:"description"`
	Status      ProgressStatus `json:"status" gorm:"size:20"`
	SkillLevel  SkillLevel     `json:"skill_level" gorm:"size:20"`
	Visibility  Visibility     `json:"visibility" gorm:"size:10;default:'PUBLIC';index"`
	Tags        StringList     `json:"tags" gorm:"type:text"`
	Attachments StringList     `json:"attachments" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProgressView is the outward shape of a progress update: it carries the
// owner's display name instead of the account record.
type ProgressView struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Topic       string         `json:"topic"`
	Description string         `json:"description"`
	Status      ProgressStatus `json:"status,omitempty"`
	SkillLevel  SkillLevel     `json:"skill_level,omitempty"`
	Visibility  Visibility     `json:"visibility"`
	Tags        []string       `json:"tags"`
	Attachments []string       `json:"attachments"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	UserName    string         `json:"user_name"`
}

// CreateProgressRequest defines the request body for creating a progress update
type CreateProgressRequest struct {
	Title       string   `json:"title" validate:"required"`
	Topic       string   `json:"topic" validate:"required"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED"`
	SkillLevel  string   `json:"skill_level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Visibility  string   `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE FRIENDS"`
	Tags        []string `json:"tags,omitempty"`
	Attachments []string `json:"attachments,omitempty" validate:"omitempty,dive,url"`
}

// UpdateProgressRequest defines the request body for updating a progress update
type UpdateProgressRequest struct {
	Title       string   `json:"title" validate:"required"`
	Topic       string   `json:"topic" validate:"required"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED"`
	SkillLevel  string   `json:"skill_level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Visibility  string   `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE FRIENDS"`
	Tags        []string `json:"tags,omitempty"`
	Attachments []string `json:"attachments,omitempty" validate:"omitempty,dive,url"`
}
