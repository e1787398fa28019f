package domain

import (
	"errors"
	"fmt"
	"time"
)

// ActivityStatus is the lifecycle state of a project activity.
type ActivityStatus string

const (
	StatusPending    ActivityStatus = "pending"
	StatusCompleted  ActivityStatus = "completed"
	StatusInProgress ActivityStatus = "in-progress"
	StatusCancelled  ActivityStatus = "cancelled"
)

var ErrInvalidStatus = errors.New("invalid activity status")

// ParseActivityStatus converts a raw string into an ActivityStatus.
func ParseActivityStatus(s string) (ActivityStatus, error) {
	switch ActivityStatus(s) {
	case StatusPending, StatusCompleted, StatusInProgress, StatusCancelled:
		return ActivityStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrForbidden        = errors.New("not authorized to access this activity")
)

// ProjectActivity is a daily work submission. It is visible and mutable
// only by the user who created it.
type ProjectActivity struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	UserID       string         `json:"user_id" bson:"user_id"`
	ActivityName string         `json:"activityName" bson:"activity_name"`
	Description  string         `json:"description,omitempty" bson:"description,omitempty"`
	Status       ActivityStatus `json:"status" bson:"status"`
	Project      string         `json:"project,omitempty" bson:"project,omitempty"`
	Location     string         `json:"location,omitempty" bson:"location,omitempty"`
	Date         time.Time      `json:"date" bson:"date"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether the activity belongs to the given user.
func (a *ProjectActivity) OwnedBy(userID string) bool {
	return a.UserID == userID
}
