package models

import "time"

// ActivityLog is the append-only audit trail of admin mutations.
type ActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Action      string    `gorm:"size:50;not null;index" json:"action"`
	EntityKind  string    `gorm:"size:50;index" json:"entityKind"`
	EntityID    uint      `json:"entityId"`
	EntityTitle string    `gorm:"size:255" json:"entityTitle"`
	ActorID     uint      `gorm:"index" json:"actorId"`
	ActorName   string    `gorm:"size:255" json:"actorName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
