package auditservice

import "time"

// Event событие аудита в формате AuditService
type Event struct {
	ID         string                 `json:"id"`
	Module     string                 `json:"module"`
	ActorID    int64                  `json:"actor_id"`
	Action     string                 `json:"action"`
	TargetType string                 `json:"target_type"`
	TargetID   int64                  `json:"target_id"`
	Success    bool                   `json:"success"`
	Reason     *string                `json:"reason,omitempty"`
	Diff       map[string]interface{} `json:"diff,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
