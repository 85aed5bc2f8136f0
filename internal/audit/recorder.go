package audit

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FacilityService/internal/integrations/auditservice"
	"github.com/m04kA/SMC-FacilityService/pkg/clock"
)

// Module имя модуля в событиях аудита
const Module = "facility"

// Типы объектов аудита
const (
	TargetBuilding    = "building"
	TargetRoom        = "room"
	TargetReservation = "reservation"
	TargetBan         = "ban"
	TargetConfig      = "facility_config"
)

// Действия аудита
const (
	ActionBuildingCreate = "building.create"
	ActionBuildingUpdate = "building.update"
	ActionBuildingToggle = "building.toggle"
	ActionBuildingDelete = "building.delete"
	ActionRoomCreate     = "room.create"
	ActionRoomUpdate     = "room.update"
	ActionRoomToggle     = "room.toggle"
	ActionRoomDelete     = "room.delete"

	ActionConfigUpdate = "config.update"

	ActionBanCreate = "ban.create"
	ActionBanRevoke = "ban.revoke"
	ActionBanExtend = "ban.extend"

	ActionReservationCreate  = "reservation.create"
	ActionReservationEdit    = "reservation.edit"
	ActionReservationApprove = "reservation.approve"
	ActionReservationReject  = "reservation.reject"
	ActionReservationCancel  = "reservation.cancel"
)

// Diff изменения полей: field -> {"before": ..., "after": ...}
type Diff map[string]interface{}

// Change добавляет изменение поля, если значения различаются
func (d Diff) Change(field string, before, after interface{}) Diff {
	if before == after {
		return d
	}
	d[field] = map[string]interface{}{"before": before, "after": after}
	return d
}

// Entry запись аудита
type Entry struct {
	ActorID    int64
	Action     string
	TargetType string
	TargetID   int64
	Success    bool
	Reason     *string
	Diff       Diff
}

// Recorder пишет события аудита в Sink.
// Ошибки записи только логируются и никогда не возвращаются вызывающему
type Recorder struct {
	sink  Sink
	clock clock.Clock
	log   Logger
}

// NewRecorder создает новый Recorder
func NewRecorder(sink Sink, clk clock.Clock, log Logger) *Recorder {
	return &Recorder{sink: sink, clock: clk, log: log}
}

// Record отправляет запись. Отмена контекста запроса не прерывает отправку
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	event := auditservice.Event{
		ID:         uuid.NewString(),
		Module:     Module,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Success:    entry.Success,
		Reason:     entry.Reason,
		OccurredAt: r.clock.Now(),
	}
	if len(entry.Diff) > 0 {
		event.Diff = entry.Diff
	}

	if err := r.sink.Record(context.WithoutCancel(ctx), event); err != nil {
		r.log.Warn("Record: failed to write audit event action=%s target=%s/%d actor=%d: %v",
			entry.Action, entry.TargetType, entry.TargetID, entry.ActorID, err)
	}
}
