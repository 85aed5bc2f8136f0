package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// UpdateConfigRequest запрос на изменение конфигурации.
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	ActorID          int64    `json:"-"`
	AuditRequired    *bool    `json:"auditRequired,omitempty"`
	MaxDurationHours *float64 `json:"maxDurationHours,omitempty"`
	Reason           string   `json:"reason"`
}

// ToDomainPatch конвертирует запрос в domain патч
func (r *UpdateConfigRequest) ToDomainPatch() domain.FacilityConfigPatch {
	return domain.FacilityConfigPatch{
		AuditRequired:    r.AuditRequired,
		MaxDurationHours: r.MaxDurationHours,
	}
}

// ConfigResponse ответ с конфигурацией
type ConfigResponse struct {
	AuditRequired    bool       `json:"auditRequired"`
	MaxDurationHours float64    `json:"maxDurationHours"`
	UpdatedBy        *int64     `json:"updatedBy,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg domain.FacilityConfig) *ConfigResponse {
	resp := &ConfigResponse{
		AuditRequired:    cfg.AuditRequired,
		MaxDurationHours: cfg.MaxDurationHours,
		UpdatedBy:        cfg.UpdatedBy,
	}
	if !cfg.UpdatedAt.IsZero() {
		updatedAt := cfg.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
