package models

import (
	"time"

	"github.com/google/uuid"
)

// NotThereThreshold - минимальное число голосов "нет на месте" для автодеактивации
const NotThereThreshold = 3

// DefaultSightingTTL - время жизни наблюдения по умолчанию
const DefaultSightingTTL = 30 * time.Minute

// SightingType - тип наблюдения
type SightingType string

const (
	SightingCheckpoint SightingType = "checkpoint"
	SightingSpeedTrap  SightingType = "speed_trap"
	SightingPatrol     SightingType = "patrol"
	SightingStationary SightingType = "stationary"
	SightingAccident   SightingType = "accident"
	SightingOther      SightingType = "other"
)

// Sighting - эфемерная запись с ограниченным сроком жизни
type Sighting struct {
	ID              uuid.UUID    `json:"id"`
	Latitude        float64      `json:"latitude"`
	Longitude       float64      `json:"longitude"`
	SightingType    SightingType `json:"sighting_type"`
	Direction       string       `json:"direction,omitempty"`
	VehicleCount    int          `json:"vehicle_count"`
	Description     string       `json:"description,omitempty"`
	ConfirmCount    int          `json:"confirm_count"`
	NotThereCount   int          `json:"not_there_count"`
	IsActive        bool         `json:"is_active"`
	ReportedAt      time.Time    `json:"reported_at"`
	ExpiresAt       time.Time    `json:"expires_at"`
	LastConfirmedAt *time.Time   `json:"last_confirmed_at,omitempty"`

	DeviceTokenHash string `json:"-"`
}

// Visible сообщает, виден ли sighting читателям в момент now
func (s *Sighting) Visible(now time.Time) bool {
	return s.IsActive && s.ExpiresAt.After(now)
}

// ShouldDeactivate - правило голосования сообщества
func ShouldDeactivate(notThere, confirm int) bool {
	return notThere >= NotThereThreshold && notThere > confirm
}

// SightingReport - входные данные от клиента для создания наблюдения
type SightingReport struct {
	Latitude     float64      `validate:"latitude"`
	Longitude    float64      `validate:"longitude"`
	SightingType SightingType `validate:"required,oneof=checkpoint speed_trap patrol stationary accident other"`
	Direction    string       `validate:"omitempty,oneof=N NE E SE S SW W NW"`
	VehicleCount int          `validate:"gte=0,lte=50"`
	Description  string       `validate:"max=500"`
	DeviceToken  string       `validate:"required"`
}

// VoteResult - итог голоса. Sighting заполнен, только если наблюдение видимо после голоса:
// голос не раскрывает неактивные и истекшие записи.
type VoteResult struct {
	Applied  bool
	Sighting *Sighting
}

// VoteKind - вид голоса по наблюдению
type VoteKind string

const (
	VoteConfirm  VoteKind = "confirm"
	VoteNotThere VoteKind = "not_there"
)
