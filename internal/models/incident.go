package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - классификация инцидента
type IncidentType string

const (
	IncidentTrafficStop    IncidentType = "traffic_stop"
	IncidentPedestrianStop IncidentType = "pedestrian_stop"
	IncidentCheckpoint     IncidentType = "checkpoint"
	IncidentSearch         IncidentType = "search"
	IncidentArrest         IncidentType = "arrest"
	IncidentUseOfForce     IncidentType = "use_of_force"
	IncidentHarassment     IncidentType = "harassment"
	IncidentOther          IncidentType = "other"
)

// Outcome - итог инцидента
type Outcome string

const (
	OutcomeNone     Outcome = "none"
	OutcomeWarning  Outcome = "warning"
	OutcomeCitation Outcome = "citation"
	OutcomeArrest   Outcome = "arrest"
	OutcomeReleased Outcome = "released"
	OutcomeOther    Outcome = "other"
)

// VerificationStatus - статус проверки сообществом
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationConfirmed  VerificationStatus = "confirmed"
	VerificationDisputed   VerificationStatus = "disputed"
)

// Incident - неизменяемая запись об инциденте. После вставки ни одно поле не меняется.
type Incident struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Zip       string    `json:"zip,omitempty"`

	BadgeNumber string `json:"badge_number,omitempty"`
	OfficerName string `json:"officer_name,omitempty"`
	Department  string `json:"department,omitempty"`

	IncidentType  IncidentType `json:"incident_type"`
	Tags          []string     `json:"tags,omitempty"`
	Confidence    float64      `json:"confidence"`
	Description   string       `json:"description,omitempty"`
	Outcome       Outcome      `json:"outcome"`
	OfficerRating *int         `json:"officer_rating,omitempty"`

	ConfirmCount       int                `json:"confirm_count"`
	DisputeCount       int                `json:"dispute_count"`
	VerificationStatus VerificationStatus `json:"verification_status"`

	HasPhoto bool `json:"has_photo"`
	HasVideo bool `json:"has_video"`
	HasAudio bool `json:"has_audio"`

	// DeviceTokenHash используется только для ограничения частоты записи и никогда не отдается наружу
	DeviceTokenHash string `json:"-"`

	IncidentAt time.Time `json:"incident_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasOfficerRef сообщает, участвует ли инцидент в агрегате по офицеру
func (i *Incident) HasOfficerRef() bool {
	return i.BadgeNumber != "" && i.Department != ""
}

// IncidentReport - входные данные от клиента для создания инцидента
type IncidentReport struct {
	Latitude      float64      `validate:"latitude"`
	Longitude     float64      `validate:"longitude"`
	City          string       `validate:"max=120"`
	State         string       `validate:"max=64"`
	Zip           string       `validate:"max=16"`
	BadgeNumber   string       `validate:"max=32"`
	OfficerName   string       `validate:"max=120"`
	Department    string       `validate:"max=160"`
	IncidentType  IncidentType `validate:"required,oneof=traffic_stop pedestrian_stop checkpoint search arrest use_of_force harassment other"`
	Tags          []string     `validate:"max=20,dive,min=1,max=40"`
	Confidence    float64      `validate:"gte=0,lte=1"`
	Description   string       `validate:"max=4000"`
	Outcome       Outcome      `validate:"omitempty,oneof=none warning citation arrest released other"`
	OfficerRating *int         `validate:"omitempty,gte=1,lte=5"`
	HasPhoto      bool
	HasVideo      bool
	HasAudio      bool
	IncidentAt    time.Time
	DeviceToken   string `validate:"required"`
}
