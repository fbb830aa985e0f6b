package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента. Токен устройства передается в заголовке X-Device-Token.
type CreateIncidentRequest struct {
	Latitude      *float64   `json:"latitude" validate:"required,latitude"`
	Longitude     *float64   `json:"longitude" validate:"required,longitude"`
	City          string     `json:"city,omitempty" validate:"max=120"`
	State         string     `json:"state,omitempty" validate:"max=64"`
	Zip           string     `json:"zip,omitempty" validate:"max=16"`
	BadgeNumber   string     `json:"badge_number,omitempty" validate:"max=32"`
	OfficerName   string     `json:"officer_name,omitempty" validate:"max=120"`
	Department    string     `json:"department,omitempty" validate:"max=160"`
	IncidentType  string     `json:"incident_type" validate:"required"`
	Tags          []string   `json:"tags,omitempty" validate:"max=20"`
	Confidence    float64    `json:"confidence" validate:"gte=0,lte=1"`
	Description   string     `json:"description,omitempty" validate:"max=4000"`
	Outcome       string     `json:"outcome,omitempty"`
	OfficerRating *int       `json:"officer_rating,omitempty"`
	HasPhoto      bool       `json:"has_photo"`
	HasVideo      bool       `json:"has_video"`
	HasAudio      bool       `json:"has_audio"`
	IncidentAt    *time.Time `json:"incident_at,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                 uuid.UUID `json:"id"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	Zip                string    `json:"zip,omitempty"`
	BadgeNumber        string    `json:"badge_number,omitempty"`
	OfficerName        string    `json:"officer_name,omitempty"`
	Department         string    `json:"department,omitempty"`
	IncidentType       string    `json:"incident_type"`
	Tags               []string  `json:"tags"`
	Confidence         float64   `json:"confidence"`
	Description        string    `json:"description,omitempty"`
	Outcome            string    `json:"outcome"`
	OfficerRating      *int      `json:"officer_rating,omitempty"`
	ConfirmCount       int       `json:"confirm_count"`
	DisputeCount       int       `json:"dispute_count"`
	VerificationStatus string    `json:"verification_status"`
	HasPhoto           bool      `json:"has_photo"`
	HasVideo           bool      `json:"has_video"`
	HasAudio           bool      `json:"has_audio"`
	IncidentAt         time.Time `json:"incident_at"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateSightingRequest DTO для создания наблюдения
// @Description DTO для создания наблюдения. Токен устройства передается в заголовке X-Device-Token.
type CreateSightingRequest struct {
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	SightingType string   `json:"sighting_type" validate:"required"`
	Direction    string   `json:"direction,omitempty"`
	VehicleCount int      `json:"vehicle_count" validate:"gte=0"`
	Description  string   `json:"description,omitempty" validate:"max=500"`
}

// SightingResponse DTO для ответа с информацией о наблюдении
// @Description DTO для ответа с информацией о наблюдении
type SightingResponse struct {
	ID              uuid.UUID  `json:"id"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	SightingType    string     `json:"sighting_type"`
	Direction       string     `json:"direction,omitempty"`
	VehicleCount    int        `json:"vehicle_count"`
	Description     string     `json:"description,omitempty"`
	ConfirmCount    int        `json:"confirm_count"`
	NotThereCount   int        `json:"not_there_count"`
	IsActive        bool       `json:"is_active"`
	ReportedAt      time.Time  `json:"reported_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
	LastConfirmedAt *time.Time `json:"last_confirmed_at,omitempty"`
}

// VoteResponse DTO итога голоса. Наблюдение возвращается, только пока оно активно и не истекло.
// @Description DTO итога голоса по наблюдению
type VoteResponse struct {
	Applied  bool              `json:"applied"`
	Sighting *SightingResponse `json:"sighting,omitempty"`
}

// OfficerResponse DTO агрегата по офицеру
// @Description DTO агрегата по офицеру
type OfficerResponse struct {
	BadgeNumber        string         `json:"badge_number"`
	OfficerName        string         `json:"officer_name,omitempty"`
	Department         string         `json:"department,omitempty"`
	Rank               string         `json:"rank,omitempty"`
	Unit               string         `json:"unit,omitempty"`
	ReportsCount       int            `json:"reports_count"`
	PositiveEncounters int            `json:"positive_encounters"`
	NegativeEncounters int            `json:"negative_encounters"`
	AverageRating      float64        `json:"average_rating"`
	TagCounts          map[string]int `json:"tag_counts"`
	Verified           bool           `json:"verified"`
	FirstSeenAt        time.Time      `json:"first_seen_at"`
	LastSeenAt         time.Time      `json:"last_seen_at"`
}

// DepartmentResponse DTO записи справочника департаментов
// @Description DTO записи справочника департаментов
type DepartmentResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Website      string    `json:"website,omitempty"`
	ComplaintURL string    `json:"complaint_url,omitempty"`
	ReportsCount int       `json:"reports_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RadiusParams - параметры радиусного запроса
type RadiusParams struct {
	Lat         *float64 `form:"lat" validate:"required,latitude"`
	Lng         *float64 `form:"lng" validate:"required,longitude"`
	RadiusMiles float64  `form:"radius_miles" validate:"gte=0,lte=100"`
	Order       string   `form:"order" validate:"omitempty,oneof=recent nearest"`
	Limit       int      `form:"limit" validate:"gte=0,lte=500"`
}

// ListParams - параметры выборки по жетону
type ListParams struct {
	Limit int `form:"limit" validate:"gte=0,lte=500"`
}

// TileParams - параметры вычисления тайла
type TileParams struct {
	Lat  *float64 `form:"lat" validate:"required,latitude"`
	Lng  *float64 `form:"lng" validate:"required,longitude"`
	Size float64  `form:"size" validate:"omitempty,gte=0.0001,lte=90"`
}

// TileResponse DTO ключа тайла
// @Description DTO ключа тайла
type TileResponse struct {
	Tile string  `json:"tile"`
	Size float64 `json:"size"`
}

// SaltResponse DTO публичной соли
// @Description DTO публичной соли текущих суток
type SaltResponse struct {
	Epoch     int64     `json:"epoch"`
	Salt      string    `json:"salt"`
	ValidFrom time.Time `json:"valid_from"`
	RotatesAt time.Time `json:"rotates_at"`
}
