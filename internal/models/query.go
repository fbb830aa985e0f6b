package models

import "time"

// MetersPerMile - коэффициент перевода радиуса из миль в метры
const MetersPerMile = 1609.34

// Order - порядок выдачи результатов радиусного запроса
type Order string

const (
	OrderRecent  Order = "recent"
	OrderNearest Order = "nearest"
)

// OperationClass - класс операции для ограничителя частоты
type OperationClass string

const (
	ClassIncidentInsert OperationClass = "incident_insert"
	ClassSightingInsert OperationClass = "sighting_insert"
	ClassVote           OperationClass = "vote"
)

// RadiusQuery - параметры запроса по радиусу
type RadiusQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Order        Order
	Limit        int
	// Now используется для фильтрации истекших наблюдений
	Now time.Time
}
