package models

import "time"

// Officer - производная агрегированная статистика по номеру жетона.
// Ключ - только номер жетона, департамент хранится как атрибут из самого позднего отчета.
type Officer struct {
	BadgeNumber        string         `json:"badge_number"`
	OfficerName        string         `json:"officer_name,omitempty"`
	Department         string         `json:"department,omitempty"`
	Rank               string         `json:"rank,omitempty"`
	Unit               string         `json:"unit,omitempty"`
	ReportsCount       int            `json:"reports_count"`
	PositiveEncounters int            `json:"positive_encounters"`
	NegativeEncounters int            `json:"negative_encounters"`
	RatingSum          int            `json:"-"`
	RatingCount        int            `json:"-"`
	AverageRating      float64        `json:"average_rating"`
	TagCounts          map[string]int `json:"tag_counts"`
	Verified           bool           `json:"verified"`
	FirstSeenAt        time.Time      `json:"first_seen_at"`
	LastSeenAt         time.Time      `json:"last_seen_at"`
}

// OfficerDelta - инкремент агрегата, вычисленный из одного инцидента
type OfficerDelta struct {
	BadgeNumber string
	OfficerName string
	Department  string
	Tags        []string
	Positive    int
	Negative    int
	Rating      int // 0 - оценки нет
	SeenAt      time.Time
}

// Apply применяет инкремент к агрегату. Используется хранилищами, у которых нет SQL upsert.
func (o *Officer) Apply(d OfficerDelta) {
	if o.ReportsCount == 0 {
		o.BadgeNumber = d.BadgeNumber
		o.FirstSeenAt = d.SeenAt
	}
	if d.Department != "" && !d.SeenAt.Before(o.LastSeenAt) {
		o.Department = d.Department
	}
	if o.OfficerName == "" {
		o.OfficerName = d.OfficerName
	}
	o.ReportsCount++
	o.PositiveEncounters += d.Positive
	o.NegativeEncounters += d.Negative
	if d.Rating > 0 {
		o.RatingSum += d.Rating
		o.RatingCount++
	}
	o.AverageRating = averageRating(o.RatingSum, o.RatingCount)
	if o.TagCounts == nil {
		o.TagCounts = make(map[string]int, len(d.Tags))
	}
	for _, tag := range d.Tags {
		o.TagCounts[tag]++
	}
	if d.SeenAt.After(o.LastSeenAt) {
		o.LastSeenAt = d.SeenAt
	}
}

func averageRating(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
