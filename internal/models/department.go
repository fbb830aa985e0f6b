package models

import (
	"time"

	"github.com/google/uuid"
)

// Department - справочник департаментов, управляется только сервисом
type Department struct {
	ID           uuid.UUID `json:"id" yaml:"-"`
	Name         string    `json:"name" yaml:"name"`
	City         string    `json:"city,omitempty" yaml:"city"`
	State        string    `json:"state,omitempty" yaml:"state"`
	Phone        string    `json:"phone,omitempty" yaml:"phone"`
	Email        string    `json:"email,omitempty" yaml:"email"`
	Website      string    `json:"website,omitempty" yaml:"website"`
	ComplaintURL string    `json:"complaint_url,omitempty" yaml:"complaint_url"`
	ReportsCount int       `json:"reports_count" yaml:"-"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"-"`
}
