package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// OfficerStore - чтение агрегатов офицеров. Запись идет только через LedgerTx.
type OfficerStore interface {
	GetOfficer(ctx context.Context, badge string) (*models.Officer, error)
}

// DepartmentStore - справочник департаментов
type DepartmentStore interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error)
	// UpsertDepartment создает или обновляет контактные поля по имени, не трогая счетчики
	UpsertDepartment(ctx context.Context, department *models.Department) error
}

// Directory - чтение офицеров и департаментов. Запись в справочник департаментов
// выполняет только Sync, который вызывается из процесса загрузки, а не из API.
type Directory struct {
	officers    OfficerStore
	departments DepartmentStore
	logger      *logrus.Logger
}

// NewDirectory создает Directory
func NewDirectory(officers OfficerStore, departments DepartmentStore, logger *logrus.Logger) *Directory {
	return &Directory{officers: officers, departments: departments, logger: logger}
}

// Officer возвращает агрегат по номеру жетона
func (d *Directory) Officer(ctx context.Context, badge string) (*models.Officer, error) {
	badge = strings.TrimSpace(badge)
	if badge == "" {
		return nil, models.NewValidationError("badge_number", "required")
	}
	officer, err := d.officers.GetOfficer(ctx, badge)
	if err != nil {
		return nil, fmt.Errorf("service: could not get officer: %w", err)
	}
	return officer, nil
}

// Departments возвращает весь справочник
func (d *Directory) Departments(ctx context.Context) ([]*models.Department, error) {
	departments, err := d.departments.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list departments: %w", err)
	}
	return departments, nil
}

// Department возвращает департамент по ID
func (d *Directory) Department(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	department, err := d.departments.GetDepartment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get department: %w", err)
	}
	return department, nil
}

// Sync загружает записи справочника. Это сервисный путь записи, у него нет HTTP-маршрута.
func (d *Directory) Sync(ctx context.Context, departments []models.Department) (int, error) {
	log := d.logger.WithFields(logrus.Fields{
		"service": "directory",
		"method":  "Sync",
	})
	synced := 0
	for i := range departments {
		dep := departments[i]
		dep.Name = strings.TrimSpace(dep.Name)
		if dep.Name == "" {
			log.WithField("index", i).Warn("Skipping department without name")
			continue
		}
		if err := d.departments.UpsertDepartment(ctx, &dep); err != nil {
			return synced, fmt.Errorf("service: could not upsert department %q: %w", dep.Name, err)
		}
		synced++
	}
	log.WithField("count", synced).Info("Department directory synced")
	return synced, nil
}

type departmentsFile struct {
	Departments []models.Department `yaml:"departments"`
}

// LoadDepartmentsFile читает YAML-файл справочника департаментов
func LoadDepartmentsFile(path string) ([]models.Department, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read departments file: %w", err)
	}
	var file departmentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse departments file: %w", err)
	}
	return file.Departments, nil
}
