package gorm

import (
	"gorm.io/gorm"

	"github.com/k3horizon/horizon-api/pkg/model"
	"github.com/k3horizon/horizon-api/pkg/server/store"
)

// Ensure FormRegistersStore implements store.FormRegistersStore
var _ store.FormRegistersStore = (*FormRegistersStore)(nil)

const formRegisterColumns = "id, full_name, email, phone_number, company, training_program, note, status, created_at, updated_at"

// FormRegistersStore implements store.FormRegistersStore using GORM
type FormRegistersStore struct {
	db *gorm.DB
}

// NewFormRegistersStore creates a new FormRegistersStore
func NewFormRegistersStore(db *gorm.DB) *FormRegistersStore {
	return &FormRegistersStore{db: db}
}

func (s *FormRegistersStore) ListFormRegisters() ([]model.FormRegister, error) {
	var registrations []model.FormRegister
	result := s.db.Raw(`
		SELECT ` + formRegisterColumns + `
		FROM form_registers
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`).Scan(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}
	return registrations, nil
}

func (s *FormRegistersStore) FetchFormRegister(id int64) (*model.FormRegister, error) {
	var registration model.FormRegister
	result := s.db.Raw(`
		SELECT `+formRegisterColumns+`
		FROM form_registers
		WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&registration)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &registration, nil
}

func (s *FormRegistersStore) CreateFormRegister(changes []store.Change) (*model.FormRegister, error) {
	id, err := insertReturningID(s.db, "form_registers", changes)
	if err != nil {
		return nil, err
	}
	return s.FetchFormRegister(id)
}

func (s *FormRegistersStore) UpdateFormRegister(id int64, changes []store.Change) (*model.FormRegister, error) {
	if err := updateByID(s.db, "form_registers", id, changes); err != nil {
		return nil, err
	}
	return s.FetchFormRegister(id)
}

func (s *FormRegistersStore) DeleteFormRegister(id int64) error {
	return softDeleteByID(s.db, "form_registers", id)
}
