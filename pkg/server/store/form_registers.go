package store

import "github.com/k3horizon/horizon-api/pkg/model"

// FormRegistersStore abstracts registration form storage operations.
type FormRegistersStore interface {
	ListFormRegisters() ([]model.FormRegister, error)
	FetchFormRegister(id int64) (*model.FormRegister, error)
	CreateFormRegister(changes []Change) (*model.FormRegister, error)
	UpdateFormRegister(id int64, changes []Change) (*model.FormRegister, error)
	DeleteFormRegister(id int64) error
}
