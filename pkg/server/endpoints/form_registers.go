package endpoints

import (
	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/store"
	storegorm "github.com/k3horizon/horizon-api/pkg/server/store/gorm"
)

// RegisterFormRegisterEndpoints registers the /formRegisters CRUD
// endpoints for training registrations submitted from the public site.
func RegisterFormRegisterEndpoints(srv *server.Server) {
	registrations := storegorm.NewFormRegistersStore(srv.DB)

	registerResource(srv, resource{
		name: "formRegisters",
		fields: []fieldSpec{
			{jsonKey: "full_name", column: "full_name", required: true, sanitized: true},
			{jsonKey: "email", column: "email", required: true, sanitized: true},
			{jsonKey: "phone_number", column: "phone_number"},
			{jsonKey: "company", column: "company", sanitized: true},
			{jsonKey: "training_program", column: "training_program", sanitized: true},
			{jsonKey: "note", column: "note", sanitized: true},
			{jsonKey: "status", column: "status", sanitized: true},
		},
		store: resourceStore{
			list: func() (interface{}, error) { return registrations.ListFormRegisters() },
			fetch: func(id int64) (interface{}, error) {
				return registrations.FetchFormRegister(id)
			},
			create: func(changes []store.Change) (interface{}, error) {
				return registrations.CreateFormRegister(changes)
			},
			update: func(id int64, changes []store.Change) (interface{}, error) {
				return registrations.UpdateFormRegister(id, changes)
			},
			remove: registrations.DeleteFormRegister,
		},
	})
}
