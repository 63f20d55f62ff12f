package endpoints

import (
	"net/http"

	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/response"
	"github.com/k3horizon/horizon-api/pkg/server/store"
)

// resourceStore adapts a typed store to the uniform CRUD handlers.
type resourceStore struct {
	list   func() (interface{}, error)
	fetch  func(id int64) (interface{}, error)
	create func(changes []store.Change) (interface{}, error)
	update func(id int64, changes []store.Change) (interface{}, error)
	remove func(id int64) error
}

// resource is one id-keyed CRUD resource mounted under /{name}.
type resource struct {
	name   string
	fields []fieldSpec
	store  resourceStore

	// beforeWrite may derive or rewrite request fields before they are
	// validated and collected.
	beforeWrite func(creating bool, body map[string]interface{})
}

func registerResource(s *server.Server, res resource) {
	router := resourceRouter(s, res.name)

	router.HandleFunc("", handleList(s, res)).Methods("GET")
	router.HandleFunc("/", handleList(s, res)).Methods("GET")
	router.HandleFunc("", handleCreate(s, res)).Methods("POST")
	router.HandleFunc("/", handleCreate(s, res)).Methods("POST")
	router.HandleFunc("/{id}", handleFetch(s, res)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdate(s, res)).Methods("PUT")
	router.HandleFunc("/{id}", handleDelete(s, res)).Methods("DELETE")
}

func handleList(s *server.Server, res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := res.store.list()
		if err != nil {
			respondStoreError(w, s.Log, err)
			return
		}
		response.Success(w, rows, "", http.StatusOK)
	}
}

func handleFetch(s *server.Server, res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.Error(w, "Record not found", http.StatusNotFound)
			return
		}

		row, err := res.store.fetch(id)
		if err != nil {
			respondStoreError(w, s.Log, err)
			return
		}
		response.Success(w, row, "", http.StatusOK)
	}
}

func handleCreate(s *server.Server, res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			response.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if res.beforeWrite != nil {
			res.beforeWrite(true, body)
		}

		if missing := missingFields(body, res.fields); len(missing) > 0 {
			response.ValidationError(w, "Missing required fields",
				map[string]interface{}{"missing": missing})
			return
		}

		changes, err := collectChanges(body, res.fields)
		if err != nil {
			response.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		row, err := res.store.create(changes)
		if err != nil {
			respondStoreError(w, s.Log, err)
			return
		}
		response.Success(w, row, "Record created", http.StatusCreated)
	}
}

func handleUpdate(s *server.Server, res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.Error(w, "Record not found", http.StatusNotFound)
			return
		}

		body, err := decodeBody(r)
		if err != nil {
			response.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if res.beforeWrite != nil {
			res.beforeWrite(false, body)
		}

		changes, err := collectChanges(body, res.fields)
		if err != nil {
			response.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(changes) == 0 {
			response.Error(w, "No recognized fields to update", http.StatusBadRequest)
			return
		}

		if _, err := res.store.update(id, changes); err != nil {
			respondStoreError(w, s.Log, err)
			return
		}
		response.Success(w, map[string]interface{}{"id": id}, "Record updated", http.StatusOK)
	}
}

func handleDelete(s *server.Server, res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.Error(w, "Record not found", http.StatusNotFound)
			return
		}

		if err := res.store.remove(id); err != nil {
			respondStoreError(w, s.Log, err)
			return
		}
		response.Success(w, nil, "Record deleted", http.StatusOK)
	}
}
