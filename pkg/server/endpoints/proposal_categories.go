package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/k3horizon/horizon-api/pkg/sanitize"
	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/response"
	storegorm "github.com/k3horizon/horizon-api/pkg/server/store/gorm"
)

// RegisterProposalCategoryEndpoints registers the /proposalCategorys
// endpoints. The resource is addressed by its name rather than a
// surrogate id, and creating a name that already exists on a live row
// is a conflict.
func RegisterProposalCategoryEndpoints(srv *server.Server) {
	categories := storegorm.NewProposalCategoriesStore(srv.DB)
	router := resourceRouter(srv, "proposalCategorys")

	list := func(w http.ResponseWriter, r *http.Request) {
		rows, err := categories.ListProposalCategories()
		if err != nil {
			respondStoreError(w, srv.Log, err)
			return
		}
		response.Success(w, rows, "", http.StatusOK)
	}

	create := func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			response.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		name, _ := body["name"].(string)
		name = sanitize.Clean(name)
		if name == "" {
			response.ValidationError(w, "Missing required fields",
				map[string]interface{}{"missing": []string{"name"}})
			return
		}

		category, err := categories.CreateProposalCategory(name)
		if err != nil {
			respondStoreError(w, srv.Log, err)
			return
		}
		response.Success(w, category, "Record created", http.StatusCreated)
	}

	fetch := func(w http.ResponseWriter, r *http.Request) {
		category, err := categories.FetchProposalCategory(mux.Vars(r)["name"])
		if err != nil {
			respondStoreError(w, srv.Log, err)
			return
		}
		response.Success(w, category, "", http.StatusOK)
	}

	update := func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			response.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		newName, _ := body["name"].(string)
		newName = sanitize.Clean(newName)
		if newName == "" {
			response.Error(w, "No recognized fields to update", http.StatusBadRequest)
			return
		}

		category, err := categories.UpdateProposalCategory(mux.Vars(r)["name"], newName)
		if err != nil {
			respondStoreError(w, srv.Log, err)
			return
		}
		response.Success(w, map[string]interface{}{"name": category.Name}, "Record updated", http.StatusOK)
	}

	remove := func(w http.ResponseWriter, r *http.Request) {
		if err := categories.DeleteProposalCategory(mux.Vars(r)["name"]); err != nil {
			respondStoreError(w, srv.Log, err)
			return
		}
		response.Success(w, nil, "Record deleted", http.StatusOK)
	}

	router.HandleFunc("", list).Methods("GET")
	router.HandleFunc("/", list).Methods("GET")
	router.HandleFunc("", create).Methods("POST")
	router.HandleFunc("/", create).Methods("POST")
	router.HandleFunc("/{name}", fetch).Methods("GET")
	router.HandleFunc("/{name}", update).Methods("PUT")
	router.HandleFunc("/{name}", remove).Methods("DELETE")
}
