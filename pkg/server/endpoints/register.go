package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/response"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterRootEndpoint(srv)
	RegisterImageProxyEndpoint(srv)

	RegisterArticleCategoryEndpoints(srv)
	RegisterArticleEndpoints(srv)
	RegisterFormRegisterEndpoints(srv)
	RegisterGalleryEndpoints(srv)
	RegisterImageCategoryEndpoints(srv)
	RegisterProposalCategoryEndpoints(srv)
	RegisterBnspProposalEndpoints(srv)
	RegisterKemnakerProposalEndpoints(srv)
}

// resourceRouter mounts an authenticated subrouter under /{name} with
// the method-not-allowed policy applied.
func resourceRouter(s *server.Server, name string) *mux.Router {
	router := s.Router.PathPrefix("/" + name).Subrouter()
	router.Use(s.Auth.Middleware)
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	return router
}
