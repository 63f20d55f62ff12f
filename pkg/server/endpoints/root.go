package endpoints

import (
	"net/http"

	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/response"
)

// RegisterRootEndpoint registers the unauthenticated endpoint directory.
func RegisterRootEndpoint(srv *server.Server) {
	srv.Router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]interface{}{
			"endpoints": []string{
				"/articleCategorys",
				"/articles",
				"/bnspProposals",
				"/formRegisters",
				"/galleries",
				"/imageCategorys",
				"/imageProxy",
				"/kemnakerProposals",
				"/proposalCategorys",
			},
		}, "", http.StatusOK)
	}).Methods("GET")
}
