package endpoints

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/k3horizon/horizon-api/pkg/imagecache"
	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/response"
)

// RegisterImageProxyEndpoint registers the unauthenticated image cache
// proxy. Host filtering happens before any network I/O.
func RegisterImageProxyEndpoint(srv *server.Server) {
	srv.Router.HandleFunc("/imageProxy", handleImageProxy(srv)).Methods("GET")
}

func handleImageProxy(srv *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The proxied payload is consumed from arbitrary front-end
		// origins, so every response is permissive.
		w.Header().Set("Access-Control-Allow-Origin", "*")

		imageURL := r.URL.Query().Get("url")
		if imageURL == "" {
			response.Error(w, "Missing url parameter", http.StatusBadRequest)
			return
		}

		if !srv.Cache.HostAllowed(imageURL) {
			response.Error(w, "Image host not allowed", http.StatusForbidden)
			return
		}

		result, err := srv.Cache.Fetch(r.Context(), imageURL)
		if err != nil {
			if upstream, ok := imagecache.AsUpstreamError(err); ok {
				response.ErrorWithDetail(w, "Failed to fetch image", http.StatusBadGateway,
					map[string]interface{}{
						"http_code": upstream.StatusCode,
						"detail":    upstream.Detail,
					})
				return
			}
			srv.Log.Error("image fetch failed", zap.String("url", imageURL), zap.Error(err))
			response.Error(w, "Failed to fetch image", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", result.ContentType)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		if result.Hit {
			w.Header().Set("X-Cache", "HIT")
		} else {
			w.Header().Set("X-Cache", "MISS")
		}
		_, _ = w.Write(result.Body)
	}
}
