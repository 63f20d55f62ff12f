package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/k3horizon/horizon-api/pkg/config"
	"github.com/k3horizon/horizon-api/pkg/imagecache"
	"github.com/k3horizon/horizon-api/pkg/server/middleware"
	"github.com/k3horizon/horizon-api/pkg/server/response"
)

type Server struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	Router *mux.Router
	Cache  *imagecache.Cache
	Auth   *middleware.Authenticator
	srv    *http.Server
}

func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	cache *imagecache.Cache,
	log *zap.Logger,
) *Server {

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, "Endpoint not found: "+r.URL.Path, http.StatusNotFound)
	})

	auth := middleware.NewAuthenticator([]byte(cfg.AccessSecret), cfg.WhitelistIPs, log)

	handler := handlers.CORS(corsOptions(cfg)...)(router)
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, handler),
		Addr:    cfg.BindAddress + ":" + cfg.Port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Config: cfg,
		DB:     db,
		Log:    log,
		Router: router,
		Cache:  cache,
		Auth:   auth,
		srv:    srv,
	}
}

func corsOptions(cfg *config.Config) []handlers.CORSOption {
	opts := []handlers.CORSOption{
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.AllowCredentials(),
		handlers.MaxAge(86400),
		handlers.OptionStatusCode(http.StatusNoContent),
	}

	if cfg.CORSWildcard() {
		// Echo the request origin so credentialed requests still work.
		opts = append(opts, handlers.AllowedOriginValidator(func(string) bool { return true }))
	} else {
		opts = append(opts, handlers.AllowedOrigins(cfg.CORSOrigins()))
	}

	return opts
}

// Handler exposes the full middleware chain for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
