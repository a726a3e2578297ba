package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/signup/internal/signup/filestore"
	"github.com/aussiebroadwan/signup/internal/signup/service"
	"github.com/aussiebroadwan/signup/internal/signup/store"
	"github.com/aussiebroadwan/signup/pkg/httpx"
	"github.com/aussiebroadwan/signup/pkg/slogx"

	_ "github.com/aussiebroadwan/signup/api/signup" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	files filestore.Store

	RegistrationService *service.RegistrationService
	FileService         *service.FileService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	files filestore.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		files:        files,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerFiles()
	r.registerAPI()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Signup Service API
//	@version		0.1.0
//	@description	User registration with a profile picture and file attachments.
//	@description
//	@description	Uploaded files are stored under generated names and can be fetched back by anyone who knows the name.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/signup
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPages() {
	// GET / - static form, public limit
	r.Mux.Handle("GET /{$}",
		httpx.Chain(FormHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST /register - moderate rate limit by IP, body capped before parsing
	registerHandler := &RegisterHandler{RegistrationService: r.RegistrationService}
	r.Mux.Handle("POST /register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
			httpx.LimitBody(MaxRegisterBody),
		),
	)

	// GET /list - lenient rate limit
	listHandler := &ListHandler{RegistrationService: r.RegistrationService}
	r.Mux.Handle("GET /list",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerFiles() {
	downloadHandler := &DownloadHandler{FileService: r.FileService}
	r.Mux.Handle("GET /download/{filename}",
		httpx.Chain(downloadHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Stored files are also reachable directly under their generated name
	staticHandler := &StaticHandler{FileService: r.FileService}
	r.Mux.Handle("GET /{name}",
		httpx.Chain(staticHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAPI() {
	usersHandler := &UsersAPIHandler{RegistrationService: r.RegistrationService}
	r.Mux.Handle("GET /api/v1/users",
		httpx.Chain(usersHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.files),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
