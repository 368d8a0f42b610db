package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tabwire/courier/internal/courier/service"
	"github.com/tabwire/courier/internal/courier/store"
	"github.com/tabwire/courier/pkg/httpx"
	"github.com/tabwire/courier/pkg/jwtx"
	"github.com/tabwire/courier/pkg/slogx"

	_ "github.com/tabwire/courier/api/courier" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	DirectoryService *service.DirectoryService
	LedgerService    *service.LedgerService
	TokenService     *service.TokenService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerMessages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Courier Messaging Service API
//	@version		0.1.0
//	@description	A directory-and-messaging backend: user registration and login with
//	@description	salted password hashes, JWT bearer tokens, a user roster, and a
//	@description	per-user message ledger with read receipts.
//
//	@contact.name				Tabwire Team
//	@contact.url				https://github.com/tabwire/courier
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT bearer token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		DirectoryService: r.DirectoryService,
		TokenService:     r.TokenService,
	}

	// Both endpoints authenticate or create credentials, so they carry the
	// strict per-IP limit to slow down brute force and signup floods.
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		DirectoryService: r.DirectoryService,
		LedgerService:    r.LedgerService,
	}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedFrom := httpx.Chain(http.HandlerFunc(h.HandleMessagesFrom),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedTo := httpx.Chain(http.HandlerFunc(h.HandleMessagesTo),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/users", securedList)
	r.Mux.Handle("GET /v1/users/{username}", securedGet)
	r.Mux.Handle("GET /v1/users/{username}/messages/from", securedFrom)
	r.Mux.Handle("GET /v1/users/{username}/messages/to", securedTo)
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{LedgerService: r.LedgerService}

	securedSend := httpx.Chain(http.HandlerFunc(h.HandleSend),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedRead := httpx.Chain(http.HandlerFunc(h.HandleMarkRead),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/messages", securedSend)
	r.Mux.Handle("GET /v1/messages/{id}", securedGet)
	r.Mux.Handle("POST /v1/messages/{id}/read", securedRead)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
