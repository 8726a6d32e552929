package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/internal/shop/store"
	"github.com/marketloft/emporium/pkg/httpx"
	"github.com/marketloft/emporium/pkg/slogx"

	_ "github.com/marketloft/emporium/api" // Swagger docs
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

	AuthService     *service.AuthService
	UserService     *service.UserService
	ProductService  *service.ProductService
	CartService     *service.CartService
	PurchaseService *service.PurchaseService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
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
	r.registerProducts()
	r.registerCarts()
	r.registerPurchases()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Emporium Shop API
//	@version		0.1.0
//	@description	A small storefront backend: username/password accounts, signed expiring bearer tokens,
//	@description	and CRUD over products, per-user carts and purchase history.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	tokenHandler := &TokenHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/token", tokenHandler)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		AuthService: r.AuthService,
		UserService: r.UserService,
	}

	// Registration and the user listing are open; mutation requires a token.
	r.Mux.Handle("POST /v1/users", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("GET /v1/users", http.HandlerFunc(h.HandleList))

	gate := requireUser(r.AuthService)
	r.Mux.Handle("PUT /v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), gate))
	r.Mux.Handle("DELETE /v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), gate))
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}
	gate := requireUser(r.AuthService)

	r.Mux.Handle("GET /v1/products", httpx.Chain(http.HandlerFunc(h.HandleList), gate))
	r.Mux.Handle("POST /v1/products", httpx.Chain(http.HandlerFunc(h.HandleCreate), gate))
	r.Mux.Handle("PUT /v1/products/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), gate))
	r.Mux.Handle("DELETE /v1/products/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), gate))
}

func (r *Router) registerCarts() {
	h := &CartsHandler{CartService: r.CartService}
	gate := requireUser(r.AuthService)

	r.Mux.Handle("GET /v1/carts/{userID}", httpx.Chain(http.HandlerFunc(h.HandleList), gate))
	r.Mux.Handle("POST /v1/carts/{userID}", httpx.Chain(http.HandlerFunc(h.HandleCreate), gate))
	r.Mux.Handle("PUT /v1/carts/{cartItemID}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), gate))
	r.Mux.Handle("DELETE /v1/carts/{cartItemID}", httpx.Chain(http.HandlerFunc(h.HandleDelete), gate))
}

func (r *Router) registerPurchases() {
	h := &PurchasesHandler{PurchaseService: r.PurchaseService}
	gate := requireUser(r.AuthService)

	r.Mux.Handle("GET /v1/purchases/{userID}", httpx.Chain(http.HandlerFunc(h.HandleList), gate))
	r.Mux.Handle("POST /v1/purchases/{userID}", httpx.Chain(http.HandlerFunc(h.HandleCreate), gate))
	r.Mux.Handle("PUT /v1/purchases/{purchaseID}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), gate))
	r.Mux.Handle("DELETE /v1/purchases/{purchaseID}", httpx.Chain(http.HandlerFunc(h.HandleDelete), gate))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
