package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/pkg/httpx"
	"github.com/aussiebroadwan/wedding/pkg/slogx"

	_ "github.com/aussiebroadwan/wedding/api/wedding" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Counters is probed by /readyz when set, i.e. when login attempts
	// are kept in a shared store.
	Counters Pinger

	RSVPService     *service.RSVPService
	InviteService   *service.InviteService
	EmailService    *service.EmailService
	AdminService    *service.AdminService
	CatalogService  *service.CatalogService
	SettingsService *service.SettingsService
	TemplateService *service.TemplateService
	ReportService   *service.ReportService
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
		httpx.Recover(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRSVP()
	r.registerSession()
	r.registerInvites()
	r.registerCatalog()
	r.registerSettings()
	r.registerTemplates()
	r.registerReports()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Wedding RSVP API
//	@version		0.1.0
//	@description	Invitations, guest responses, meal choices and the admin back office for a wedding.
//	@description
//	@description				Guests reach their invite with the token from their RSVP link. Admin endpoints need a session token from /api/v1/admin/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/wedding
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
//	@description				Admin session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// admin wraps h with session authentication and a per-admin limit.
func (r *Router) admin(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.BearerAuth(r.AdminService),
		httpx.RateLimitByPrincipal(httpx.LenientLimit),
	)
}

func (r *Router) registerRSVP() {
	h := &RSVPHandler{RSVPService: r.RSVPService}

	// GET - public page loads, high limit
	r.Mux.Handle("GET /api/v1/rsvp/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleView),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST - limited per address and invite so one guest cannot hammer
	// another's invite
	r.Mux.Handle("POST /api/v1/rsvp/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.RateLimitByIPAndPath(httpx.ModerateLimit, "token"),
		),
	)
}

func (r *Router) registerSession() {
	h := &SessionHandler{AdminService: r.AdminService}

	// Login - strict per IP; the service adds a per username lockout
	r.Mux.Handle("POST /api/v1/admin/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/admin/logout", r.admin(h.HandleLogout))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService, EmailService: r.EmailService}

	r.Mux.Handle("GET /api/v1/admin/invites", r.admin(h.HandleList))
	r.Mux.Handle("POST /api/v1/admin/invites", r.admin(h.HandleCreateIndividual))
	r.Mux.Handle("POST /api/v1/admin/invites/group", r.admin(h.HandleCreateGroup))
	r.Mux.Handle("GET /api/v1/admin/invites/{id}", r.admin(h.HandleGet))
	r.Mux.Handle("DELETE /api/v1/admin/invites/{id}", r.admin(h.HandleDelete))
	r.Mux.Handle("POST /api/v1/admin/invites/{id}/send", r.admin(h.HandleSend))
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{CatalogService: r.CatalogService}

	r.Mux.Handle("GET /api/v1/admin/meal-options", r.admin(h.HandleListMealOptions))
	r.Mux.Handle("POST /api/v1/admin/meal-options", r.admin(h.HandleCreateMealOption))
	r.Mux.Handle("PUT /api/v1/admin/meal-options/{id}", r.admin(h.HandleUpdateMealOption))
	r.Mux.Handle("DELETE /api/v1/admin/meal-options/{id}", r.admin(h.HandleDeleteMealOption))

	r.Mux.Handle("GET /api/v1/admin/questions", r.admin(h.HandleListQuestions))
	r.Mux.Handle("POST /api/v1/admin/questions", r.admin(h.HandleCreateQuestion))
	r.Mux.Handle("PUT /api/v1/admin/questions/{id}", r.admin(h.HandleUpdateQuestion))
	r.Mux.Handle("DELETE /api/v1/admin/questions/{id}", r.admin(h.HandleDeleteQuestion))
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{SettingsService: r.SettingsService}

	r.Mux.Handle("GET /api/v1/admin/settings", r.admin(h.HandleGet))
	r.Mux.Handle("PUT /api/v1/admin/settings", r.admin(h.HandleUpdate))
}

func (r *Router) registerTemplates() {
	h := &TemplatesHandler{TemplateService: r.TemplateService}

	r.Mux.Handle("GET /api/v1/admin/templates", r.admin(h.HandleList))
	r.Mux.Handle("POST /api/v1/admin/templates", r.admin(h.HandleCreate))
	r.Mux.Handle("PUT /api/v1/admin/templates/{id}", r.admin(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/v1/admin/templates/{id}", r.admin(h.HandleDelete))
	r.Mux.Handle("POST /api/v1/admin/templates/{id}/activate", r.admin(h.HandleActivate))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportService: r.ReportService}

	r.Mux.Handle("GET /api/v1/admin/reports/overview", r.admin(h.HandleOverview))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Counters),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
