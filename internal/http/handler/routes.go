package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dictapi/internal/http/middleware"
	"dictapi/internal/service"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	DB         *sql.DB
	Dictionary service.DictionaryService
	Auth       service.AuthService
	// CookieName is the session cookie read by the auth guard and set on login.
	CookieName string
	// Gatherer backs /metrics. Nil leaves /metrics unregistered.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Static paths are registered before the /:id routes so they are never shadowed.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	app.Post("/auth/register", Register(d.Auth))
	app.Post("/auth/login", Login(d.Auth, d.CookieName))
	app.Post("/auth/logout", Logout(d.CookieName))

	authed := middleware.RequireAuth(d.Auth, d.CookieName)
	svc := d.Dictionary

	app.Get("/", ListWords(svc))

	app.Get("/add_text", authed, AddTextForm())
	app.Post("/add_text", authed, AddText(svc))
	app.Post("/add_url", authed, AddURL(svc))
	app.Get("/add_word", authed, AddWordForm())
	app.Post("/add_word", authed, AddWord(svc))

	app.Get("/:id<int>/", ViewWord(svc))
	app.Get("/:id<int>/edit", authed, ViewWord(svc))
	app.Post("/:id<int>/edit", authed, EditWord(svc))
	app.Get("/:id<int>/add_phrase_word", authed, AddPhraseWordForm(svc))
	app.Post("/:id<int>/add_phrase_word", authed, AddPhraseWord(svc))
	app.Post("/:id<int>/delete", authed, DeleteWord(svc))
	app.Post("/:id<int>/phrases/:phrase_id<int>/delete", authed, DeletePhrase(svc))
	app.Post("/:id<int>/phrase_words/:phrase_word_id<int>/delete", authed, DeletePhraseWord(svc))
}
