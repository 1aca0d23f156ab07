package api

import (
	"log/slog"
	stdhttp "net/http"

	h "travel/internal/http/handlers"
	"travel/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries the handlers and settings the router mounts.
type Deps struct {
	Logger      *slog.Logger
	CORSOrigins []string
	Itineraries h.ItineraryHandler
	Catalog     h.CatalogHandler
	System      *h.SystemHandler
}

func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.System == nil {
		d.System = &h.SystemHandler{}
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(d.Logger), gin.Recovery(), middleware.CORS(d.CORSOrigins), middleware.Metrics())

	if err := r.SetTrustedProxies(nil); err != nil {
		d.Logger.Warn("failed to set trusted proxies", slog.Any("error", err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"detail": "Not Found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", d.System.Health)
	r.GET("/db-check", d.System.DBCheck)
	r.GET("/routes", d.System.Routes)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Both spellings are served directly so POST bodies never hit a redirect.
	for _, p := range []string{"/itineraries", "/itineraries/"} {
		r.POST(p, d.Itineraries.Create)
		r.GET(p, d.Itineraries.List)
	}
	r.GET("/itineraries/:id", d.Itineraries.Get)
	r.GET("/itineraries/:id/document", d.Itineraries.Document)
	r.GET("/mcp/:nights", d.Itineraries.ListByNights)

	r.GET("/hotels", d.Catalog.Hotels)
	r.GET("/activities", d.Catalog.Activities)
	r.GET("/transfers", d.Catalog.Transfers)

	d.System.Engine = r
	return r
}
