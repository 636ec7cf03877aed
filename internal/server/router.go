package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes. An empty origin list keeps the
// permissive CORS default the dev dashboard expects; production deployments
// pin origins via config.
func NewRouter(provider SnapshotProvider, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog())
	if len(corsOrigins) == 0 {
		r.Use(cors.Default())
	} else {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = corsOrigins
		r.Use(cors.New(cfg))
	}

	h := NewHandler(provider)
	r.GET("/healthz", Health)

	api := r.Group("/api")
	{
		api.GET("/symbols", h.ListSymbols)
		api.GET("/snapshot/:symbol", h.GetSnapshot)
	}

	return r
}
