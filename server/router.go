// Package server exposes the search engine and maze generators over a small
// JSON API built on gin.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr   string
	engine *gin.Engine
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes, e.g. "/api"
	GinMode     string // release, debug or test; empty keeps gin's current mode
	Controllers []Controller
	Logger      *logrus.Logger // nil selects logrus.StandardLogger()
}

// NewRouter builds the gin engine and mounts every controller under
// BaseURL + "/v1".
func NewRouter(cfg Config) *Router {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(log))

	v1 := engine.Group(cfg.BaseURL).Group("/v1")
	{
		for _, c := range cfg.Controllers {
			c.Register(v1)
		}
	}
	return &Router{addr: cfg.Addr, engine: engine}
}

// Handler returns the underlying http.Handler, mainly for tests.
func (r *Router) Handler() *gin.Engine { return r.engine }

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	return r.engine.Run(r.addr)
}
