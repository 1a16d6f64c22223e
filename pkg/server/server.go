package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"atlas/pkg/flight"
	"atlas/pkg/inference"
	"atlas/pkg/store"
)

type Server struct {
	Echo       *echo.Echo
	Inferencer inference.Inferencer
	Store      *store.Store
	Ctx        context.Context

	compared flight.Cache[string, CompareResponse]
}

func NewServer(ctx context.Context, inf inference.Inferencer, st *store.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:       e,
		Inferencer: inf,
		Store:      st,
		Ctx:        ctx,
	}
	s.compared = flight.NewCache(s.runComparison)
	s.compared.Expiry(10 * time.Minute)

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.POST("/compare", s.handlePostCompare)   // plain vs analysis-backed response
	api.POST("/feedback", s.handlePostFeedback) // rating + note for a logged comparison
	api.GET("/logs/:id", s.handleGetLog)
}

func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

// handleGetRoot, handleGetLog — defined in get.go
// handlePostCompare — defined in compare.go
// handlePostFeedback — defined in feedback.go
