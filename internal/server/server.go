// Package server exposes the application over HTTP. It owns no quiz
// logic; every handler translates a request into calls on the catalog,
// selector, session, match, progress and ai packages.
package server

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/example/kanasensei/internal/ai"
	"github.com/example/kanasensei/internal/catalog"
	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/internal/selector"
	"github.com/example/kanasensei/internal/session"
	"github.com/example/kanasensei/internal/speech"
)

// Server wires the HTTP routes to the application services. The tutor is
// optional; chat endpoints answer 503 when it is absent.
type Server struct {
	echo       *echo.Echo
	catalog    *catalog.Catalog
	selector   *selector.Selector
	tracker    *progress.Tracker
	sessions   *session.Manager
	tutor      *ai.Tutor
	pronouncer speech.Pronouncer
}

// New builds the server and registers all routes
func New(cat *catalog.Catalog, tracker *progress.Tracker, tutor *ai.Tutor) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:       e,
		catalog:    cat,
		selector:   selector.New(cat),
		tracker:    tracker,
		sessions:   session.NewManager(),
		tutor:      tutor,
		pronouncer: speech.NewJapanese(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	api.GET("/catalog/characters", s.listCharacters)
	api.GET("/catalog/vocabulary", s.listVocabulary)

	api.POST("/sessions/grid", s.startGrid)
	api.GET("/sessions/grid/:id", s.getGrid)
	api.POST("/sessions/grid/:id/check", s.checkGridItem)
	api.POST("/sessions/grid/:id/finish", s.finishGrid)
	api.DELETE("/sessions/grid/:id", s.abandonGrid)

	api.POST("/quiz/comprehensive", s.startComprehensive)
	api.POST("/quiz/comprehensive/:id/next", s.nextComprehensive)
	api.POST("/quiz/comprehensive/:id/answer", s.answerComprehensive)
	api.DELETE("/quiz/comprehensive/:id", s.abandonComprehensive)

	api.POST("/quiz/vocabulary", s.startVocabulary)
	api.POST("/quiz/vocabulary/:id/next", s.nextVocabulary)
	api.POST("/quiz/vocabulary/:id/answer", s.answerVocabulary)
	api.DELETE("/quiz/vocabulary/:id", s.abandonVocabulary)

	api.POST("/match", s.startMatch)
	api.GET("/match/:id", s.getMatch)
	api.POST("/match/:id/flip", s.flipCard)
	api.POST("/match/:id/end", s.endMatch)
	api.DELETE("/match/:id", s.abandonMatch)

	api.GET("/progress", s.getProgress)
	api.GET("/progress/stats", s.getProgress)
	api.GET("/progress/seen", s.listSeen)
	api.GET("/progress/incorrect", s.listIncorrect)
	api.DELETE("/progress/incorrect", s.clearIncorrect)
	api.GET("/progress/history", s.listHistory)
	api.GET("/progress/preferences", s.getPreferences)
	api.PUT("/progress/preferences", s.putPreferences)

	api.POST("/chat", s.chat)
	api.GET("/chat/history", s.chatHistory)

	api.GET("/speech/utterance", s.utterance)

	s.echo.GET("/healthz", s.health)
}

// Start runs the HTTP listener on PORT (default 8080) until it fails or
// Shutdown is called
func (s *Server) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return s.echo.Start(fmt.Sprintf(":%s", port))
}

// Shutdown stops the listener gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
