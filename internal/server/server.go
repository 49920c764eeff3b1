// Package server provides the HTTP transport around the dialogue core.
// It owns everything the core treats as collaborator work: request
// decoding, audio upload handling, speech-to-text delegation, turn
// auditing and recording confirmed transactions into the ledger. Every
// failure is mapped onto the conversational envelope with a
// success-style status so the chat UI can always render the reply.
package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/grana-dev/grana/internal/dialog"
	"github.com/grana-dev/grana/internal/model"
	"github.com/grana-dev/grana/internal/transcribe"
)

// Recorder commits a confirmed transaction. Satisfied by *ledger.Service.
type Recorder interface {
	Record(p model.PendingTransaction, date time.Time, note string) (string, error)
}

// Options carries the optional collaborators. Any of them may be left
// unset: the server then answers the affected turns with a
// conversational error instead of refusing to start.
type Options struct {
	Recorder    Recorder
	Transcriber transcribe.Transcriber
	LogRoot     string // turn audit log root; empty disables
	Logger      zerolog.Logger
	Language    string // language hint forwarded to the transcriber
}

// Server handles conversational HTTP requests.
type Server struct {
	orch *dialog.Orchestrator
	opts Options
	now  func() time.Time
}

// New creates a Server around an orchestrator.
func New(orch *dialog.Orchestrator, opts Options) *Server {
	return &Server{orch: orch, opts: opts, now: time.Now}
}

// Echo builds the configured echo instance with all routes registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())

	e.POST("/v1/message", s.HandleMessage)
	e.POST("/v1/audio", s.HandleAudio)
	e.GET("/health", s.Health)

	return e
}

// Health returns health status.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
