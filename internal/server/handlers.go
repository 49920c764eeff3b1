package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/grana-dev/grana/internal/dialog"
	"github.com/grana-dev/grana/internal/intent"
	"github.com/grana-dev/grana/internal/model"
	"github.com/grana-dev/grana/internal/turnlog"
)

// TurnRequest is the POST /v1/message body. Context may be a JSON
// object or a serialized string; resolution happens at the dialogue
// boundary.
type TurnRequest struct {
	Message string          `json:"message"`
	Context json.RawMessage `json:"context,omitempty"`
}

const (
	replyBadRequest   = "Não consegui ler sua mensagem. Pode tentar de novo?"
	replyNoAudio      = "Ainda não consigo ouvir áudios por aqui. Me manda por texto?"
	replyAudioFailed  = "Não consegui entender o áudio. Pode tentar de novo ou mandar por texto?"
	replyRecordFailed = "Confirmei, mas não consegui registrar agora. Pode reenviar daqui a pouco?"
)

// HandleMessage runs one text turn.
// POST /v1/message
func (s *Server) HandleMessage(c echo.Context) error {
	var req TurnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, model.TurnResponse{
			Reply:  replyBadRequest,
			Action: model.TurnError,
			Data:   map[string]any{"details": err.Error()},
		})
	}
	return s.runTurn(c, "message", req.Message, req.Context)
}

// HandleAudio transcribes an uploaded audio file and runs the result
// through the same turn path as a text message.
// POST /v1/audio (multipart: audio file, optional context and language fields)
func (s *Server) HandleAudio(c echo.Context) error {
	if s.opts.Transcriber == nil {
		return c.JSON(http.StatusOK, model.TurnResponse{Reply: replyNoAudio, Action: model.TurnError})
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusOK, model.TurnResponse{
			Reply:  replyBadRequest,
			Action: model.TurnError,
			Data:   map[string]any{"details": "missing audio file: " + err.Error()},
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusOK, model.TurnResponse{
			Reply:  replyBadRequest,
			Action: model.TurnError,
			Data:   map[string]any{"details": err.Error()},
		})
	}
	defer f.Close()

	language := c.FormValue("language")
	if language == "" {
		language = s.opts.Language
	}

	text, err := s.opts.Transcriber.Transcribe(c.Request().Context(), f, fileHeader.Filename, language)
	if err != nil {
		s.opts.Logger.Error().Err(err).Msg("transcription failed")
		return c.JSON(http.StatusOK, model.TurnResponse{
			Reply:  replyAudioFailed,
			Action: model.TurnError,
			Data:   map[string]any{"details": err.Error()},
		})
	}

	return s.runTurn(c, "audio", text, json.RawMessage(c.FormValue("context")))
}

// runTurn executes the core decision and the caller-side effects around
// it: recording a confirmed transaction and appending the audit row.
func (s *Server) runTurn(c echo.Context, source, message string, rawContext json.RawMessage) error {
	turnID := uuid.NewString()
	in := intent.Classify(message)

	resp := s.orch.HandleTurn(message, rawContext)

	details := ""
	if resp.Action == model.TurnSuccess && s.opts.Recorder != nil {
		// The core only signals intent-to-commit; recording is this
		// layer's job.
		if convCtx := dialog.ResolveContext(rawContext); convCtx.Pending != nil {
			entryID, err := s.opts.Recorder.Record(*convCtx.Pending, s.now(), message)
			if err != nil {
				s.opts.Logger.Error().Err(err).Str("turn_id", turnID).Msg("recording confirmed transaction")
				resp = model.TurnResponse{
					Reply:  replyRecordFailed,
					Action: model.TurnError,
					Data:   map[string]any{"details": err.Error()},
				}
			} else {
				details = entryID
			}
		}
	}

	s.opts.Logger.Info().
		Str("turn_id", turnID).
		Str("source", source).
		Str("intent", string(in.Kind)).
		Str("action", string(resp.Action)).
		Msg("turn handled")

	s.auditTurn(turnID, source, in.Kind, resp.Action, details)

	return c.JSON(http.StatusOK, resp)
}

// auditTurn appends to the CSV turn log, best-effort.
func (s *Server) auditTurn(turnID, source string, kind model.IntentKind, action model.TurnAction, details string) {
	if s.opts.LogRoot == "" {
		return
	}
	entry := turnlog.Entry{
		Timestamp: s.now(),
		TurnID:    turnID,
		Source:    source,
		Intent:    string(kind),
		Action:    string(action),
		Details:   details,
	}
	if err := turnlog.Append(s.opts.LogRoot, []turnlog.Entry{entry}); err != nil {
		s.opts.Logger.Warn().Err(err).Msg("failed to write turn log")
	}
}
