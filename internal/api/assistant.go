package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ubuzima-backend/internal/chat"
	"ubuzima-backend/internal/database"
	"ubuzima-backend/internal/session"
	"ubuzima-backend/pkg/api"
)

// historyTailLength is how many recent turns ride along with a text reply.
const historyTailLength = 5

// AssistantService exposes the conversational endpoints.
type AssistantService struct {
	db           *gorm.DB
	orchestrator *chat.Orchestrator
}

func NewAssistantService(db *gorm.DB, orchestrator *chat.Orchestrator) *AssistantService {
	return &AssistantService{db: db, orchestrator: orchestrator}
}

func (s *AssistantService) AddRoutes(r chi.Router) {
	r.Post("/process_text", RestHandler(s.ProcessText))
	r.Post("/process_audio", RestHandler(s.ProcessAudio))
	r.Get("/get_history", RestHandler(s.GetHistory))
}

func (s *AssistantService) ProcessText(r *http.Request) (any, error) {
	text := r.FormValue("text_input")
	if text == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "no text provided")
	}

	mode := r.FormValue("mode")
	if mode == "" {
		mode = chat.ModeHealth
	}

	reply := s.orchestrator.HandleText(r.Context(), text, mode)

	resp := api.TextResponse{Success: true, Response: reply}
	if sessionID := session.FromContext(r.Context()); sessionID != uuid.Nil {
		history, err := database.GetChatHistory(s.db, sessionID)
		if err != nil {
			slog.Error("error loading chat history", "session_id", sessionID, "error", err)
		} else {
			if len(history) > historyTailLength {
				history = history[len(history)-historyTailLength:]
			}
			resp.History = toAPITurns(history)
		}
	}

	return resp, nil
}

func (s *AssistantService) ProcessAudio(r *http.Request) (any, error) {
	file, header, err := r.FormFile("audio")
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "no audio file provided")
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "no audio file selected")
	}

	reply, err := s.orchestrator.HandleAudio(r.Context(), header.Filename, file)
	if err != nil {
		// Upstream failure degrades to a fixed message rather than a 5xx.
		return api.AudioResponse{Success: false, Response: chat.AudioErrorMessage}, nil
	}

	return api.AudioResponse{Success: true, Response: reply}, nil
}

func (s *AssistantService) GetHistory(r *http.Request) (any, error) {
	sessionID := session.FromContext(r.Context())
	if sessionID == uuid.Nil {
		return api.HistoryResponse{History: []api.ChatTurn{}}, nil
	}

	history, err := database.GetChatHistory(s.db, sessionID)
	if err != nil {
		slog.Error("error retrieving chat history", "session_id", sessionID, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving chat history")
	}

	return api.HistoryResponse{History: toAPITurns(history)}, nil
}

func toAPITurns(turns []database.ChatTurn) []api.ChatTurn {
	out := make([]api.ChatTurn, 0, len(turns))
	for _, turn := range turns {
		out = append(out, api.ChatTurn{
			UserText:      turn.UserText,
			AssistantText: turn.AssistantText,
			Mode:          turn.Mode,
			Timestamp:     turn.Timestamp.Format(time.RFC3339),
		})
	}
	return out
}
