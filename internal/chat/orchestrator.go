package chat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ubuzima-backend/internal/database"
	"ubuzima-backend/internal/session"
	"ubuzima-backend/internal/textutil"
)

// Completer produces one chat completion for the given user text and
// optional system prompt.
type Completer interface {
	Complete(ctx context.Context, text, systemPrompt string) (string, error)
}

// Translator converts text into the given target language code.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Transcriber converts an uploaded audio recording into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

const (
	languageEnglish     = "en"
	languageKinyarwanda = "rw"
)

// Apologies returned when the completion call fails outright. Localized to
// the detected input language.
const (
	apologyEnglish     = "I am sorry, I could not process your request right now. Please try again shortly."
	apologyKinyarwanda = "Mbabarira, sinashoboye gusubiza ubu. Ongera ugerageze mu kanya gato."
)

// AudioErrorMessage is the user-facing reply when transcription fails.
const AudioErrorMessage = "Could not process audio"

// Orchestrator runs the conversation pipeline: detect language, translate
// into English if needed, select a prompt by mode, call the completion
// service, translate the reply back, and append the turn to the session's
// history. Each step degrades independently so a single upstream failure
// never aborts the whole response.
type Orchestrator struct {
	db          *gorm.DB
	completer   Completer
	translator  Translator
	transcriber Transcriber // nil disables real transcription
}

func NewOrchestrator(db *gorm.DB, completer Completer, translator Translator, transcriber Transcriber) *Orchestrator {
	return &Orchestrator{
		db:          db,
		completer:   completer,
		translator:  translator,
		transcriber: transcriber,
	}
}

// HandleText produces the assistant's reply for one user input. When the
// request context carries a session, the turn is appended to its history;
// without one the append is skipped silently.
func (o *Orchestrator) HandleText(ctx context.Context, userText, mode string) string {
	isEnglish := textutil.IsEnglish(userText)

	modelInput := userText
	if !isEnglish {
		translated, err := o.translator.Translate(ctx, userText, languageEnglish)
		if err != nil {
			slog.Error("error translating input, sending original text", "error", err)
		} else {
			modelInput = translated
		}
	}

	reply, err := o.completer.Complete(ctx, modelInput, renderPrompt(promptForMode(mode), modelInput))
	if err != nil {
		slog.Error("completion failed, degrading to apology", "error", err)
		if isEnglish {
			reply = apologyEnglish
		} else {
			reply = apologyKinyarwanda
		}
	} else if !isEnglish {
		translated, err := o.translator.Translate(ctx, reply, languageKinyarwanda)
		if err != nil {
			slog.Error("error translating reply, keeping English text", "error", err)
		} else {
			reply = translated
		}
	}

	o.appendTurn(ctx, userText, reply, mode)

	return reply
}

// HandleAudio processes an uploaded recording. With a transcriber configured
// the audio is transcribed and fed through the text pipeline; otherwise the
// reply is an acknowledgment plus a general health tip.
func (o *Orchestrator) HandleAudio(ctx context.Context, filename string, audio io.Reader) (string, error) {
	if o.transcriber == nil {
		return audioAcknowledgment + " " + healthTips[rand.Intn(len(healthTips))], nil
	}

	text, err := o.transcriber.Transcribe(ctx, filename, audio)
	if err != nil {
		slog.Error("error transcribing audio", "error", err)
		return "", fmt.Errorf("%s: %w", AudioErrorMessage, err)
	}

	return o.HandleText(ctx, text, ModeHealth), nil
}

func (o *Orchestrator) appendTurn(ctx context.Context, userText, reply, mode string) {
	sessionID := session.FromContext(ctx)
	if sessionID == uuid.Nil {
		return
	}

	turn := &database.ChatTurn{
		SessionID:     sessionID,
		UserText:      userText,
		AssistantText: reply,
		Mode:          mode,
		Timestamp:     time.Now().UTC(),
	}
	if err := database.SaveChatTurn(o.db, turn); err != nil {
		slog.Error("error saving chat turn", "session_id", sessionID, "error", err)
	}
}
