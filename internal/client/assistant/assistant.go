// Package assistant turns free-form Spanish chat into task operations.
// Classification is keyword-first: a fixed priority list of substring
// rules routes the utterance, and only unmatched text reaches the LLM.
package assistant

import (
	"context"
	"errors"

	"github.com/johnp-05/sumativatr1/internal/client/gemini"
	"github.com/johnp-05/sumativatr1/internal/client/models"
	"github.com/johnp-05/sumativatr1/internal/client/taskstore"
	"github.com/johnp-05/sumativatr1/internal/common"
	"github.com/johnp-05/sumativatr1/internal/logging"
)

// Result is a single assistant reply. Severity carries the outcome class
// so the UI can style the message without scanning the text.
type Result struct {
	Text     string
	Severity models.Severity
}

// Completer is the LLM collaborator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	SuggestDescription(ctx context.Context, title string) (string, error)
}

// Vault is the private-store collaborator.
type Vault interface {
	IsUnlocked() bool
	List(ctx context.Context) ([]models.VaultTask, error)
	Add(ctx context.Context, title, description string, completed bool) (models.VaultTask, error)
	Update(ctx context.Context, id string, upd models.TaskUpdate) (models.VaultTask, error)
	ToggleComplete(ctx context.Context, id string) (models.VaultTask, error)
	Delete(ctx context.Context, id string) error
}

// Assistant dispatches classified intents against the task store, the
// vault and the LLM. It holds no conversation state of its own; the
// caller threads a Context through Handle.
type Assistant struct {
	tasks  taskstore.Store
	vault  Vault
	llm    Completer
	logger logging.Logger
}

func New(tasks taskstore.Store, vault Vault, llm Completer, logger logging.Logger) *Assistant {
	return &Assistant{tasks: tasks, vault: vault, llm: llm, logger: logger}
}

// Handle processes one user utterance and returns the reply. The input is
// sanitized before classification; conv is mutated to reflect what
// happened so follow-up utterances can refer back to it.
func (a *Assistant) Handle(ctx context.Context, conv *Context, raw string) Result {
	prompt := Sanitize(raw)
	if prompt == "" {
		return Result{
			Text:     "No entendí tu mensaje. Prueba con algo como \"muestra mis tareas\".",
			Severity: models.SeverityWarning,
		}
	}

	// A pending deletion survives exactly one turn: either the very next
	// utterance confirms it, or it is dropped.
	if conv.LastAction == ActionDeletePending {
		if IsDeleteConfirmation(prompt) {
			return a.executePendingDelete(ctx, conv)
		}
		conv.LastAction = ActionChatted
	}

	in := Classify(prompt, conv)
	a.logger.Debug(ctx, "intent classified", "kind", in.Kind.String())

	switch in.Kind {
	case KindListTasks:
		return a.handleList(ctx, conv, in)
	case KindCreateTask:
		return a.handleCreate(ctx, conv, in)
	case KindUpdateTask:
		return a.handleUpdate(ctx, conv, in)
	case KindDeleteTask:
		return a.handleDelete(ctx, conv, in)
	case KindMoveToVault:
		return a.handleMove(ctx, conv, in)
	case KindGrantedCommand:
		return a.handleGranted(ctx, conv)
	default:
		return a.handleChat(ctx, conv, prompt)
	}
}

// failureResult converts an error escaping a handler into a user-facing
// reply. Validation errors carry their own Spanish text; everything else
// gets a fixed message and the raw error goes to the log.
func (a *Assistant) failureResult(ctx context.Context, err error) Result {
	switch {
	case errors.Is(err, common.ErrVaultLocked):
		return Result{Text: msgVaultLocked, Severity: models.SeverityWarning}
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidPIN):
		return Result{Text: err.Error(), Severity: models.SeverityWarning}
	case errors.Is(err, common.ErrorNotFound):
		return Result{Text: "No encontré esa tarea.", Severity: models.SeverityError}
	case errors.Is(err, gemini.ErrMissingAPIKey):
		return Result{Text: "El asistente de IA no está configurado: falta la clave de API de Gemini.", Severity: models.SeverityError}
	case errors.Is(err, gemini.ErrInvalidAPIKey):
		return Result{Text: "La clave de API de Gemini no es válida.", Severity: models.SeverityError}
	case errors.Is(err, gemini.ErrQuotaExceeded):
		return Result{Text: "Se agotó la cuota de la API de Gemini. Inténtalo de nuevo más tarde.", Severity: models.SeverityError}
	case errors.Is(err, gemini.ErrContentBlocked):
		return Result{Text: "La respuesta fue bloqueada por los filtros de seguridad.", Severity: models.SeverityWarning}
	default:
		a.logger.Error(ctx, "assistant operation failed", "error", err)
		return Result{Text: "Ocurrió un error inesperado. Inténtalo de nuevo.", Severity: models.SeverityError}
	}
}
