package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/johnp-05/sumativatr1/internal/client/models"
	"github.com/johnp-05/sumativatr1/internal/common"
	"github.com/johnp-05/sumativatr1/internal/validation"
)

const (
	msgVaultLocked = "La bóveda está bloqueada. Desbloquéala primero con /bóveda."
	msgNoTaskRef   = "¿A qué tarea te refieres? Indícame el número, por ejemplo \"la tarea 2\"."
)

func (a *Assistant) handleList(ctx context.Context, conv *Context, in Intent) Result {
	tasks, err := a.tasks.List(ctx)
	if err != nil {
		return a.failureResult(ctx, err)
	}

	var b strings.Builder
	if len(tasks) == 0 {
		b.WriteString("No tienes tareas todavía. Crea una diciendo \"crea una tarea llamada comprar pan\".")
	} else {
		b.WriteString("Tus tareas:\n")
		for _, t := range tasks {
			b.WriteString(fmt.Sprintf("  %s #%d %s", checkbox(t.Completed), t.ID, t.Title))
			if t.Description != "" {
				b.WriteString(" - " + t.Description)
			}
			b.WriteByte('\n')
		}
	}

	severity := models.SeverityInfo
	if in.IncludeVault {
		if !a.vault.IsUnlocked() {
			b.WriteString("\n" + msgVaultLocked)
			severity = models.SeverityWarning
		} else {
			vt, err := a.vault.List(ctx)
			if err != nil {
				return a.failureResult(ctx, err)
			}
			b.WriteString("\nBóveda:\n")
			if len(vt) == 0 {
				b.WriteString("  (vacía)\n")
			}
			for i, t := range vt {
				b.WriteString(fmt.Sprintf("  %s %d. %s", checkbox(t.Completed), i+1, t.Title))
				if t.Description != "" {
					b.WriteString(" - " + t.Description)
				}
				b.WriteByte('\n')
			}
		}
	}

	conv.ClearTask(ActionListed)
	return Result{Text: strings.TrimRight(b.String(), "\n"), Severity: severity}
}

func (a *Assistant) handleCreate(ctx context.Context, conv *Context, in Intent) Result {
	if in.Title == "" {
		return Result{
			Text:     "Para crear una tarea dime su nombre, por ejemplo: \"crea una tarea llamada comprar pan\".",
			Severity: models.SeverityWarning,
		}
	}
	if err := validation.TaskTitle(in.Title); err != nil {
		return a.failureResult(ctx, err)
	}
	if err := validation.TaskDescription(in.Description); err != nil {
		return a.failureResult(ctx, err)
	}

	if in.IsVault && !a.vault.IsUnlocked() {
		return Result{Text: msgVaultLocked, Severity: models.SeverityWarning}
	}

	description := in.Description
	if description == "" && a.llm != nil {
		// Best effort; a failed or invalid suggestion never blocks the create.
		if d, err := a.llm.SuggestDescription(ctx, in.Title); err == nil && validation.TaskDescription(d) == nil {
			description = d
		} else if err != nil {
			a.logger.Debug(ctx, "description suggestion failed", "error", err)
		}
	}

	if in.IsVault {
		vt, err := a.vault.Add(ctx, in.Title, description, false)
		if err != nil {
			return a.failureResult(ctx, err)
		}
		conv.RememberVaultTask(vt.ID, ActionCreated)
		return Result{
			Text:     fmt.Sprintf("Tarea privada \"%s\" creada en la bóveda.", vt.Title),
			Severity: models.SeveritySuccess,
		}
	}

	t, err := a.tasks.Create(ctx, in.Title, description)
	if err != nil {
		return a.failureResult(ctx, err)
	}
	conv.RememberTask(t.ID, ActionCreated)
	return Result{
		Text:     fmt.Sprintf("Tarea \"%s\" creada (#%d).", t.Title, t.ID),
		Severity: models.SeveritySuccess,
	}
}

func (a *Assistant) handleUpdate(ctx context.Context, conv *Context, in Intent) Result {
	if !in.HasTaskID {
		return Result{Text: msgNoTaskRef, Severity: models.SeverityWarning}
	}
	if in.Updates.IsEmpty() && !in.Toggle {
		return Result{
			Text:     "Dime qué quieres cambiar, por ejemplo \"marca la tarea 2 como completada\" o \"renombra a otro título\".",
			Severity: models.SeverityWarning,
		}
	}

	if in.IsVault {
		if !a.vault.IsUnlocked() {
			return Result{Text: msgVaultLocked, Severity: models.SeverityWarning}
		}
		id, err := a.resolveVaultID(ctx, conv, in)
		if err != nil {
			return a.failureResult(ctx, err)
		}
		var vt models.VaultTask
		if in.Toggle && in.Updates.IsEmpty() {
			vt, err = a.vault.ToggleComplete(ctx, id)
		} else {
			vt, err = a.vault.Update(ctx, id, in.Updates)
		}
		if err != nil {
			return a.failureResult(ctx, err)
		}
		conv.RememberVaultTask(vt.ID, ActionUpdated)
		return Result{
			Text:     fmt.Sprintf("Tarea privada \"%s\" actualizada.", vt.Title),
			Severity: models.SeveritySuccess,
		}
	}

	if in.Toggle && in.Updates.IsEmpty() {
		// The task store has no toggle of its own; read the flag and
		// write its inverse.
		cur, err := a.tasks.Get(ctx, in.TaskID)
		if errors.Is(err, common.ErrorNotFound) {
			return Result{
				Text:     fmt.Sprintf("No encontré la tarea #%d.", in.TaskID),
				Severity: models.SeverityError,
			}
		}
		if err != nil {
			return a.failureResult(ctx, err)
		}
		done := !cur.Completed
		in.Updates.Completed = &done
	}

	t, err := a.tasks.Update(ctx, in.TaskID, in.Updates)
	if errors.Is(err, common.ErrorNotFound) {
		return Result{
			Text:     fmt.Sprintf("No encontré la tarea #%d.", in.TaskID),
			Severity: models.SeverityError,
		}
	}
	if err != nil {
		return a.failureResult(ctx, err)
	}
	conv.RememberTask(t.ID, ActionUpdated)
	return Result{
		Text:     fmt.Sprintf("Tarea #%d actualizada: \"%s\".", t.ID, t.Title),
		Severity: models.SeveritySuccess,
	}
}

// handleDelete is phase one of the two-phase delete: no store call is
// made here, the target is only remembered and the user is asked to
// confirm. An unknown id surfaces when the confirmed delete runs.
func (a *Assistant) handleDelete(ctx context.Context, conv *Context, in Intent) Result {
	if !in.HasTaskID {
		return Result{Text: msgNoTaskRef, Severity: models.SeverityWarning}
	}

	if in.IsVault {
		if !a.vault.IsUnlocked() {
			return Result{Text: msgVaultLocked, Severity: models.SeverityWarning}
		}
		id, err := a.resolveVaultID(ctx, conv, in)
		if err != nil {
			return a.failureResult(ctx, err)
		}
		conv.RememberVaultTask(id, ActionDeletePending)
		return Result{
			Text:     "¿Seguro que quieres eliminar esa tarea privada? Responde \"sí, confirmo\" para continuar.",
			Severity: models.SeverityWarning,
		}
	}

	conv.RememberTask(in.TaskID, ActionDeletePending)
	return Result{
		Text:     fmt.Sprintf("¿Seguro que quieres eliminar la tarea #%d? Responde \"sí, confirmo\" para continuar.", in.TaskID),
		Severity: models.SeverityWarning,
	}
}

// executePendingDelete is phase two: it runs only when the utterance right
// after the confirmation question is affirmative.
func (a *Assistant) executePendingDelete(ctx context.Context, conv *Context) Result {
	if conv.LastIsVault {
		if !a.vault.IsUnlocked() {
			conv.LastAction = ActionChatted
			return Result{Text: msgVaultLocked, Severity: models.SeverityWarning}
		}
		if err := a.vault.Delete(ctx, conv.LastVaultID); err != nil {
			conv.LastAction = ActionChatted
			return a.failureResult(ctx, err)
		}
		conv.ClearTask(ActionDeleted)
		return Result{Text: "Tarea privada eliminada.", Severity: models.SeveritySuccess}
	}

	id := conv.LastTaskID
	err := a.tasks.Delete(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		conv.LastAction = ActionChatted
		return Result{
			Text:     fmt.Sprintf("No encontré la tarea #%d.", id),
			Severity: models.SeverityError,
		}
	}
	if err != nil {
		conv.LastAction = ActionChatted
		return a.failureResult(ctx, err)
	}
	conv.ClearTask(ActionDeleted)
	return Result{
		Text:     fmt.Sprintf("Tarea #%d eliminada.", id),
		Severity: models.SeveritySuccess,
	}
}

func (a *Assistant) handleMove(ctx context.Context, conv *Context, in Intent) Result {
	if !in.HasTaskID {
		return Result{Text: msgNoTaskRef, Severity: models.SeverityWarning}
	}
	if in.FromContext && conv.LastIsVault {
		return Result{Text: "Esa tarea ya está en la bóveda.", Severity: models.SeverityWarning}
	}
	if !a.vault.IsUnlocked() {
		return Result{Text: msgVaultLocked, Severity: models.SeverityWarning}
	}
	return a.moveToVault(ctx, conv, in.TaskID)
}

// handleGranted is the "concedido" shortcut: move the last-mentioned
// normal task into the vault. Each precondition fails independently with
// a message and no mutation.
func (a *Assistant) handleGranted(ctx context.Context, conv *Context) Result {
	if !conv.HasTask() || conv.LastIsVault {
		return Result{
			Text:     "No hay una tarea reciente que mover. Menciona primero una tarea normal.",
			Severity: models.SeverityWarning,
		}
	}
	if !a.vault.IsUnlocked() {
		return Result{Text: msgVaultLocked, Severity: models.SeverityWarning}
	}
	return a.moveToVault(ctx, conv, conv.LastTaskID)
}

// moveToVault copies the task into the vault first and deletes the
// original second. The two writes are not atomic; if the delete fails the
// task stays in both stores and the reply says so.
func (a *Assistant) moveToVault(ctx context.Context, conv *Context, id int) Result {
	t, err := a.tasks.Get(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return Result{
			Text:     fmt.Sprintf("No encontré la tarea #%d.", id),
			Severity: models.SeverityError,
		}
	}
	if err != nil {
		return a.failureResult(ctx, err)
	}

	vt, err := a.vault.Add(ctx, t.Title, t.Description, t.Completed)
	if err != nil {
		return a.failureResult(ctx, err)
	}

	if err := a.tasks.Delete(ctx, id); err != nil {
		a.logger.Warn(ctx, "move left task duplicated", "task_id", id, "error", err)
		conv.RememberVaultTask(vt.ID, ActionMoved)
		return Result{
			Text:     fmt.Sprintf("La tarea \"%s\" se copió a la bóveda, pero no pude eliminar la original; ahora existe en ambas listas.", t.Title),
			Severity: models.SeverityWarning,
		}
	}

	conv.RememberVaultTask(vt.ID, ActionMoved)
	return Result{
		Text:     fmt.Sprintf("Tarea \"%s\" movida a la bóveda.", t.Title),
		Severity: models.SeveritySuccess,
	}
}

func (a *Assistant) handleChat(ctx context.Context, conv *Context, prompt string) Result {
	reply, err := a.llm.Complete(ctx, chatPrompt(prompt))
	if err != nil {
		return a.failureResult(ctx, err)
	}
	conv.LastAction = ActionChatted
	return Result{Text: reply, Severity: models.SeverityInfo}
}

func chatPrompt(userText string) string {
	return fmt.Sprintf(
		"Eres un asistente de productividad amable que ayuda a gestionar tareas. Responde en español, de forma breve.\n\nUsuario: %s",
		userText,
	)
}

// resolveVaultID turns an intent's vault reference into a concrete vault
// task id. A context fallback already carries the id; an explicit number
// is a 1-based position in the vault list.
func (a *Assistant) resolveVaultID(ctx context.Context, conv *Context, in Intent) (string, error) {
	if in.FromContext && conv.LastIsVault {
		return conv.LastVaultID, nil
	}
	tasks, err := a.vault.List(ctx)
	if err != nil {
		return "", err
	}
	if in.TaskID < 1 || in.TaskID > len(tasks) {
		return "", common.ErrorNotFound
	}
	return tasks[in.TaskID-1].ID, nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
