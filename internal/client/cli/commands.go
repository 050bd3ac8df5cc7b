package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/johnp-05/sumativatr1/internal/client/models"
)

// Root runs the interactive session until the user leaves or stdin closes.
func (a *App) Root(ctx context.Context) {
	printlnFn("Asistente de tareas. Escribe /ayuda para ver los comandos.")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.vault.IsUnlocked() {
		return "[bóveda abierta]"
	}
	return "[bóveda cerrada]"
}

// UnlockVault asks for the PIN and opens the vault. On a vault that was
// never initialized the entered PIN becomes the credential.
func (a *App) UnlockVault(ctx context.Context) error {
	hadPIN, err := a.vault.HasPIN(ctx)
	if err != nil {
		a.logger.Error(ctx, "vault pin lookup failed", "error", err)
		printlnFn("No pude acceder a la bóveda.")
		return err
	}

	pin, err := GetPIN(os.Stdout)
	if err != nil {
		return err
	}

	ok, err := a.vault.Unlock(ctx, pin)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if !ok {
		printlnFn("PIN incorrecto.")
		return nil
	}

	if hadPIN {
		printlnFn("Bóveda desbloqueada.")
	} else {
		printlnFn("Bóveda creada y desbloqueada. Recuerda tu PIN: no hay forma de recuperarlo.")
	}
	return nil
}

func (a *App) LockVault() {
	a.vault.Lock()
	printlnFn("Bóveda bloqueada.")
}

// ResetVault wipes the PIN and every private task after an explicit
// confirmation phrase. There is no recovery path.
func (a *App) ResetVault(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Esto borrará el PIN y todas las tareas privadas. Escribe BORRAR para confirmar.", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "BORRAR" {
		printlnFn("Cancelado.")
		return nil
	}

	if err := a.vault.Reset(ctx); err != nil {
		a.logger.Error(ctx, "vault reset failed", "error", err)
		printlnFn("No pude reiniciar la bóveda.")
		return err
	}
	printlnFn("Bóveda reiniciada.")
	return nil
}

const historyPageSize = 20

// ShowHistory prints the most recent chat messages from the local
// transcript database.
func (a *App) ShowHistory(ctx context.Context) error {
	if a.history == nil {
		printlnFn("El historial no está disponible.")
		return nil
	}

	msgs, err := a.history.Recent(ctx, historyPageSize)
	if err != nil {
		a.logger.Error(ctx, "history lookup failed", "error", err)
		printlnFn("No pude leer el historial.")
		return err
	}
	if len(msgs) == 0 {
		printlnFn("Todavía no hay mensajes.")
		return nil
	}

	for _, m := range msgs {
		prefix := "tú"
		if m.Role == models.RoleAssistant {
			prefix = "asistente"
		}
		printlnFn(prefix + ": " + renderMessage(m))
	}
	return nil
}

// ClearHistory wipes the stored transcript and the in-memory mirror.
func (a *App) ClearHistory(ctx context.Context) error {
	if a.history == nil {
		printlnFn("El historial no está disponible.")
		return nil
	}

	if err := a.history.Clear(ctx); err != nil {
		a.logger.Error(ctx, "history clear failed", "error", err)
		printlnFn("No pude limpiar el historial.")
		return err
	}
	a.messages = nil
	printlnFn("Historial borrado.")
	return nil
}

// Chat forwards free text to the assistant and prints the reply.
func (a *App) Chat(ctx context.Context, text string) error {
	m := a.chat(ctx, text)
	printlnFn(renderMessage(m))
	return nil
}

func renderMessage(m models.Message) string {
	switch m.Severity {
	case models.SeveritySuccess:
		return "✔ " + m.Content
	case models.SeverityWarning:
		return "⚠ " + m.Content
	case models.SeverityError:
		return "✖ " + m.Content
	default:
		return m.Content
	}
}
