package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	UnlockVault(ctx context.Context) error
	LockVault()
	ResetVault(ctx context.Context) error
	ShowHistory(ctx context.Context) error
	ClearHistory(ctx context.Context) error
	Chat(ctx context.Context, text string) error
}

// runREPL starts the chat loop. Lines starting with "/" are commands;
// everything else goes to the assistant. The loop exits on scanner EOF or
// on /salir.
//
// Commands:
//
//	/ayuda      — show available commands
//	/bóveda     — unlock the vault (asks for the PIN; first use creates it)
//	/bloquear   — lock the vault for this session
//	/reiniciar  — wipe the vault (PIN and private tasks) after confirmation
//	/historial  — show recent chat messages; "/historial limpiar" wipes them
//	/salir      — leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tareas %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "/") {
			_ = a.Chat(ctx, line)
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "/ayuda":
			printlnFn("Comandos: /bóveda (desbloquear), /bloquear, /reiniciar, /historial [limpiar], /salir")
			printlnFn("Cualquier otra cosa que escribas se la diré al asistente.")

		case "/bóveda", "/boveda":
			_ = a.UnlockVault(ctx)

		case "/bloquear":
			a.LockVault()

		case "/reiniciar":
			_ = a.ResetVault(ctx)

		case "/historial":
			if len(fields) > 1 && fields[1] == "limpiar" {
				_ = a.ClearHistory(ctx)
			} else {
				_ = a.ShowHistory(ctx)
			}

		case "/salir":
			printlnFn("¡Hasta luego!")
			return

		default:
			printlnFn("Comando desconocido:", line)
		}
	}
}
