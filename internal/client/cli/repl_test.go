package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	unlockCalls  int
	lockCalls    int
	resetCalls   int
	historyCalls int
	clearCalls   int
	chats        []string
}

func (s *stubExec) UnlockVault(ctx context.Context) error {
	s.unlockCalls++
	return nil
}

func (s *stubExec) LockVault() {
	s.lockCalls++
}

func (s *stubExec) ResetVault(ctx context.Context) error {
	s.resetCalls++
	return nil
}

func (s *stubExec) ShowHistory(ctx context.Context) error {
	s.historyCalls++
	return nil
}

func (s *stubExec) ClearHistory(ctx context.Context) error {
	s.clearCalls++
	return nil
}

func (s *stubExec) Chat(ctx context.Context, text string) error {
	s.chats = append(s.chats, text)
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	return &lines
}

func scannerFromLines(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)
	stub := &stubExec{}

	runREPL(context.Background(), stub, func() string { return "" },
		scannerFromLines("/ayuda", "/bóveda", "/bloquear", "/reiniciar", "/historial", "/historial limpiar", "/salir"))

	assert.Equal(t, 1, stub.unlockCalls)
	assert.Equal(t, 1, stub.lockCalls)
	assert.Equal(t, 1, stub.resetCalls)
	assert.Equal(t, 1, stub.historyCalls)
	assert.Equal(t, 1, stub.clearCalls)
	assert.Empty(t, stub.chats)
	assert.Contains(t, strings.Join(*out, ""), "¡Hasta luego!")
}

func TestRunREPL_FreeTextGoesToAssistant(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}

	runREPL(context.Background(), stub, func() string { return "" },
		scannerFromLines("crea una tarea llamada comprar pan", "", "hola"))

	assert.Equal(t, []string{"crea una tarea llamada comprar pan", "hola"}, stub.chats)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := captureOutput(t)
	stub := &stubExec{}

	runREPL(context.Background(), stub, func() string { return "" },
		scannerFromLines("/nada"))

	assert.Contains(t, strings.Join(*out, ""), "Comando desconocido")
	assert.Empty(t, stub.chats)
}

func TestRunREPL_AccentlessVaultCommand(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}

	runREPL(context.Background(), stub, func() string { return "" },
		scannerFromLines("/boveda"))

	assert.Equal(t, 1, stub.unlockCalls)
}
