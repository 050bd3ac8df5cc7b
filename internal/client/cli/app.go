package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/johnp-05/sumativatr1/internal/client/assistant"
	"github.com/johnp-05/sumativatr1/internal/client/config"
	"github.com/johnp-05/sumativatr1/internal/client/gemini"
	"github.com/johnp-05/sumativatr1/internal/client/history"
	"github.com/johnp-05/sumativatr1/internal/client/models"
	"github.com/johnp-05/sumativatr1/internal/client/securestore"
	"github.com/johnp-05/sumativatr1/internal/client/taskstore"
	"github.com/johnp-05/sumativatr1/internal/client/vault"
	"github.com/johnp-05/sumativatr1/internal/logging"
)

// vaultService is the vault surface the CLI drives directly; the
// assistant holds its own narrower view.
type vaultService interface {
	HasPIN(ctx context.Context) (bool, error)
	Unlock(ctx context.Context, pin string) (bool, error)
	Lock()
	IsUnlocked() bool
	Reset(ctx context.Context) error
}

type App struct {
	config    *config.Config
	assistant *assistant.Assistant
	vault     vaultService
	conv      *assistant.Context
	logger    logging.Logger

	// Chat transcript. Kept in memory for the session and mirrored to
	// the sqlite history database, best effort.
	messages []models.Message
	history  *history.Repository
	db       io.Closer

	reader *bufio.Reader
}

// NewApp wires the whole client: the encrypted local store, the vault on
// top of it, the REST task store, the Gemini client and the assistant.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewDefault()

	store, err := securestore.NewFileStore(c.DataDir)
	if err != nil {
		return nil, err
	}

	v := vault.New(store)
	tasks := taskstore.NewRESTStore(c.ServerEndpointAddr, c.RequestTimeout)
	llm := gemini.New(c.GeminiAPIKey, c.GeminiModel)

	db, hist, err := history.Open(context.Background(), filepath.Join(c.DataDir, "history.db"))
	if err != nil {
		return nil, err
	}

	return &App{
		config:    c,
		assistant: assistant.New(tasks, v, llm, logger),
		vault:     v,
		conv:      &assistant.Context{},
		logger:    logger,
		history:   hist,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	a.Root(ctx)
}

// chat runs one assistant turn under the configured timeout. The REPL
// is single threaded, so turns never overlap and the assistant core
// carries no locks of its own.
func (a *App) chat(ctx context.Context, text string) models.Message {
	a.appendMessage(models.RoleUser, text, models.SeverityInfo)

	tctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	res := a.assistant.Handle(tctx, a.conv, text)
	return a.appendMessage(models.RoleAssistant, res.Text, res.Severity)
}

func (a *App) appendMessage(role models.Role, content string, severity models.Severity) models.Message {
	m := models.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	a.messages = append(a.messages, m)

	if a.history != nil {
		if err := a.history.Append(context.Background(), m); err != nil {
			a.logger.Warn(context.Background(), "failed to persist message", "error", err)
		}
	}
	return m
}
