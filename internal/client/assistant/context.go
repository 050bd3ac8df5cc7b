package assistant

// Action tags what the assistant last did, so elliptical follow-ups and
// the delete confirmation can resolve against it.
type Action string

const (
	ActionNone          Action = ""
	ActionListed        Action = "listed"
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionDeletePending Action = "delete_pending"
	ActionDeleted       Action = "deleted"
	ActionMoved         Action = "moved"
	ActionChatted       Action = "chatted"
)

// Context is the conversation state threaded through successive calls to
// Handle. The caller owns its lifetime; a fresh Context starts a new
// conversation. It is overwritten on each classified intent and is not
// safe for concurrent use.
type Context struct {
	// Last-mentioned task. LastTaskID is a normal-store id (0 = unset);
	// LastVaultID is a vault-store id ("" = unset). LastIsVault says which
	// one is current.
	LastTaskID  int
	LastVaultID string
	LastIsVault bool

	LastAction Action
}

// HasTask reports whether a last-mentioned task reference exists.
func (c *Context) HasTask() bool {
	if c.LastIsVault {
		return c.LastVaultID != ""
	}
	return c.LastTaskID != 0
}

// RememberTask records a normal task as the last-mentioned one.
func (c *Context) RememberTask(id int, action Action) {
	c.LastTaskID = id
	c.LastVaultID = ""
	c.LastIsVault = false
	c.LastAction = action
}

// RememberVaultTask records a vault task as the last-mentioned one.
func (c *Context) RememberVaultTask(id string, action Action) {
	c.LastTaskID = 0
	c.LastVaultID = id
	c.LastIsVault = true
	c.LastAction = action
}

// ClearTask drops the task reference, keeping only the action tag.
func (c *Context) ClearTask(action Action) {
	c.LastTaskID = 0
	c.LastVaultID = ""
	c.LastIsVault = false
	c.LastAction = action
}
