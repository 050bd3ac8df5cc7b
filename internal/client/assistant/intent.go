package assistant

import "github.com/johnp-05/sumativatr1/internal/client/models"

// Kind identifies the classified purpose of a user utterance.
type Kind int

const (
	KindGeneralChat Kind = iota
	KindListTasks
	KindCreateTask
	KindUpdateTask
	KindDeleteTask
	KindMoveToVault
	KindGrantedCommand
)

func (k Kind) String() string {
	switch k {
	case KindListTasks:
		return "list_tasks"
	case KindCreateTask:
		return "create_task"
	case KindUpdateTask:
		return "update_task"
	case KindDeleteTask:
		return "delete_task"
	case KindMoveToVault:
		return "move_to_vault"
	case KindGrantedCommand:
		return "granted_command"
	default:
		return "general_chat"
	}
}

// Intent is the tagged result of classification. Only the fields relevant
// to the Kind are populated; loose extraction means any of them may be
// absent and handlers must cope.
type Intent struct {
	Kind Kind

	// List.
	IncludeVault bool

	// Create. An empty Title is a valid outcome the handler rejects with
	// an instructive response.
	Title       string
	Description string

	// Update / delete / move target. HasTaskID is false when no number
	// was found; FromContext marks a fallback to the conversation context.
	TaskID      int
	HasTaskID   bool
	FromContext bool

	// Whether the utterance targets the vault.
	IsVault bool

	// Update payload. Toggle flips the completed flag when the utterance
	// asks for a state change without naming the target state.
	Updates models.TaskUpdate
	Toggle  bool
}
