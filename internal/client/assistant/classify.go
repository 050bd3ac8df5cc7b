package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/johnp-05/sumativatr1/internal/client/models"
)

// Trigger vocabulary. The literals are Spanish on purpose: this mirrors
// the language the app's users speak, and matching is substring-based and
// intentionally permissive. Patterns are tested in a fixed priority order
// (list → create → update → delete → move → granted → chat); the first
// match wins, so utterances mixing trigger words resolve to the earliest
// intent checked.
var (
	listVerbs = []string{"muestra", "muéstra", "lista", "listar", "enséñame", "ensename", "ver"}

	createVerbs = []string{"crea", "crear", "añade", "anade", "agrega", "nueva tarea", "nuevo pendiente"}

	updateVerbs = []string{"actualiza", "modifica", "edita", "cambia", "marca", "márca", "renombra", "completa ", "alterna"}

	deleteVerbs = []string{"elimina", "borra", "quita", "suprime"}

	moveVerbs = []string{"mueve", "mover", "pasa", "guarda", "mete"}

	vaultWords = []string{"bóveda", "boveda", "vault", "privada", "secreta"}

	grantedWord = "concedido"

	taskNoun = "tarea"
)

var (
	idHashRe = regexp.MustCompile(`#(\d+)`)
	idWordRe = regexp.MustCompile(`tarea\s+(?:n[uú]mero\s+)?(\d+)`)
)

// Classify matches the lower-cased utterance against the ordered rules and
// returns the tagged intent. conv supplies the fallback task reference for
// elliptical commands ("actualízala", "elimina la última").
func Classify(text string, conv *Context) Intent {
	t := strings.ToLower(text)

	switch {
	case containsAny(t, listVerbs) && strings.Contains(t, taskNoun):
		return Intent{
			Kind:         KindListTasks,
			IncludeVault: containsAny(t, vaultWords),
		}

	case containsAny(t, createVerbs):
		title, description := extractCreateFields(t)
		return Intent{
			Kind:        KindCreateTask,
			Title:       title,
			Description: description,
			IsVault:     containsAny(t, vaultWords),
		}

	case containsAny(t, updateVerbs):
		in := Intent{
			Kind:    KindUpdateTask,
			IsVault: containsAny(t, vaultWords),
			Updates: extractUpdates(t),
			Toggle:  strings.Contains(t, "alterna") || strings.Contains(t, "el estado"),
		}
		in.TaskID, in.HasTaskID, in.FromContext = resolveTaskRef(t, conv, &in.IsVault)
		return in

	case containsAny(t, deleteVerbs):
		in := Intent{
			Kind:    KindDeleteTask,
			IsVault: containsAny(t, vaultWords),
		}
		in.TaskID, in.HasTaskID, in.FromContext = resolveTaskRef(t, conv, &in.IsVault)
		return in

	case containsAny(t, moveVerbs) && containsAny(t, vaultWords):
		in := Intent{Kind: KindMoveToVault}
		ignored := false
		in.TaskID, in.HasTaskID, in.FromContext = resolveTaskRef(t, conv, &ignored)
		return in

	case strings.Contains(t, grantedWord):
		return Intent{Kind: KindGrantedCommand}

	default:
		return Intent{Kind: KindGeneralChat}
	}
}

// IsDeleteConfirmation reports whether a general-chat utterance confirms a
// pending deletion: it must contain an affirmative token AND "confirmo".
func IsDeleteConfirmation(text string) bool {
	t := strings.ToLower(text)
	return strings.Contains(t, "confirmo") && (strings.Contains(t, "sí") || strings.Contains(t, "si"))
}

func containsAny(t string, words []string) bool {
	for _, w := range words {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}

// resolveTaskRef extracts a numeric task reference ("#5" or "tarea 5") and
// falls back to the conversation context when none is present. On context
// fallback the vault flag follows the remembered task's store.
func resolveTaskRef(t string, conv *Context, isVault *bool) (id int, has bool, fromContext bool) {
	if n, ok := extractTaskID(t); ok {
		return n, true, false
	}
	if conv != nil && conv.HasTask() {
		*isVault = conv.LastIsVault
		return conv.LastTaskID, conv.HasTask(), true
	}
	return 0, false, false
}

func extractTaskID(t string) (int, bool) {
	for _, re := range []*regexp.Regexp{idHashRe, idWordRe} {
		if m := re.FindStringSubmatch(t); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil && n > 0 {
				return n, true
			}
		}
	}
	return 0, false
}

// Extraction markers. Longer phrases come first so they win over their
// substrings.
var (
	createTitleMarkers = []string{
		"llamada ", "llamado ", "titulada ", "titulado ", "que diga ", "tarea ",
	}
	descriptionMarkers = []string{
		"con descripción ", "con descripcion ",
		"descripción ", "descripcion ",
		"detalles ", "con ",
	}
	titleCutMarkers = append(descriptionMarkers,
		" en la bóveda", " en la boveda",
		" a la bóveda", " a la boveda",
		" para la bóveda", " para la boveda",
		" de la bóveda", " de la boveda",
	)
	updateTitleMarkers = []string{
		"que diga ", "título a ", "titulo a ",
		"nuevo título ", "nuevo titulo ",
		"renombra a ", "titulada ", "llamada ",
	}
	completedWords = []string{"completada", "completado", "terminada", "terminado", "hecha", "hecho"}
	pendingWords   = []string{"pendiente", "incompleta", "incompleto", "sin terminar", "sin hacer"}
)

func extractCreateFields(t string) (title, description string) {
	if rest, ok := textAfter(t, createTitleMarkers); ok {
		title = cutAtAny(rest, titleCutMarkers)
	}
	if rest, ok := textAfter(t, descriptionMarkers); ok {
		description = strings.TrimSpace(rest)
	}
	return cleanFragment(title), cleanFragment(description)
}

func extractUpdates(t string) models.TaskUpdate {
	var u models.TaskUpdate

	switch {
	case containsAny(t, completedWords):
		done := true
		u.Completed = &done
	case containsAny(t, pendingWords):
		done := false
		u.Completed = &done
	}

	if rest, ok := textAfter(t, updateTitleMarkers); ok {
		if title := cleanFragment(cutAtAny(rest, descriptionMarkers)); title != "" {
			u.Title = &title
		}
	}

	if rest, ok := textAfter(t, descriptionMarkers[:len(descriptionMarkers)-1]); ok {
		// "cambia la descripción de la tarea 2 a <texto>" puts the task
		// reference between the marker and the new text; skip past it.
		if strings.HasPrefix(rest, "de la tarea") {
			if _, after, found := strings.Cut(rest, " a "); found {
				rest = after
			}
		}
		if d := cleanFragment(rest); d != "" {
			u.Description = &d
		}
	}

	return u
}

// textAfter returns the trimmed remainder after the first marker found in
// the text, trying markers in priority order.
func textAfter(t string, markers []string) (string, bool) {
	for _, m := range markers {
		if idx := strings.Index(t, m); idx >= 0 {
			return strings.TrimSpace(t[idx+len(m):]), true
		}
	}
	return "", false
}

// cutAtAny truncates the fragment before the earliest occurrence of any
// marker.
func cutAtAny(t string, markers []string) string {
	cut := len(t)
	for _, m := range markers {
		if idx := strings.Index(t, m); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(t[:cut])
}

func cleanFragment(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'«»`)
}
