// Package validation checks user-supplied task fields and vault PINs.
// Messages are user-facing Spanish strings; all errors wrap
// common.ErrValidation so callers can match them with errors.Is.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/johnp-05/sumativatr1/internal/common"
)

const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
	PINLen            = 6
)

// Alphanumeric plus Spanish letters and basic punctuation.
var (
	alphanumericRe = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑüÜ\s.,!?()-]+$`)
	pinRe          = regexp.MustCompile(`^[0-9]{6}$`)
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}

// TaskTitle validates a task title: non-empty, 3–100 characters, restricted
// character set.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return validationError("el título no puede estar vacío")
	}
	if !alphanumericRe.MatchString(title) {
		return validationError("solo se permiten caracteres alfanuméricos y signos de puntuación básicos")
	}
	n := utf8.RuneCountInString(title)
	if n < TitleMinLen {
		return validationError("el título debe tener al menos 3 caracteres")
	}
	if n > TitleMaxLen {
		return validationError("el título no puede exceder los 100 caracteres")
	}
	return nil
}

// TaskDescription validates an optional description: empty is fine, at most
// 500 characters otherwise.
func TaskDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return nil
	}
	if !alphanumericRe.MatchString(description) {
		return validationError("solo se permiten caracteres alfanuméricos y signos de puntuación básicos")
	}
	if utf8.RuneCountInString(description) > DescriptionMaxLen {
		return validationError("la descripción no puede exceder los 500 caracteres")
	}
	return nil
}

// PIN validates a vault PIN: exactly six digits.
func PIN(pin string) error {
	if !pinRe.MatchString(pin) {
		return fmt.Errorf("%w: el PIN debe tener exactamente 6 dígitos", common.ErrInvalidPIN)
	}
	return nil
}
