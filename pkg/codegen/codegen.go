// Package codegen produces the human-readable codes records get when the
// client does not supply one, e.g. LP-3F9A01C2.
package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"farmbook/pkg/apperr"
	"farmbook/pkg/validate"
)

const maxAttempts = 8

var ErrExhausted = errors.New("codegen: no free code found")

// TakenFunc reports whether code is already used.
type TakenFunc func(code string) (bool, error)

// Generate returns prefix-XXXXXXXX with a random uppercase hex suffix that
// taken reports as free.
func Generate(prefix string, taken TakenFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code := candidate(prefix)
		used, err := taken(code)
		if err != nil {
			return "", fmt.Errorf("codegen: check %s: %w", code, err)
		}
		if !used {
			return code, nil
		}
	}
	return "", ErrExhausted
}

func candidate(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:8])
}

// Assign returns the client-supplied code when it is free, recording a field
// error on ve when it is not, and generates one when nothing was supplied.
func Assign(ve *apperr.ValidationError, field, prefix string, supplied *string, taken TakenFunc) (string, error) {
	if supplied == nil || strings.TrimSpace(*supplied) == "" {
		return Generate(prefix, taken)
	}
	if err := Check(ve, field, *supplied, taken); err != nil {
		return "", err
	}
	return *supplied, nil
}

// Check records validate.Taken on ve when code is in use.
func Check(ve *apperr.ValidationError, field, code string, taken TakenFunc) error {
	if ve.Has(field) {
		return nil
	}
	used, err := taken(code)
	if err != nil {
		return err
	}
	if used {
		ve.Add(field, validate.Taken(field))
	}
	return nil
}
