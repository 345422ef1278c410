package ornament

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound - орнамента с таким id нет в рабочей коллекции.
	ErrNotFound = errors.New("ornament not found")
	// ErrSaveInFlight - предыдущее сохранение ещё не завершилось.
	ErrSaveInFlight = errors.New("save already in progress")
	// ErrNotConfirmed - деструктивное действие отклонено оператором.
	ErrNotConfirmed = errors.New("action not confirmed")
	// ErrDuplicateID - орнамент с таким id уже есть в коллекции.
	ErrDuplicateID = errors.New("duplicate ornament id")
)

// FieldError - одно нарушение в конкретной записи батча.
type FieldError struct {
	Index  int    `json:"index"`
	ID     string `json:"id"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (fe FieldError) String() string {
	return fmt.Sprintf("ornament #%d (id=%q): %s %s", fe.Index, fe.ID, fe.Field, fe.Reason)
}

// ValidationError - батч отклонён целиком, Problems перечисляет все нарушения.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}
	return "invalid ornaments: " + strings.Join(parts, "; ")
}
