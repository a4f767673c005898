package service

import (
	"errors"

	"anoa.com/classsite/pkg/apperror"
	"gorm.io/gorm"
)

// Partial-update policy, applied uniformly: a field absent from the body (or
// JSON null, indistinguishable through pointers) preserves the stored value;
// an explicit empty string clears an optional field.

// mergeRequired overwrites a required field only when the body carried it.
func mergeRequired(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// mergeOptional applies the policy to a nullable column.
func mergeOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = nil
		return
	}
	*dst = src
}

func mergeInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// orZero applies the create-time default for integer order fields.
func orZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// emptyToNil normalizes optional create-time fields: empty string is stored
// as null.
func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

// translateNotFound maps the store's missing-row error to the 404 taxonomy
// so "no such id" never surfaces as a 500.
func translateNotFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(entity)
	}
	return err
}

// sortColumn resolves a requested sort field against the resource's
// whitelist; anything unknown falls back to creation time.
func sortColumn(allowed map[string]string, requested string) string {
	if col, ok := allowed[requested]; ok {
		return col
	}
	return "created_at"
}
