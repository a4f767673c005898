package service

import (
	"testing"

	"anoa.com/classsite/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestMergeRequired(t *testing.T) {
	dst := "old"
	mergeRequired(&dst, nil)
	assert.Equal(t, "old", dst)

	mergeRequired(&dst, strPtr("new"))
	assert.Equal(t, "new", dst)
}

func TestMergeOptional(t *testing.T) {
	stored := strPtr("kept")

	mergeOptional(&stored, nil)
	assert.Equal(t, "kept", *stored)

	mergeOptional(&stored, strPtr(""))
	assert.Nil(t, stored)

	mergeOptional(&stored, strPtr("set"))
	assert.Equal(t, "set", *stored)
}

func TestEmptyToNil(t *testing.T) {
	assert.Nil(t, emptyToNil(nil))
	assert.Nil(t, emptyToNil(strPtr("")))
	assert.Equal(t, "x", *emptyToNil(strPtr("x")))
}

func TestOrZero(t *testing.T) {
	assert.Equal(t, 0, orZero(nil))
	three := 3
	assert.Equal(t, 3, orZero(&three))
}

func TestTranslateNotFound(t *testing.T) {
	err := translateNotFound(gorm.ErrRecordNotFound, "Teacher")
	assert.Equal(t, "Teacher not found", err.Error())
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	passthrough := translateNotFound(assert.AnError, "Teacher")
	assert.Equal(t, assert.AnError, passthrough)
}

func TestSortColumn(t *testing.T) {
	allowed := map[string]string{"order": "display_order", "createdAt": "created_at"}

	assert.Equal(t, "display_order", sortColumn(allowed, "order"))
	assert.Equal(t, "created_at", sortColumn(allowed, ""))
	assert.Equal(t, "created_at", sortColumn(allowed, "password_hash"))
}
