package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "users_email_key"`)))
	assert.True(t, isUniqueConstraintViolation(errors.New("ERROR: some failure (SQLSTATE 23505)")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset by peer")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`insert violates foreign key constraint "entries_user_id_fkey"`)))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("duplicate key value")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "description" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("ERROR: some failure (SQLSTATE 23502)")))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection reset by peer")))
}
