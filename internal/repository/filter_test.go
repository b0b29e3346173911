package repository

import (
	"testing"

	"github.com/shenikar/location_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierPredicate_PhoneOnly(t *testing.T) {
	pred, err := identifierPredicate(models.IdentifierFilter{PhoneNumber: "+79990001122"})
	require.NoError(t, err)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "phone_number = ?", sql)
	assert.Equal(t, []interface{}{"+79990001122"}, args)
}

func TestIdentifierPredicate_EmailOnly(t *testing.T) {
	pred, err := identifierPredicate(models.IdentifierFilter{Email: "user@example.com"})
	require.NoError(t, err)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "email = ?", sql)
	assert.Equal(t, []interface{}{"user@example.com"}, args)
}

func TestIdentifierPredicate_BothAreWideningOr(t *testing.T) {
	// Оба идентификатора дают расширяющее ИЛИ, а не И: запись, совпавшая
	// только по email, тоже попадает в выборку
	pred, err := identifierPredicate(models.IdentifierFilter{
		PhoneNumber: "+79990001122",
		Email:       "user@example.com",
	})
	require.NoError(t, err)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(phone_number = ? OR email = ?)", sql)
	assert.Equal(t, []interface{}{"+79990001122", "user@example.com"}, args)
}

func TestIdentifierPredicate_EmptyFilter(t *testing.T) {
	// Пустой фильтр отклоняется до построения запроса
	_, err := identifierPredicate(models.IdentifierFilter{})
	require.ErrorIs(t, err, errEmptyIdentifierFilter)
}
