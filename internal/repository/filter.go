package repository

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/shenikar/location_tracker/internal/models"
)

// psql - построитель запросов с плейсхолдерами $1, $2 ... для pgx
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var errEmptyIdentifierFilter = errors.New("identifier filter is empty")

// identifierPredicate строит условие WHERE по фильтру идентификатора.
// Если заданы и телефон, и email, условие расширяющее: phone_number = ? OR
// email = ?. Пустой фильтр - ошибка, до запроса к базе дело не доходит.
func identifierPredicate(f models.IdentifierFilter) (sq.Sqlizer, error) {
	switch {
	case f.PhoneNumber != "" && f.Email != "":
		return sq.Or{
			sq.Eq{"phone_number": f.PhoneNumber},
			sq.Eq{"email": f.Email},
		}, nil
	case f.PhoneNumber != "":
		return sq.Eq{"phone_number": f.PhoneNumber}, nil
	case f.Email != "":
		return sq.Eq{"email": f.Email}, nil
	default:
		return nil, errEmptyIdentifierFilter
	}
}
