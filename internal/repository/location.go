package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/location_tracker/internal/models"
	"github.com/shenikar/location_tracker/internal/service"
)

// DB - минимальный контракт пула соединений, который использует репозиторий.
// Ему удовлетворяют и *pgxpool.Pool, и pgxmock в тестах.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

const locationColumns = "id, phone_number, email, latitude, longitude, address, accuracy, speed, recorded_at"

type LocationRepository struct {
	db          DB
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewLocationRepository(db DB, redisClient *redis.Client, cacheTTL time.Duration) service.LocationRepository {
	return &LocationRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Insert сохраняет новую запись о местоположении и заполняет присвоенные
// базой id и recorded_at. Записи неизменяемы, UPDATE для locations нет.
func (r *LocationRepository) Insert(ctx context.Context, loc *models.Location) error {
	query := `
		INSERT INTO locations (phone_number, email, latitude, longitude, address, accuracy, speed)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, recorded_at;
	`
	err := r.db.QueryRow(ctx, query,
		loc.PhoneNumber,
		loc.Email,
		loc.Latitude,
		loc.Longitude,
		loc.Address,
		loc.Accuracy,
		loc.Speed,
	).Scan(&loc.ID, &loc.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}
	return nil
}

// GetLatest возвращает самую свежую запись по фильтру идентификатора.
// Отсутствие записей не является ошибкой: возвращается (nil, nil).
func (r *LocationRepository) GetLatest(ctx context.Context, filter models.IdentifierFilter) (*models.Location, error) {
	pred, err := identifierPredicate(filter)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Select(locationColumns).
		From("locations").
		Where(pred).
		OrderBy("recorded_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build latest query: %w", err)
	}

	loc := &models.Location{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&loc.ID,
		&loc.PhoneNumber,
		&loc.Email,
		&loc.Latitude,
		&loc.Longitude,
		&loc.Address,
		&loc.Accuracy,
		&loc.Speed,
		&loc.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest location: %w", err)
	}
	return loc, nil
}

// GetHistory возвращает записи по фильтру идентификатора, новые первыми.
func (r *LocationRepository) GetHistory(ctx context.Context, filter models.IdentifierFilter, limit int) ([]*models.Location, error) {
	pred, err := identifierPredicate(filter)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Select(locationColumns).
		From("locations").
		Where(pred).
		OrderBy("recorded_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	for rows.Next() {
		loc := &models.Location{}
		err := rows.Scan(
			&loc.ID,
			&loc.PhoneNumber,
			&loc.Email,
			&loc.Latitude,
			&loc.Longitude,
			&loc.Address,
			&loc.Accuracy,
			&loc.Speed,
			&loc.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error history iteration: %w", err)
	}
	return locations, nil
}

// GetStats возвращает агрегаты по записям пользователя. NULL в accuracy не
// учитывается в среднем; при нуле записей агрегаты остаются nil.
func (r *LocationRepository) GetStats(ctx context.Context, filter models.IdentifierFilter) (*models.LocationStats, error) {
	pred, err := identifierPredicate(filter)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Select("COUNT(*)", "AVG(accuracy)", "MIN(latitude)", "MAX(latitude)").
		From("locations").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build stats query: %w", err)
	}

	stats := &models.LocationStats{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&stats.Total,
		&stats.AvgAccuracy,
		&stats.MinLat,
		&stats.MaxLat,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get location stats: %w", err)
	}
	return stats, nil
}

// GetRecentUsers возвращает различные пары (телефон, email) из последних limit
// записей, сначала недавно активные. Это приблизительный список "кого видели":
// одна и та же пара может вытесняться записями других пользователей из окна.
func (r *LocationRepository) GetRecentUsers(ctx context.Context, limit int) ([]*models.UserIdentity, error) {
	query := `
		SELECT phone_number, email, MAX(recorded_at) AS last_seen
		FROM (
			SELECT phone_number, email, recorded_at
			FROM locations
			ORDER BY recorded_at DESC
			LIMIT $1
		) recent
		GROUP BY phone_number, email
		ORDER BY last_seen DESC;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.UserIdentity, 0)
	for rows.Next() {
		user := &models.UserIdentity{}
		var lastSeen time.Time
		if err := rows.Scan(&user.PhoneNumber, &user.Email, &lastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error users iteration: %w", err)
	}
	return users, nil
}

// Delete удаляет запись по id. Количество затронутых строк возвращается
// вызывающей стороне только для логирования: удаление несуществующего id не
// отличается от удаления существующего.
func (r *LocationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM locations WHERE id = $1;", id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete location: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Ping проверяет доступность базы данных (для health-check)
func (r *LocationRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// latestCacheKeys возвращает ключи кэша последней записи, которые затрагивает
// фильтр или вставка с данной парой идентификаторов.
func latestCacheKeys(phoneNumber, email string) []string {
	keys := make([]string, 0, 3)
	if phoneNumber != "" {
		keys = append(keys, fmt.Sprintf("latest_location:phone:%s", phoneNumber))
	}
	if email != "" {
		keys = append(keys, fmt.Sprintf("latest_location:email:%s", email))
	}
	if phoneNumber != "" && email != "" {
		keys = append(keys, fmt.Sprintf("latest_location:both:%s|%s", phoneNumber, email))
	}
	return keys
}

// latestCacheKey - ключ кэша для конкретного фильтра запроса.
func latestCacheKey(filter models.IdentifierFilter) string {
	keys := latestCacheKeys(filter.PhoneNumber, filter.Email)
	// Последний ключ самый специфичный: both, если заданы оба поля
	return keys[len(keys)-1]
}

// GetLatestFromCache пытается получить последнюю запись из Redis
func (r *LocationRepository) GetLatestFromCache(ctx context.Context, filter models.IdentifierFilter) (*models.Location, error) {
	if filter.IsEmpty() {
		return nil, errEmptyIdentifierFilter
	}

	val, err := r.redisClient.Get(ctx, latestCacheKey(filter)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest location from cache: %w", err)
	}

	loc := &models.Location{}
	if err := json.Unmarshal(val, loc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal latest location from cache: %w", err)
	}
	return loc, nil
}

// SetLatestCache сохраняет последнюю запись в Redis с TTL репозитория
func (r *LocationRepository) SetLatestCache(ctx context.Context, filter models.IdentifierFilter, loc *models.Location) error {
	if filter.IsEmpty() {
		return errEmptyIdentifierFilter
	}

	val, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal latest location for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, latestCacheKey(filter), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set latest location in cache: %w", err)
	}
	return nil
}

// InvalidateLatestCache удаляет из Redis ключи последней записи, относящиеся
// к данной паре идентификаторов. Вызывается после вставки новой записи.
// Удаление по id инвалидацию не выполняет: id не несет идентификатора,
// устаревание ограничено TTL.
func (r *LocationRepository) InvalidateLatestCache(ctx context.Context, phoneNumber, email string) error {
	keys := latestCacheKeys(phoneNumber, email)
	if len(keys) == 0 {
		return nil
	}
	if err := r.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate latest location cache: %w", err)
	}
	return nil
}
