package service

import (
	"context"
	"fmt"

	"github.com/shenikar/location_tracker/internal/config"
	"github.com/shenikar/location_tracker/internal/geo"
	"github.com/shenikar/location_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=location.go -destination=mocks/mock_location.go -package=mocks

// LocationRepository определяет контракт для работы с хранилищем записей
type LocationRepository interface {
	Insert(ctx context.Context, loc *models.Location) error
	GetLatest(ctx context.Context, filter models.IdentifierFilter) (*models.Location, error)
	GetHistory(ctx context.Context, filter models.IdentifierFilter, limit int) ([]*models.Location, error)
	GetStats(ctx context.Context, filter models.IdentifierFilter) (*models.LocationStats, error)
	GetRecentUsers(ctx context.Context, limit int) ([]*models.UserIdentity, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Ping(ctx context.Context) error
	GetLatestFromCache(ctx context.Context, filter models.IdentifierFilter) (*models.Location, error)
	SetLatestCache(ctx context.Context, filter models.IdentifierFilter, loc *models.Location) error
	InvalidateLatestCache(ctx context.Context, phoneNumber, email string) error
}

// LocationService определяет контракт бизнес-логики отслеживания местоположений
type LocationService interface {
	TrackLocation(ctx context.Context, input models.TrackLocationInput) (*models.Location, *geo.Analysis, error)
	GetLatestLocation(ctx context.Context, filter models.IdentifierFilter) (*models.Location, *geo.Analysis, error)
	GetLocationHistory(ctx context.Context, filter models.IdentifierFilter, limit int) ([]*models.Location, error)
	GetLocationStats(ctx context.Context, filter models.IdentifierFilter) (*models.LocationStats, error)
	GetRecentUsers(ctx context.Context) ([]*models.UserIdentity, error)
	DeleteLocation(ctx context.Context, id int64) error
	CalculateDistance(lat1, lon1, lat2, lon2 float64) float64
	HealthCheck(ctx context.Context) error
}

type locationService struct {
	repo       LocationRepository
	logger     *logrus.Logger
	cfg        *config.Config
	classifier geo.Classifier
}

func NewLocationService(repo LocationRepository, logger *logrus.Logger, cfg *config.Config) LocationService {
	return &locationService{
		repo:       repo,
		logger:     logger,
		cfg:        cfg,
		classifier: geo.StaticClassifier{},
	}
}

// TrackLocation проверяет и сохраняет новую запись о местоположении.
// Валидация выполняется до обращения к хранилищу: нет идентификатора или
// координат - запись не вставляется.
func (s *locationService) TrackLocation(ctx context.Context, input models.TrackLocationInput) (*models.Location, *geo.Analysis, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "TrackLocation",
		"phone":   input.PhoneNumber,
		"email":   input.Email,
	})

	if input.PhoneNumber == "" && input.Email == "" {
		log.Warn("Track rejected: no identifier supplied")
		return nil, nil, ErrIdentifierMissing
	}
	if input.Latitude == nil || input.Longitude == nil {
		log.Warn("Track rejected: coordinates missing")
		return nil, nil, ErrCoordinatesMissing
	}

	lat, lon := *input.Latitude, *input.Longitude
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		log.WithFields(logrus.Fields{"latitude": lat, "longitude": lon}).
			Warn("Track rejected: coordinates out of range")
		return nil, nil, ErrCoordinatesOutOfRange
	}

	loc := &models.Location{
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Latitude:    lat,
		Longitude:   lon,
		Address:     input.Address,
		Accuracy:    input.Accuracy,
		Speed:       input.Speed,
	}

	if err := s.repo.Insert(ctx, loc); err != nil {
		log.WithError(err).Error("Failed to insert location in repository")
		return nil, nil, fmt.Errorf("service: could not track location: %w", err)
	}

	// Новая запись делает закэшированную "последнюю" устаревшей
	if err := s.repo.InvalidateLatestCache(ctx, loc.PhoneNumber, loc.Email); err != nil {
		log.WithError(err).Warn("Failed to invalidate latest location cache")
	}

	analysis := geo.AnalyzeWith(s.classifier, lat, lon, input.Address)

	log.WithField("location_id", loc.ID).Info("Location tracked successfully")
	return loc, analysis, nil
}

// GetLatestLocation возвращает самую свежую запись по фильтру идентификатора.
// Отсутствие записей - успешный результат (nil, nil, nil), а не ошибка.
func (s *locationService) GetLatestLocation(ctx context.Context, filter models.IdentifierFilter) (*models.Location, *geo.Analysis, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "GetLatestLocation",
		"phone":   filter.PhoneNumber,
		"email":   filter.Email,
	})

	if filter.IsEmpty() {
		log.Warn("Latest rejected: no identifier supplied")
		return nil, nil, ErrIdentifierMissing
	}

	cached, err := s.repo.GetLatestFromCache(ctx, filter)
	if err != nil {
		log.WithError(err).Warn("Failed to read latest location from cache")
	}
	if cached != nil {
		log.Debug("Latest location served from cache")
		return cached, geo.AnalyzeWith(s.classifier, cached.Latitude, cached.Longitude, cached.Address), nil
	}

	loc, err := s.repo.GetLatest(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to get latest location from repository")
		return nil, nil, fmt.Errorf("service: could not get latest location: %w", err)
	}
	if loc == nil {
		log.Info("No tracked locations for this user")
		return nil, nil, nil
	}

	if err := s.repo.SetLatestCache(ctx, filter, loc); err != nil {
		log.WithError(err).Warn("Failed to set latest location cache")
	}

	return loc, geo.AnalyzeWith(s.classifier, loc.Latitude, loc.Longitude, loc.Address), nil
}

// GetLocationHistory возвращает записи пользователя, новые первыми.
// Неположительный limit заменяется значением по умолчанию.
func (s *locationService) GetLocationHistory(ctx context.Context, filter models.IdentifierFilter, limit int) ([]*models.Location, error) {
	if limit <= 0 {
		limit = s.cfg.HistoryDefaultLimit
	}
	if limit > s.cfg.HistoryMaxLimit {
		limit = s.cfg.HistoryMaxLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "GetLocationHistory",
		"phone":   filter.PhoneNumber,
		"email":   filter.Email,
		"limit":   limit,
	})

	if filter.IsEmpty() {
		log.Warn("History rejected: no identifier supplied")
		return nil, ErrIdentifierMissing
	}

	locations, err := s.repo.GetHistory(ctx, filter, limit)
	if err != nil {
		log.WithError(err).Error("Failed to get location history from repository")
		return nil, fmt.Errorf("service: could not get location history: %w", err)
	}

	log.WithField("count", len(locations)).Info("Location history fetched successfully")
	return locations, nil
}

// GetLocationStats возвращает агрегированную статистику по записям пользователя
func (s *locationService) GetLocationStats(ctx context.Context, filter models.IdentifierFilter) (*models.LocationStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "GetLocationStats",
		"phone":   filter.PhoneNumber,
		"email":   filter.Email,
	})

	if filter.IsEmpty() {
		log.Warn("Stats rejected: no identifier supplied")
		return nil, ErrIdentifierMissing
	}

	stats, err := s.repo.GetStats(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to get location stats from repository")
		return nil, fmt.Errorf("service: could not get location stats: %w", err)
	}

	log.WithField("total", stats.Total).Info("Location stats fetched successfully")
	return stats, nil
}

// GetRecentUsers возвращает пары (телефон, email) из последних записей
func (s *locationService) GetRecentUsers(ctx context.Context) ([]*models.UserIdentity, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "GetRecentUsers",
	})

	users, err := s.repo.GetRecentUsers(ctx, s.cfg.RecentUsersLimit)
	if err != nil {
		log.WithError(err).Error("Failed to get recent users from repository")
		return nil, fmt.Errorf("service: could not get recent users: %w", err)
	}

	log.WithField("count", len(users)).Info("Recent users fetched successfully")
	return users, nil
}

// DeleteLocation удаляет запись по id. Удаление несуществующего id не
// считается ошибкой: затронутые строки только логируются.
func (s *locationService) DeleteLocation(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "DeleteLocation",
		"location_id": id,
	})

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to delete location in repository")
		return fmt.Errorf("service: could not delete location: %w", err)
	}

	if affected == 0 {
		log.Info("Delete matched no rows")
	} else {
		log.Info("Location deleted successfully")
	}
	return nil
}

// CalculateDistance вычисляет расстояние между двумя точками в метрах.
// Чистая функция, хранилище не затрагивается.
func (s *locationService) CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.DistanceMeters(lat1, lon1, lat2, lon2)
}

// HealthCheck проверяет доступность хранилища
func (s *locationService) HealthCheck(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("service: database is not reachable: %w", err)
	}
	return nil
}
