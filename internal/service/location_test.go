package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/location_tracker/internal/config"
	"github.com/shenikar/location_tracker/internal/models"
	"github.com/shenikar/location_tracker/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLocationService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestLocationService(t *testing.T) (*locationService, *mocks.MockLocationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLocationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		HistoryDefaultLimit: 50,
		HistoryMaxLimit:     500,
		RecentUsersLimit:    20,
	}

	service := NewLocationService(repoMock, logger, cfg)
	return service.(*locationService), repoMock
}

func f64(v float64) *float64 {
	return &v
}

func TestTrackLocation_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	input := models.TrackLocationInput{
		PhoneNumber: "+79990001122",
		Email:       "user@example.com",
		Latitude:    f64(28.6139),
		Longitude:   f64(77.2090),
		Address:     "Connaught Place",
		Accuracy:    f64(12.5),
	}

	// Ожидания
	repoMock.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location) error {
			// Симулируем, что БД присвоила id и время записи
			loc.ID = 42
			loc.RecordedAt = time.Now()
			return nil
		}).Times(1)

	repoMock.EXPECT().
		InvalidateLatestCache(ctx, input.PhoneNumber, input.Email).
		Return(nil).
		Times(1)

	// Действие
	loc, analysis, err := service.TrackLocation(ctx, input)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, int64(42), loc.ID)
	assert.Equal(t, 28.6139, loc.Latitude)
	require.NotNil(t, analysis)
	assert.Equal(t, "Connaught Place", analysis.Address)
	assert.Equal(t, "Tracked", analysis.LocationType)
	assert.Equal(t, "Stationary", analysis.MovementStatus)
}

func TestTrackLocation_IdentifierMissing(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	input := models.TrackLocationInput{
		Latitude:  f64(10),
		Longitude: f64(20),
	}

	// Ожидания: хранилище не вызывается
	repoMock.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	loc, analysis, err := service.TrackLocation(ctx, input)

	// Проверки
	require.ErrorIs(t, err, ErrIdentifierMissing)
	assert.Nil(t, loc)
	assert.Nil(t, analysis)
}

func TestTrackLocation_CoordinatesMissing(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	repoMock.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	// Нет долготы
	_, _, err := service.TrackLocation(ctx, models.TrackLocationInput{
		PhoneNumber: "+79990001122",
		Latitude:    f64(10),
	})
	require.ErrorIs(t, err, ErrCoordinatesMissing)

	// Нет обеих координат
	_, _, err = service.TrackLocation(ctx, models.TrackLocationInput{
		Email: "user@example.com",
	})
	require.ErrorIs(t, err, ErrCoordinatesMissing)
}

func TestTrackLocation_ZeroCoordinatesAreValid(t *testing.T) {
	// Подготовка: (0, 0) - корректная точка, а не отсутствующее значение
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	input := models.TrackLocationInput{
		PhoneNumber: "+79990001122",
		Latitude:    f64(0),
		Longitude:   f64(0),
	}

	repoMock.EXPECT().Insert(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateLatestCache(ctx, input.PhoneNumber, "").Return(nil).Times(1)

	// Действие
	_, analysis, err := service.TrackLocation(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Unknown location", analysis.Address)
}

func TestTrackLocation_CoordinatesOutOfRange(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	repoMock.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := service.TrackLocation(ctx, models.TrackLocationInput{
		PhoneNumber: "+79990001122",
		Latitude:    f64(91),
		Longitude:   f64(20),
	})

	// Проверки
	require.ErrorIs(t, err, ErrCoordinatesOutOfRange)
}

func TestTrackLocation_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	input := models.TrackLocationInput{
		PhoneNumber: "+79990001122",
		Latitude:    f64(10),
		Longitude:   f64(20),
	}
	repoError := fmt.Errorf("connection refused")

	repoMock.EXPECT().Insert(ctx, gomock.Any()).Return(repoError).Times(1)

	// Действие
	loc, analysis, err := service.TrackLocation(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, loc)
	assert.Nil(t, analysis)
	assert.ErrorContains(t, err, "could not track location")
}

func TestGetLatestLocation_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{PhoneNumber: "+79990001122"}
	cachedLoc := &models.Location{
		ID:          7,
		PhoneNumber: "+79990001122",
		Latitude:    55.7558,
		Longitude:   37.6173,
	}

	// Ожидания: попадание в кеш, БД не трогаем
	repoMock.EXPECT().GetLatestFromCache(ctx, filter).Return(cachedLoc, nil).Times(1)
	repoMock.EXPECT().GetLatest(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	loc, analysis, err := service.GetLatestLocation(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cachedLoc, loc)
	require.NotNil(t, analysis)
	assert.Equal(t, 55.7558, analysis.Coordinates.Latitude)
}

func TestGetLatestLocation_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{PhoneNumber: "+79990001122", Email: "user@example.com"}
	dbLoc := &models.Location{
		ID:       9,
		Email:    "user@example.com",
		Latitude: 59.9343,
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetLatestFromCache(ctx, filter).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetLatest(ctx, filter).Return(dbLoc, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetLatestCache(ctx, filter, dbLoc).Return(nil).Times(1)

	// Действие
	loc, analysis, err := service.GetLatestLocation(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, dbLoc, loc)
	require.NotNil(t, analysis)
}

func TestGetLatestLocation_NoRows(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{Email: "nobody@example.com"}

	// Ожидания: нет ни в кеше, ни в БД - это успех, а не ошибка
	repoMock.EXPECT().GetLatestFromCache(ctx, filter).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetLatest(ctx, filter).Return(nil, nil).Times(1)
	repoMock.EXPECT().SetLatestCache(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	loc, analysis, err := service.GetLatestLocation(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, loc)
	assert.Nil(t, analysis)
}

func TestGetLatestLocation_IdentifierMissing(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	// Ожидания: хранилище не вызывается
	repoMock.EXPECT().GetLatestFromCache(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().GetLatest(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := service.GetLatestLocation(ctx, models.IdentifierFilter{})

	// Проверки
	require.ErrorIs(t, err, ErrIdentifierMissing)
}

func TestGetLatestLocation_CacheErrorFallsThrough(t *testing.T) {
	// Подготовка: ошибка кеша не фатальна, идем в БД
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{PhoneNumber: "+79990001122"}
	dbLoc := &models.Location{ID: 3, PhoneNumber: "+79990001122"}

	repoMock.EXPECT().GetLatestFromCache(ctx, filter).Return(nil, fmt.Errorf("redis down")).Times(1)
	repoMock.EXPECT().GetLatest(ctx, filter).Return(dbLoc, nil).Times(1)
	repoMock.EXPECT().SetLatestCache(ctx, filter, dbLoc).Return(nil).Times(1)

	// Действие
	loc, _, err := service.GetLatestLocation(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, dbLoc, loc)
}

func TestGetLocationHistory_DefaultLimit(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{PhoneNumber: "+79990001122"}

	// Ожидания: нулевой limit заменяется значением по умолчанию 50
	repoMock.EXPECT().GetHistory(ctx, filter, 50).Return([]*models.Location{}, nil).Times(1)

	// Действие
	locations, err := service.GetLocationHistory(ctx, filter, 0)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestGetLocationHistory_ExplicitLimit(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{Email: "user@example.com"}
	expected := []*models.Location{
		{ID: 2, Email: "user@example.com"},
		{ID: 1, Email: "user@example.com"},
	}

	repoMock.EXPECT().GetHistory(ctx, filter, 10).Return(expected, nil).Times(1)

	// Действие
	locations, err := service.GetLocationHistory(ctx, filter, 10)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestGetLocationHistory_LimitCapped(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{PhoneNumber: "+79990001122"}

	// Ожидания: limit больше максимума урезается до 500
	repoMock.EXPECT().GetHistory(ctx, filter, 500).Return([]*models.Location{}, nil).Times(1)

	// Действие
	_, err := service.GetLocationHistory(ctx, filter, 100000)

	// Проверки
	require.NoError(t, err)
}

func TestGetLocationHistory_IdentifierMissing(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetHistory(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.GetLocationHistory(ctx, models.IdentifierFilter{}, 10)

	// Проверки
	require.ErrorIs(t, err, ErrIdentifierMissing)
}

func TestGetLocationStats_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{PhoneNumber: "+79990001122"}
	expected := &models.LocationStats{
		Total:       5,
		AvgAccuracy: f64(11.4),
		MinLat:      f64(55.0),
		MaxLat:      f64(60.1),
	}

	repoMock.EXPECT().GetStats(ctx, filter).Return(expected, nil).Times(1)

	// Действие
	stats, err := service.GetLocationStats(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestGetLocationStats_NoRows(t *testing.T) {
	// Подготовка: ноль записей - успешный ответ с нулевыми агрегатами
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	filter := models.IdentifierFilter{Email: "nobody@example.com"}
	empty := &models.LocationStats{Total: 0}

	repoMock.EXPECT().GetStats(ctx, filter).Return(empty, nil).Times(1)

	// Действие
	stats, err := service.GetLocationStats(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Nil(t, stats.AvgAccuracy)
	assert.Nil(t, stats.MinLat)
	assert.Nil(t, stats.MaxLat)
}

func TestGetRecentUsers_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	expected := []*models.UserIdentity{
		{PhoneNumber: "+79990001122"},
		{Email: "user@example.com"},
	}

	// Ожидания: лимит берется из конфигурации
	repoMock.EXPECT().GetRecentUsers(ctx, 20).Return(expected, nil).Times(1)

	// Действие
	users, err := service.GetRecentUsers(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestDeleteLocation_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	repoMock.EXPECT().Delete(ctx, int64(42)).Return(int64(1), nil).Times(1)

	// Действие
	err := service.DeleteLocation(ctx, 42)

	// Проверки
	require.NoError(t, err)
}

func TestDeleteLocation_NonExistentIDIsNotAnError(t *testing.T) {
	// Подготовка: удаление несуществующего id ведет себя как успешное.
	// Тест фиксирует текущее поведение, а не обязательно желаемое.
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	repoMock.EXPECT().Delete(ctx, int64(9999)).Return(int64(0), nil).Times(1)

	// Действие
	err := service.DeleteLocation(ctx, 9999)

	// Проверки
	require.NoError(t, err)
}

func TestDeleteLocation_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("connection refused")

	repoMock.EXPECT().Delete(ctx, int64(1)).Return(int64(0), repoError).Times(1)

	// Действие
	err := service.DeleteLocation(ctx, 1)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not delete location")
}

func TestCalculateDistance(t *testing.T) {
	// Подготовка
	service, _ := newTestLocationService(t)

	// Действие: хранилище не участвует, чистое вычисление
	d := service.CalculateDistance(0, 0, 0, 1)

	// Проверки
	assert.InDelta(t, 111195, d, 50)
}

func TestHealthCheck(t *testing.T) {
	// Подготовка
	service, repoMock := newTestLocationService(t)
	ctx := context.Background()

	repoMock.EXPECT().Ping(ctx).Return(nil).Times(1)
	require.NoError(t, service.HealthCheck(ctx))

	repoMock.EXPECT().Ping(ctx).Return(fmt.Errorf("down")).Times(1)
	require.Error(t, service.HealthCheck(ctx))
}
