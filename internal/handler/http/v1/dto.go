package v1

import (
	"time"

	"github.com/shenikar/location_tracker/internal/geo"
	"github.com/shenikar/location_tracker/internal/models"
)

// Каждый ответ API - конверт {success: bool, ...}; при ошибке
// {success: false, error: message}. Форма конверта - контракт совместимости.

// TrackLocationRequest DTO для сохранения местоположения
// @Description DTO для сохранения местоположения
type TrackLocationRequest struct {
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	Address     string   `json:"address"`
	Accuracy    *float64 `json:"accuracy"`
	Speed       *float64 `json:"speed"`
}

// DistanceRequest DTO для вычисления расстояния между двумя точками
// @Description DTO для вычисления расстояния между двумя точками
type DistanceRequest struct {
	Lat1 *float64 `json:"lat1" validate:"required"`
	Lon1 *float64 `json:"lon1" validate:"required"`
	Lat2 *float64 `json:"lat2" validate:"required"`
	Lon2 *float64 `json:"lon2" validate:"required"`
}

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// TrackLocationResponse DTO для ответа на сохранение местоположения
// @Description DTO для ответа на сохранение местоположения
type TrackLocationResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	ID        int64         `json:"id"`
	Analysis  *geo.Analysis `json:"analysis"`
	Timestamp time.Time     `json:"timestamp"`
}

// EnrichedLocation - сохраненная запись, дополненная ссылками на карты и
// человекочитаемыми координатами.
type EnrichedLocation struct {
	models.Location
	MapsLinks      geo.MapLinks `json:"maps_links"`
	ReadableCoords string       `json:"readable_coords"`
}

// LatestLocationResponse DTO для ответа с последней записью.
// При отсутствии записей location равен null, а success остается true.
type LatestLocationResponse struct {
	Success  bool              `json:"success"`
	Location *EnrichedLocation `json:"location"`
	Analysis *geo.Analysis     `json:"analysis,omitempty"`
	Message  string            `json:"message,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// HistoryResponse DTO для ответа с историей записей.
// Записи истории не обогащаются ссылками: обогащается только latest и ответ
// на запись.
type HistoryResponse struct {
	Success   bool               `json:"success"`
	Count     int                `json:"count"`
	Locations []*models.Location `json:"locations"`
}

// UsersResponse DTO для списка недавно наблюдавшихся пользователей
type UsersResponse struct {
	Success bool                   `json:"success"`
	Users   []*models.UserIdentity `json:"users"`
}

// DistanceResponse DTO для ответа с расстоянием
type DistanceResponse struct {
	Success        bool    `json:"success"`
	DistanceMeters float64 `json:"distance_meters"`
	DistanceKm     string  `json:"distance_km"`
}

// StatsResponse DTO для ответа со статистикой пользователя
type StatsResponse struct {
	Success    bool                  `json:"success"`
	Statistics *models.LocationStats `json:"statistics"`
}

// MessageResponse DTO для ответа с сообщением
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse DTO для ответа health-check
type HealthResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// InfoResponse DTO для справки об API
type InfoResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Features  []string `json:"features"`
	Endpoints int      `json:"endpoints"`
}
