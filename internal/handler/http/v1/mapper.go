package v1

import (
	"github.com/shenikar/location_tracker/internal/geo"
	"github.com/shenikar/location_tracker/internal/models"
)

// DTOToTrackInput преобразует DTO записи в входные данные сервиса
func DTOToTrackInput(dto TrackLocationRequest) models.TrackLocationInput {
	return models.TrackLocationInput{
		PhoneNumber: dto.PhoneNumber,
		Email:       dto.Email,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Address:     dto.Address,
		Accuracy:    dto.Accuracy,
		Speed:       dto.Speed,
	}
}

// ModelToEnrichedLocation дополняет сохраненную запись ссылками на карты и
// человекочитаемыми координатами
func ModelToEnrichedLocation(loc *models.Location) *EnrichedLocation {
	return &EnrichedLocation{
		Location:       *loc,
		MapsLinks:      geo.BuildMapLinks(loc.Latitude, loc.Longitude),
		ReadableCoords: geo.ReadableCoordinates(loc.Latitude, loc.Longitude),
	}
}
