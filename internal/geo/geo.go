package geo

import (
	"fmt"
	"math"
	"strconv"
)

// earthRadiusKm - радиус Земли для формулы гаверсинуса.
const earthRadiusKm = 6371.0

// Константы классификации. Реальная классификация не вычисляется,
// значения фиксированы (см. Classifier как точку расширения).
const (
	locationTypeTracked      = "Tracked"
	accuracyLevelHigh        = "High"
	movementStatusStationary = "Stationary"

	// UnknownAddress подставляется, когда адрес не передан.
	UnknownAddress = "Unknown location"
)

// MapLinks - ссылки на внешние картографические сервисы для пары координат.
type MapLinks struct {
	GoogleMaps    string `json:"google_maps"`
	AppleMaps     string `json:"apple_maps"`
	OpenStreetMap string `json:"openstreetmap"`
	DirectCoords  string `json:"direct_coords"`
}

// Coordinates - пара координат в градусах.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Classification - метки классификации местоположения.
type Classification struct {
	LocationType   string `json:"location_type"`
	AccuracyLevel  string `json:"accuracy_level"`
	MovementStatus string `json:"movement_status"`
}

// Analysis - производное представление координат: адрес, классификация и ссылки.
// Никогда не сохраняется, вычисляется по запросу.
type Analysis struct {
	Coordinates    Coordinates `json:"coordinates"`
	Address        string      `json:"address"`
	LocationType   string      `json:"location_type"`
	AccuracyLevel  string      `json:"accuracy_level"`
	MovementStatus string      `json:"movement_status"`
	Links          MapLinks    `json:"links"`
}

// Classifier определяет контракт для классификации координат.
// Стандартная реализация возвращает константы; настоящая модель может быть
// подключена позже без изменения вызывающего кода.
type Classifier interface {
	Classify(lat, lon float64) Classification
}

// StaticClassifier - классификатор с фиксированными метками.
type StaticClassifier struct{}

func (StaticClassifier) Classify(_, _ float64) Classification {
	return Classification{
		LocationType:   locationTypeTracked,
		AccuracyLevel:  accuracyLevelHigh,
		MovementStatus: movementStatusStationary,
	}
}

// DistanceMeters вычисляет расстояние по дуге большого круга между двумя
// точками по формуле гаверсинуса. Входные значения в градусах, результат в
// метрах, округленный до 2 знаков. Диапазон координат не проверяется -
// валидация лежит на вызывающей стороне.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	meters := earthRadiusKm * c * 1000
	return math.Round(meters*100) / 100
}

// BuildMapLinks собирает ссылки на картографические сервисы с координатами в
// полной точности плюс человекочитаемую строку "lat, lon" с 6 знаками.
// Координаты не валидируются: мусор на входе дает синтаксически корректный,
// но бессмысленный URL.
func BuildMapLinks(lat, lon float64) MapLinks {
	latStr := strconv.FormatFloat(lat, 'f', -1, 64)
	lonStr := strconv.FormatFloat(lon, 'f', -1, 64)

	return MapLinks{
		GoogleMaps:    fmt.Sprintf("https://www.google.com/maps?q=%s,%s", latStr, lonStr),
		AppleMaps:     fmt.Sprintf("https://maps.apple.com/?q=%s,%s", latStr, lonStr),
		OpenStreetMap: fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s&zoom=18", latStr, lonStr),
		DirectCoords:  ReadableCoordinates(lat, lon),
	}
}

// ReadableCoordinates форматирует пару координат как "lat, lon" с 6 знаками.
func ReadableCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lon)
}

// Analyze собирает сводку по координатам: адрес (или UnknownAddress, если он
// пуст), классификацию и ссылки на карты.
func Analyze(lat, lon float64, address string) *Analysis {
	return AnalyzeWith(StaticClassifier{}, lat, lon, address)
}

// AnalyzeWith - как Analyze, но с явным классификатором.
func AnalyzeWith(classifier Classifier, lat, lon float64, address string) *Analysis {
	if address == "" {
		address = UnknownAddress
	}

	labels := classifier.Classify(lat, lon)

	return &Analysis{
		Coordinates:    Coordinates{Latitude: lat, Longitude: lon},
		Address:        address,
		LocationType:   labels.LocationType,
		AccuracyLevel:  labels.AccuracyLevel,
		MovementStatus: labels.MovementStatus,
		Links:          BuildMapLinks(lat, lon),
	}
}
