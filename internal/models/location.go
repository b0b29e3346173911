package models

import (
	"time"
)

// Location представляет одну сохраненную запись о местоположении пользователя.
// Запись неизменяема после создания: обновление местоположения - это вставка новой записи.
type Location struct {
	ID          int64     `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address,omitempty"`
	Accuracy    *float64  `json:"accuracy"`
	Speed       *float64  `json:"speed"`
	RecordedAt  time.Time `json:"timestamp"`
}

// TrackLocationInput - входные данные для сохранения местоположения.
// Координаты заданы указателями, чтобы отличать отсутствующее значение от
// нуля: нулевая широта (экватор) - корректная координата.
type TrackLocationInput struct {
	PhoneNumber string
	Email       string
	Latitude    *float64
	Longitude   *float64
	Address     string
	Accuracy    *float64
	Speed       *float64
}
