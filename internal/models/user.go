package models

// UserIdentity - пара (телефон, email), по которой записи привязываются к пользователю.
// Не хранится отдельной сущностью, а выводится из последних записей locations.
type UserIdentity struct {
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// LocationStats - агрегированная статистика по записям одного пользователя.
// При отсутствии записей Total равен нулю, а агрегаты - nil.
type LocationStats struct {
	Total       int64    `json:"total"`
	AvgAccuracy *float64 `json:"avg_accuracy"`
	MinLat      *float64 `json:"min_lat"`
	MaxLat      *float64 `json:"max_lat"`
}
