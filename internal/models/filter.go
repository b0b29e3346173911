package models

// IdentifierFilter - фильтр записей по идентификатору пользователя.
// Должно быть заполнено хотя бы одно поле; если заполнены оба, записи
// отбираются по условию ИЛИ (телефон совпал или email совпал).
type IdentifierFilter struct {
	PhoneNumber string
	Email       string
}

// IsEmpty сообщает, что не задан ни один идентификатор.
func (f IdentifierFilter) IsEmpty() bool {
	return f.PhoneNumber == "" && f.Email == ""
}
