package domain

import "time"

// Member representa um membro do programa de fidelidade, identificado pelo telefone
type Member struct {
	PhoneNumber string    `json:"phoneNumber"`
	Name        string    `json:"name"`
	Sex         string    `json:"sex"` // "M", "F" ou outro código
	BirthDay    time.Time `json:"birthDay"`
}

// Age calcula a idade aproximada por diferença de anos (sem precisão de dias),
// como o painel sempre apresentou
func (m Member) Age(today time.Time) int {
	return today.Year() - m.BirthDay.Year()
}
