package models

import "github.com/m04kA/barber-booking/internal/domain"

// RegisterRequest запрос на регистрацию сотрудника
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// StaffResponse данные сотрудника без хеша пароля
type StaffResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromDomainIdentity конвертирует domain.StaffIdentity в StaffResponse
func FromDomainIdentity(identity *domain.StaffIdentity) *StaffResponse {
	return &StaffResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
	}
}
