package domain

// StaffIdentity аутентифицированный сотрудник
// Передаётся явно в каждый вызов, требующий прав сотрудника
type StaffIdentity struct {
	ID    int64
	Name  string
	Email string
}

// StaffAccount учётная запись сотрудника в хранилище
type StaffAccount struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
}
