package staff

import (
	"errors"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	// Оба случая неотличимы для вызывающего
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)

	// ErrNotAuthenticated возвращается, если действие требует сотрудника, а его нет
	ErrNotAuthenticated = fmt.Errorf("%w: staff authentication required", domain.ErrUnauthorized)

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = fmt.Errorf("%w: email must contain @", domain.ErrInvalidInput)

	// ErrWeakPassword возвращается при слишком коротком пароле
	ErrWeakPassword = fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, domain.MinStaffPasswordLength)

	// ErrPasswordTooLong возвращается, если пароль длиннее допустимого для bcrypt
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most %d bytes", domain.ErrInvalidInput, maxPasswordBytes)

	// ErrInvalidName возвращается при слишком коротком имени
	ErrInvalidName = fmt.Errorf("%w: name must be at least %d characters", domain.ErrInvalidInput, domain.MinStaffNameLength)

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = fmt.Errorf("%w: email already registered", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("staff.service: internal error")
)
