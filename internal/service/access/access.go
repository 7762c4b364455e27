// Package access содержит единую проверку прав доступа к ресурсам.
// Все пути (отмена, чтение, обновление) используют одну функцию вместо
// разрозненных проверок в каждом handler'е.
package access

import "github.com/m04kA/GCS-TeeTimeService/internal/domain"

// Роли вызывающего, проставляемые gateway в заголовке X-User-Role
const (
	RoleStaff = "staff"
)

// Actor аутентифицированный вызывающий
type Actor struct {
	UserID int64
	Role   string
}

// IsStaff возвращает true для сотрудников клуба
func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

// Level уровень доступа вызывающего к ресурсу
type Level int

const (
	LevelNone Level = iota
	LevelOwner
	LevelStaff
)

// ForBooking возвращает уровень доступа вызывающего к бронированию.
// Сотрудник получает LevelStaff независимо от владения; владелец - LevelOwner;
// гостевые бронирования не имеют владельца, к ним имеет доступ только персонал.
func ForBooking(actor Actor, b *domain.Booking) Level {
	if actor.IsStaff() {
		return LevelStaff
	}
	if b.UserID != nil && *b.UserID == actor.UserID {
		return LevelOwner
	}
	return LevelNone
}

// ForUser возвращает уровень доступа вызывающего к данным пользователя
func ForUser(actor Actor, userID int64) Level {
	if actor.IsStaff() {
		return LevelStaff
	}
	if actor.UserID == userID {
		return LevelOwner
	}
	return LevelNone
}
