// Package middleware содержит HTTP middleware: аутентификация по заголовкам
// gateway и сбор метрик запросов.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/GCS-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
)

// Заголовки, проставляемые API gateway после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Auth требует аутентифицированного вызывающего: заголовок X-User-ID
// обязателен. Роль (X-User-Role) опциональна, по умолчанию обычный
// пользователь.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "требуется аутентификация")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный идентификатор пользователя")
			return
		}

		actor := access.Actor{
			UserID: userID,
			Role:   r.Header.Get(HeaderUserRole),
		}

		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
	})
}

// OptionalAuth пропускает запросы без X-User-ID: такие запросы считаются
// гостевыми. Некорректный заголовок всё равно отклоняется.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный идентификатор пользователя")
			return
		}

		actor := access.Actor{
			UserID: userID,
			Role:   r.Header.Get(HeaderUserRole),
		}

		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
	})
}

// StaffOnly требует роль staff. Используется поверх Auth.
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok || !actor.IsStaff() {
			handlers.RespondForbidden(w, "доступ только для персонала")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withActor(ctx context.Context, actor access.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFromContext возвращает аутентифицированного вызывающего из контекста.
// Второе значение false означает гостевой запрос.
func ActorFromContext(ctx context.Context) (access.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(access.Actor)
	return actor, ok
}
