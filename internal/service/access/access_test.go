package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/ptr"
)

func TestForBooking(t *testing.T) {
	owned := &domain.Booking{ID: 1, UserID: ptr.Ptr(int64(42))}
	guest := &domain.Booking{ID: 2, GuestName: ptr.Ptr("Walk-in Player")}

	staff := Actor{UserID: 7, Role: RoleStaff}
	owner := Actor{UserID: 42}
	stranger := Actor{UserID: 99}

	assert.Equal(t, LevelStaff, ForBooking(staff, owned))
	assert.Equal(t, LevelOwner, ForBooking(owner, owned))
	assert.Equal(t, LevelNone, ForBooking(stranger, owned))

	// К гостевым бронированиям имеет доступ только персонал:
	// совпадение UserID с нулевым значением владельцем не делает
	assert.Equal(t, LevelStaff, ForBooking(staff, guest))
	assert.Equal(t, LevelNone, ForBooking(Actor{UserID: 0}, guest))
	assert.Equal(t, LevelNone, ForBooking(owner, guest))
}

func TestForUser(t *testing.T) {
	assert.Equal(t, LevelStaff, ForUser(Actor{UserID: 7, Role: RoleStaff}, 42))
	assert.Equal(t, LevelOwner, ForUser(Actor{UserID: 42}, 42))
	assert.Equal(t, LevelNone, ForUser(Actor{UserID: 99}, 42))
}

func TestIsStaff(t *testing.T) {
	assert.True(t, Actor{Role: RoleStaff}.IsStaff())
	assert.False(t, Actor{Role: "member"}.IsStaff())
	assert.False(t, Actor{}.IsStaff())
}
