package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bookly/internal/database"
	"bookly/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedService(t *testing.T, db *gorm.DB, name string) *domain.Service {
	t.Helper()
	svc := &domain.Service{Name: name, Description: name + " service"}
	require.NoError(t, NewServiceRepository(db).Create(context.Background(), svc))
	return svc
}

func seedSchedule(t *testing.T, db *gorm.DB, serviceID string, start, end time.Time) *domain.Schedule {
	t.Helper()
	sched := &domain.Schedule{ServiceID: serviceID, StartTime: start, EndTime: end}
	require.NoError(t, NewScheduleRepository(db).Create(context.Background(), sched))
	return sched
}

func TestScheduleRepo_OverlapIsContainment(t *testing.T) {
	db := setupDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	seedSchedule(t, db, svc.ID, base, base.Add(30*time.Minute))

	// Candidate fully containing the existing slot collides.
	overlaps, err := repo.ExistsOverlapping(ctx, svc.ID, base.Add(-10*time.Minute), base.Add(40*time.Minute), "")
	require.NoError(t, err)
	require.True(t, overlaps)

	// Identical range collides.
	overlaps, err = repo.ExistsOverlapping(ctx, svc.ID, base, base.Add(30*time.Minute), "")
	require.NoError(t, err)
	require.True(t, overlaps)

	// Partial overlap does not: the test is containment, not intersection.
	overlaps, err = repo.ExistsOverlapping(ctx, svc.ID, base.Add(15*time.Minute), base.Add(45*time.Minute), "")
	require.NoError(t, err)
	require.False(t, overlaps)

	// A different service never collides.
	other := seedService(t, db, "massage")
	overlaps, err = repo.ExistsOverlapping(ctx, other.ID, base.Add(-10*time.Minute), base.Add(40*time.Minute), "")
	require.NoError(t, err)
	require.False(t, overlaps)
}

func TestScheduleRepo_OverlapExcludesSelf(t *testing.T) {
	db := setupDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sched := seedSchedule(t, db, svc.ID, base, base.Add(30*time.Minute))

	overlaps, err := repo.ExistsOverlapping(ctx, svc.ID, base, base.Add(30*time.Minute), sched.ID)
	require.NoError(t, err)
	require.False(t, overlaps)
}

func TestScheduleRepo_HardDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sched := seedSchedule(t, db, svc.ID, base, base.Add(30*time.Minute))

	rows, err := repo.Delete(ctx, sched.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	_, err = repo.GetByID(ctx, sched.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	rows, err = repo.Delete(ctx, sched.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)
}

func TestBookingRepo_ExistsActiveBySchedule(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sched := seedSchedule(t, db, svc.ID, base, base.Add(30*time.Minute))

	b := &domain.Booking{UserID: "user-1", ServiceID: svc.ID, ScheduleID: sched.ID, Status: domain.BookingPending}
	require.NoError(t, repo.Create(ctx, b))

	taken, err := repo.ExistsActiveBySchedule(ctx, sched.ID, "")
	require.NoError(t, err)
	require.True(t, taken)

	// The holder itself is excludable.
	taken, err = repo.ExistsActiveBySchedule(ctx, sched.ID, b.ID)
	require.NoError(t, err)
	require.False(t, taken)

	// A cancelled booking does not hold the slot.
	require.NoError(t, repo.UpdateStatus(ctx, b.ID, domain.BookingCancelled))
	taken, err = repo.ExistsActiveBySchedule(ctx, sched.ID, "")
	require.NoError(t, err)
	require.False(t, taken)

	// Neither does a soft-deleted one.
	require.NoError(t, repo.UpdateStatus(ctx, b.ID, domain.BookingPending))
	rows, err := repo.SoftDelete(ctx, b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)
	taken, err = repo.ExistsActiveBySchedule(ctx, sched.ID, "")
	require.NoError(t, err)
	require.False(t, taken)
}

// The partial unique index is the storage-level backstop for concurrent
// creates against the same schedule.
func TestBookingRepo_ActiveIndexRejectsSecondInsert(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sched := seedSchedule(t, db, svc.ID, base, base.Add(30*time.Minute))

	first := &domain.Booking{UserID: "user-1", ServiceID: svc.ID, ScheduleID: sched.ID, Status: domain.BookingPending}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.Booking{UserID: "user-2", ServiceID: svc.ID, ScheduleID: sched.ID, Status: domain.BookingOngoing}
	err := repo.Create(ctx, second)
	require.Error(t, err)

	// A cancelled insert is allowed through: the index only covers active rows.
	cancelled := &domain.Booking{UserID: "user-3", ServiceID: svc.ID, ScheduleID: sched.ID, Status: domain.BookingCancelled}
	require.NoError(t, repo.Create(ctx, cancelled))
}

func TestBookingRepo_SoftDeleteScoping(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sched := seedSchedule(t, db, svc.ID, base, base.Add(30*time.Minute))

	b := &domain.Booking{UserID: "user-1", ServiceID: svc.ID, ScheduleID: sched.ID, Status: domain.BookingPending}
	require.NoError(t, repo.Create(ctx, b))

	rows, err := repo.SoftDelete(ctx, b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	// The row survives; only the flag flips.
	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, got.Deleted)

	// Repeat delete touches nothing.
	rows, err = repo.SoftDelete(ctx, b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)

	// Deleted rows never show up in listings.
	list, total, err := repo.List(ctx, BookingFilter{UserID: "user-1"})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	require.Empty(t, list)
}

func TestBookingRepo_SoftDeleteByUser(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		sched := seedSchedule(t, db, svc.ID, start, start.Add(30*time.Minute))
		require.NoError(t, repo.Create(ctx, &domain.Booking{
			UserID: "user-1", ServiceID: svc.ID, ScheduleID: sched.ID, Status: domain.BookingPending,
		}))
	}
	keeper := seedSchedule(t, db, svc.ID, base.Add(5*time.Hour), base.Add(5*time.Hour+30*time.Minute))
	require.NoError(t, repo.Create(ctx, &domain.Booking{
		UserID: "user-2", ServiceID: svc.ID, ScheduleID: keeper.ID, Status: domain.BookingPending,
	}))

	require.NoError(t, repo.SoftDeleteByUser(ctx, "user-1"))

	_, total, err := repo.List(ctx, BookingFilter{UserID: "user-1"})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)

	_, total, err = repo.List(ctx, BookingFilter{UserID: "user-2"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}

func TestBookingRepo_ListPagination(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		sched := seedSchedule(t, db, svc.ID, start, start.Add(30*time.Minute))
		b := &domain.Booking{
			UserID: "user-1", ServiceID: svc.ID, ScheduleID: sched.ID, Status: domain.BookingPending,
		}
		require.NoError(t, repo.Create(ctx, b))
		// Spread creation times so the ordering is deterministic.
		require.NoError(t, db.Model(&domain.Booking{}).Where("id = ?", b.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	// Page 2 of 5 returns records 6..10; the total covers the whole
	// predicate, not just the page.
	list, total, err := repo.List(ctx, BookingFilter{
		UserID:     "user-1",
		Pagination: Pagination{Page: 2, PerPage: 5},
	})
	require.NoError(t, err)
	require.EqualValues(t, 12, total)
	require.Len(t, list, 5)

	// Defaults: page 1, 10 per page.
	list, total, err = repo.List(ctx, BookingFilter{UserID: "user-1"})
	require.NoError(t, err)
	require.EqualValues(t, 12, total)
	require.Len(t, list, 10)
}

func TestBookingRepo_ListFilters(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	haircut := seedService(t, db, "haircut")
	massage := seedService(t, db, "massage")
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	s1 := seedSchedule(t, db, haircut.ID, base, base.Add(30*time.Minute))
	s2 := seedSchedule(t, db, massage.ID, base.Add(time.Hour), base.Add(90*time.Minute))

	require.NoError(t, repo.Create(ctx, &domain.Booking{
		UserID: "user-1", ServiceID: haircut.ID, ScheduleID: s1.ID, Status: domain.BookingPending,
	}))
	require.NoError(t, repo.Create(ctx, &domain.Booking{
		UserID: "user-1", ServiceID: massage.ID, ScheduleID: s2.ID, Status: domain.BookingCompleted,
	}))

	_, total, err := repo.List(ctx, BookingFilter{UserID: "user-1", Status: "completed"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	_, total, err = repo.List(ctx, BookingFilter{UserID: "user-1", ServiceID: haircut.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	_, total, err = repo.List(ctx, BookingFilter{UserID: "somebody-else"})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
}

func TestUserRepo_EmailNormalizationAndLookup(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Name: "Alice", Email: "  Alice@Example.COM "}
	require.NoError(t, repo.Create(ctx, u))
	require.Equal(t, "alice@example.com", u.Email)

	got, err := repo.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	exists, err := repo.ExistsByEmail(ctx, "alice@EXAMPLE.com")
	require.NoError(t, err)
	require.True(t, exists)
}

// GetByID deliberately ignores the deleted flag: a soft-deleted user still
// resolves, matching the cached-snapshot behavior of the identity path.
func TestUserRepo_GetByIDIgnoresDeleted(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, u))

	rows, err := repo.SoftDelete(ctx, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.Deleted)

	rows, err = repo.SoftDelete(ctx, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)
}

func TestUserRepo_ListQueryFilter(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for i, name := range []string{"Alice Smith", "Bob Jones", "Alice Cooper"} {
		require.NoError(t, repo.Create(ctx, &domain.User{
			Name:  name,
			Email: fmt.Sprintf("user%d@example.com", i),
		}))
	}

	list, total, err := repo.List(ctx, UserFilter{Query: "alice"})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, list, 2)
}

func TestServiceRepo_NameUniqueness(t *testing.T) {
	db := setupDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")

	exists, err := repo.ExistsByName(ctx, "  HAIRCUT ", "")
	require.NoError(t, err)
	require.True(t, exists)

	// The service itself is excludable on update.
	exists, err = repo.ExistsByName(ctx, "haircut", svc.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestServiceRepo_SoftDeleteHidesService(t *testing.T) {
	db := setupDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")

	rows, err := repo.SoftDelete(ctx, svc.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	_, err = repo.GetActiveByID(ctx, svc.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleted services are free game for name reuse.
	exists, err := repo.ExistsByName(ctx, "haircut", "")
	require.NoError(t, err)
	require.False(t, exists)

	_, total, err := repo.List(ctx, ServiceFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
}

func TestServiceRepo_UpdateSkipsDeleted(t *testing.T) {
	db := setupDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	svc := seedService(t, db, "haircut")
	_, err := repo.SoftDelete(ctx, svc.ID)
	require.NoError(t, err)

	svc.Name = "renamed"
	rows, err := repo.Update(ctx, svc)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)
}
