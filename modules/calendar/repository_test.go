package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := NewRepository(db).Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_Holidays(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	holiday := &Holiday{
		ID:   uuid.New().String(),
		Day:  time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC),
		Name: "Labor Day",
	}
	if err := repo.AddHoliday(holiday); err != nil {
		t.Fatalf("AddHoliday() error = %v", err)
	}

	t.Run("day normalized to day start", func(t *testing.T) {
		holidays, err := repo.ListHolidays()
		if err != nil {
			t.Fatalf("ListHolidays() error = %v", err)
		}
		if len(holidays) != 1 {
			t.Fatalf("len(holidays) = %d, want 1", len(holidays))
		}
		got := holidays[0].Day
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Errorf("stored day %s was not normalized", got)
		}
	})

	t.Run("delete existing", func(t *testing.T) {
		if err := repo.DeleteHoliday(holiday.ID); err != nil {
			t.Fatalf("DeleteHoliday() error = %v", err)
		}
		holidays, err := repo.ListHolidays()
		if err != nil {
			t.Fatalf("ListHolidays() error = %v", err)
		}
		if len(holidays) != 0 {
			t.Errorf("len(holidays) = %d after delete, want 0", len(holidays))
		}
	})

	t.Run("delete non-existent", func(t *testing.T) {
		if err := repo.DeleteHoliday("missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteHoliday(missing) error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepository_HolidaysBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	days := []time.Time{
		day(2026, 3, 1),
		day(2026, 3, 4),
		day(2026, 3, 8),
		day(2026, 3, 15),
	}
	for _, d := range days {
		if err := repo.AddHoliday(&Holiday{ID: uuid.New().String(), Day: d}); err != nil {
			t.Fatalf("AddHoliday(%s) error = %v", d, err)
		}
	}

	got, err := repo.HolidaysBetween(day(2026, 3, 2), day(2026, 3, 8))
	if err != nil {
		t.Fatalf("HolidaysBetween() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Bounds are inclusive and results ordered by day.
	if !got[0].Day.Equal(day(2026, 3, 4)) || !got[1].Day.Equal(day(2026, 3, 8)) {
		t.Errorf("got days %s, %s", got[0].Day, got[1].Day)
	}
}

func TestRepository_Leaves(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	leave := &Leave{
		ID:         uuid.New().String(),
		MechanicID: "mech-1",
		Day:        day(2026, 3, 4),
		Reason:     "medical",
	}
	if err := repo.AddLeave(leave); err != nil {
		t.Fatalf("AddLeave() error = %v", err)
	}
	other := &Leave{
		ID:         uuid.New().String(),
		MechanicID: "mech-2",
		Day:        day(2026, 3, 20),
	}
	if err := repo.AddLeave(other); err != nil {
		t.Fatalf("AddLeave() error = %v", err)
	}

	t.Run("range query filters by day", func(t *testing.T) {
		got, err := repo.LeavesBetween(day(2026, 3, 2), day(2026, 3, 8))
		if err != nil {
			t.Fatalf("LeavesBetween() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].MechanicID != "mech-1" {
			t.Errorf("MechanicID = %q, want mech-1", got[0].MechanicID)
		}
	})

	t.Run("list all", func(t *testing.T) {
		got, err := repo.ListLeaves()
		if err != nil {
			t.Fatalf("ListLeaves() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.DeleteLeave(leave.ID); err != nil {
			t.Fatalf("DeleteLeave() error = %v", err)
		}
		if err := repo.DeleteLeave(leave.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("second DeleteLeave() error = %v, want ErrNotFound", err)
		}
	})
}
