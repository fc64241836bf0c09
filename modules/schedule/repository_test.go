package schedule

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

func weekOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRecord(weekStart time.Time, mechanicID string, startDay, startHour, duration int) *TaskRecord {
	return &TaskRecord{
		ID:         uuid.New().String(),
		WeekStart:  weekStart,
		MechanicID: mechanicID,
		Title:      "brake pads",
		StartDay:   startDay,
		StartHour:  startHour,
		Duration:   duration,
		EndDay:     startDay,
		EndHour:    0,
	}
}

func TestRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	week := weekOf(2026, 3, 2)
	rec := testRecord(week, "mech-1", 2, 3, 4)
	if err := repo.Create(rec); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("find existing", func(t *testing.T) {
		got, err := repo.FindByID(rec.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got.MechanicID != "mech-1" || got.StartDay != 2 || got.StartHour != 3 {
			t.Errorf("got placement (%s, %d, %d)", got.MechanicID, got.StartDay, got.StartHour)
		}
		if !got.WeekStart.Equal(week) {
			t.Errorf("WeekStart = %s, want %s", got.WeekStart, week)
		}
	})

	t.Run("find missing", func(t *testing.T) {
		if _, err := repo.FindByID("missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("FindByID(missing) error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepository_FindByWeek(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	week := weekOf(2026, 3, 2)
	otherWeek := weekOf(2026, 3, 9)

	records := []*TaskRecord{
		testRecord(week, "mech-2", 1, 0, 2),
		testRecord(week, "mech-1", 3, 5, 1),
		testRecord(week, "mech-1", 0, 2, 3),
		testRecord(otherWeek, "mech-1", 0, 0, 1),
	}
	for _, rec := range records {
		if err := repo.Create(rec); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := repo.FindByWeek(week)
	if err != nil {
		t.Fatalf("FindByWeek() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// Ordered by mechanic, then start day, then start hour.
	if got[0].MechanicID != "mech-1" || got[0].StartDay != 0 {
		t.Errorf("got[0] = (%s, day %d)", got[0].MechanicID, got[0].StartDay)
	}
	if got[1].MechanicID != "mech-1" || got[1].StartDay != 3 {
		t.Errorf("got[1] = (%s, day %d)", got[1].MechanicID, got[1].StartDay)
	}
	if got[2].MechanicID != "mech-2" {
		t.Errorf("got[2].MechanicID = %s, want mech-2", got[2].MechanicID)
	}
}

func TestRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	week := weekOf(2026, 3, 2)
	rec := testRecord(week, "mech-1", 4, 6, 2)
	if err := repo.Create(rec); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("zero-valued indices persist", func(t *testing.T) {
		rec.MechanicID = "mech-2"
		rec.StartDay = 0
		rec.StartHour = 0
		rec.EndDay = 0
		rec.EndHour = 0
		if err := repo.Update(rec); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		got, err := repo.FindByID(rec.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got.MechanicID != "mech-2" {
			t.Errorf("MechanicID = %q, want mech-2", got.MechanicID)
		}
		if got.StartDay != 0 || got.StartHour != 0 {
			t.Errorf("start = (%d, %d), want (0, 0)", got.StartDay, got.StartHour)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		ghost := testRecord(week, "mech-1", 1, 1, 1)
		if err := repo.Update(ghost); !errors.Is(err, ErrNotFound) {
			t.Errorf("Update(ghost) error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	rec := testRecord(weekOf(2026, 3, 2), "mech-1", 0, 0, 1)
	if err := repo.Create(rec); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.FindByID(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
