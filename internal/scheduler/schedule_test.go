package scheduler

import (
	"testing"
	"time"

	"github.com/pawpal/pawpal/internal/models"
)

func testOwner(t *testing.T, hours float64) *models.Owner {
	t.Helper()
	owner, err := models.NewOwner("Alice", hours)
	if err != nil {
		t.Fatalf("NewOwner failed: %v", err)
	}
	return owner
}

func testPet(t *testing.T) *models.Pet {
	t.Helper()
	pet, err := models.NewPet("Buddy", "Dog", 5, nil)
	if err != nil {
		t.Fatalf("NewPet failed: %v", err)
	}
	return pet
}

func testTask(t *testing.T, name string, category models.TaskCategory, minutes float64, priority int, opts ...models.TaskOption) *models.Task {
	t.Helper()
	task, err := models.NewTask(name, category, minutes, priority, opts...)
	if err != nil {
		t.Fatalf("NewTask(%q) failed: %v", name, err)
	}
	return task
}

func testDate() time.Time {
	return time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
}

func TestDailySchedule_AddTask(t *testing.T) {
	t.Parallel()

	schedule := NewDailySchedule(testDate(), testOwner(t, 4), testPet(t))
	task := testTask(t, "Morning walk", models.CategoryWalk, 30, 5)

	if !schedule.AddTask(task, models.TimeMorning) {
		t.Fatal("AddTask should succeed for a new task")
	}
	if len(schedule.Entries()) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(schedule.Entries()))
	}
	if schedule.TotalMinutes() != 30 {
		t.Errorf("Expected total 30 minutes, got %v", schedule.TotalMinutes())
	}
}

func TestDailySchedule_AddTask_RejectsDuplicateInstance(t *testing.T) {
	t.Parallel()

	schedule := NewDailySchedule(testDate(), testOwner(t, 4), testPet(t))
	task := testTask(t, "Morning walk", models.CategoryWalk, 30, 5)

	if !schedule.AddTask(task, models.TimeMorning) {
		t.Fatal("First AddTask should succeed")
	}
	if schedule.AddTask(task, models.TimeEvening) {
		t.Error("Adding the same instance twice should be rejected")
	}
	if schedule.TotalMinutes() != 30 {
		t.Errorf("Rejected add should not change total, got %v", schedule.TotalMinutes())
	}

	// A definitionally equal but distinct instance is a different task
	twin := testTask(t, "Morning walk", models.CategoryWalk, 30, 5)
	if !schedule.AddTask(twin, models.TimeMorning) {
		t.Error("A distinct instance with equal definition should be accepted")
	}
}

func TestDailySchedule_RemoveTask(t *testing.T) {
	t.Parallel()

	schedule := NewDailySchedule(testDate(), testOwner(t, 4), testPet(t))
	walk := testTask(t, "Morning walk", models.CategoryWalk, 30, 5)
	feed := testTask(t, "Breakfast", models.CategoryFeeding, 10, 5)

	schedule.AddTask(walk, models.TimeMorning)
	schedule.AddTask(feed, models.TimeMorning)

	if !schedule.RemoveTask(walk) {
		t.Fatal("RemoveTask should succeed for a scheduled task")
	}
	if len(schedule.Entries()) != 1 {
		t.Errorf("Expected 1 entry after removal, got %d", len(schedule.Entries()))
	}
	if schedule.TotalMinutes() != 10 {
		t.Errorf("Expected total 10 minutes after removal, got %v", schedule.TotalMinutes())
	}

	if schedule.RemoveTask(walk) {
		t.Error("Removing an absent task should return false")
	}
}

func TestDailySchedule_TotalHours(t *testing.T) {
	t.Parallel()

	schedule := NewDailySchedule(testDate(), testOwner(t, 4), testPet(t))
	schedule.AddTask(testTask(t, "Feed", models.CategoryFeeding, 10, 5), models.TimeMorning)
	schedule.AddTask(testTask(t, "Walk", models.CategoryWalk, 30, 4), models.TimeAfternoon)

	want := 40.0 / 60.0
	if got := schedule.TotalHours(); got != want {
		t.Errorf("TotalHours() = %v, want %v", got, want)
	}
}

func TestDailySchedule_IsFeasible(t *testing.T) {
	t.Parallel()

	t.Run("within budget", func(t *testing.T) {
		t.Parallel()
		schedule := NewDailySchedule(testDate(), testOwner(t, 1), testPet(t))
		schedule.AddTask(testTask(t, "Walk", models.CategoryWalk, 60, 4), models.TimeMorning)
		if !schedule.IsFeasible() {
			t.Error("Exactly the budget should be feasible")
		}
	})

	t.Run("over budget", func(t *testing.T) {
		t.Parallel()
		schedule := NewDailySchedule(testDate(), testOwner(t, 1), testPet(t))
		schedule.AddTask(testTask(t, "Walk", models.CategoryWalk, 61, 4), models.TimeMorning)
		if schedule.IsFeasible() {
			t.Error("Exceeding the budget should be infeasible")
		}
	})

	t.Run("empty schedule with zero hours is vacuously feasible", func(t *testing.T) {
		t.Parallel()
		schedule := NewDailySchedule(testDate(), testOwner(t, 0), testPet(t))
		if !schedule.IsFeasible() {
			t.Error("An empty schedule should be feasible even with zero available hours")
		}
	})
}
