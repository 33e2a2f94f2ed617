// Package seed builds the sample data lockd starts with.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lockd/internal/models"
	"github.com/julianstephens/lockd/internal/planner"
	"github.com/julianstephens/lockd/internal/utils"
)

// State returns the sample planner contents relative to now.
func State(now time.Time, loc *time.Location) planner.State {
	today := utils.StartOfDay(now, loc)
	tomorrow := today.AddDate(0, 0, 1)
	completed := utils.AtTime(today, 7, 40, loc)

	block := func(day time.Time, h1, m1, h2, m2 int) (time.Time, time.Time) {
		return utils.AtTime(day, h1, m1, loc), utils.AtTime(day, h2, m2, loc)
	}

	runStart, runEnd := block(today, 7, 0, 7, 40)
	deepStart, deepEnd := block(today, 10, 0, 11, 30)
	liftStart, liftEnd := block(today, 18, 0, 19, 15)
	planStart, planEnd := block(tomorrow, 8, 30, 9, 0)

	return planner.State{
		Tasks: []models.Task{
			{
				ID: uuid.NewString(), Title: "Morning Run", Category: "Fitness", Notes: "5k easy pace",
				Start: runStart, End: runEnd, Priority: models.PriorityHigh, Source: models.SourceManual,
				CompletedAt: &completed,
			},
			{
				ID: uuid.NewString(), Title: "Deep Work Sprint", Category: "Work", Notes: "Project scope and shipping tasks",
				Start: deepStart, End: deepEnd, Priority: models.PriorityHigh, Source: models.SourceManual,
			},
			{
				ID: uuid.NewString(), Title: "Upper Body Session", Category: "Workout", Notes: "Bench + rows + shoulders",
				Start: liftStart, End: liftEnd, Priority: models.PriorityMedium, Source: models.SourceWorkout,
			},
			{
				ID: uuid.NewString(), Title: "Plan Review", Category: "Work", Notes: "Review daily priorities",
				Start: planStart, End: planEnd, Priority: models.PriorityMedium, Source: models.SourceManual,
			},
		},
		DayTemplates: []models.DayTemplate{
			{
				ID:   uuid.NewString(),
				Name: "Standard Lock-In Day",
				Tasks: []models.TemplateTask{
					{ID: uuid.NewString(), Title: "Hydration", Category: "Habit", StartHour: 8, DurationMinutes: 10, Priority: models.PriorityLow, Source: models.SourceHabit},
					{ID: uuid.NewString(), Title: "Focus Block", Category: "Work", StartHour: 9, DurationMinutes: 120, Priority: models.PriorityHigh, Source: models.SourceManual},
					{ID: uuid.NewString(), Title: "Lift Session", Category: "Workout", StartHour: 18, DurationMinutes: 70, Priority: models.PriorityHigh, Source: models.SourceWorkout},
				},
			},
		},
		Habits: []models.Habit{
			{
				ID: uuid.NewString(), Name: "No Late Scrolling", Type: models.HabitRemove,
				WeeklyTarget: 6, WeeklyCompleted: 4, CurrentStreak: 5, BestStreak: 9,
				ReminderHour: 21, ReminderMinute: 30,
			},
			{
				ID: uuid.NewString(), Name: "Read 20 Minutes", Type: models.HabitBuild,
				WeeklyTarget: 7, WeeklyCompleted: 5, CurrentStreak: 3, BestStreak: 8,
				ReminderHour: 20,
			},
		},
		WorkoutTemplates: []models.WorkoutTemplate{
			{
				ID:   uuid.NewString(),
				Name: "Push Day",
				Exercises: []models.Exercise{
					{ID: uuid.NewString(), Name: "Bench Press", TargetSets: 4, TargetReps: 6},
					{ID: uuid.NewString(), Name: "Incline Dumbbell Press", TargetSets: 3, TargetReps: 10},
					{ID: uuid.NewString(), Name: "Overhead Press", TargetSets: 4, TargetReps: 8},
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "Leg Day",
				Exercises: []models.Exercise{
					{ID: uuid.NewString(), Name: "Back Squat", TargetSets: 5, TargetReps: 5},
					{ID: uuid.NewString(), Name: "Romanian Deadlift", TargetSets: 4, TargetReps: 8},
					{ID: uuid.NewString(), Name: "Walking Lunges", TargetSets: 3, TargetReps: 12},
				},
			},
		},
		Trends: map[string][]models.TrendPoint{
			"Bench Press": trend("Bench Press", now, 185, 2),
			"Back Squat":  trend("Back Squat", now, 225, 3),
		},
		CardioLogs: []models.CardioLog{
			{ID: uuid.NewString(), Date: now, Machine: models.MachineTreadmill, DurationMinutes: 20, Speed: 6.2, Incline: 3.5},
			{ID: uuid.NewString(), Date: now.AddDate(0, 0, -1), Machine: models.MachineStairmaster, DurationMinutes: 15, Level: 8},
		},
	}
}

// trend builds six daily sessions ending today, with only the latest marked as a record.
func trend(exercise string, now time.Time, base, growth float64) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, 6)
	for i := 0; i < 6; i++ {
		weight := base + float64(i)*growth
		points = append(points, models.TrendPoint{
			Exercise:         exercise,
			Day:              now.AddDate(0, 0, i-5),
			TopSetWeight:     weight,
			TotalVolume:      weight * 14,
			IsPersonalRecord: i == 5,
		})
	}
	return points
}
