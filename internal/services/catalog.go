// catalog.go
//
// A personal workout tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of workout-tracker.
// workout-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// workout-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with workout-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/localnerve/workout-tracker/internal/models"
	"gorm.io/gorm"
)

// TrainingData is everything one catalog seed inserted
type TrainingData struct {
	TrainingSessions []models.TrainingSession `json:"training_sessions"`
	Exercises        []models.Exercise        `json:"exercises"`
	Series           []models.Series          `json:"series"`
}

type exerciseDefinition struct {
	Name        string
	Description string
	Sets        int
	Reps        string
}

type sessionDefinition struct {
	Name        string
	Type        models.TrainingType
	Description string
	Exercises   []exerciseDefinition
}

// trainingCatalog is inserted in order by InitializeTrainingData
var trainingCatalog = []sessionDefinition{
	{
		Name: "Pull Day A", Type: models.TrainingTypePull, Description: "Back and biceps focused workout",
		Exercises: []exerciseDefinition{
			{Name: "Pull-ups", Description: "Bodyweight back exercise", Sets: 3, Reps: "6-10"},
			{Name: "Barbell Rows", Description: "Heavy rowing movement", Sets: 4, Reps: "8 - 10"},
			{Name: "Bicep Curls", Description: "Isolation bicep exercise", Sets: 3, Reps: "10 - 12"},
		},
	},
	{
		Name: "Pull Day B", Type: models.TrainingTypePull, Description: "Lat and rear delt focused workout",
		Exercises: []exerciseDefinition{
			{Name: "Lat Pulldowns", Description: "Lat focused pulling", Sets: 4, Reps: "12/10/8/6"},
			{Name: "Face Pulls", Description: "Rear delt and mid trap exercise", Sets: 3, Reps: "15-20"},
			{Name: "Hammer Curls", Description: "Neutral grip bicep exercise", Sets: 3, Reps: "12"},
		},
	},
	{
		Name: "Push Day A", Type: models.TrainingTypePush, Description: "Chest and triceps focused workout",
		Exercises: []exerciseDefinition{
			{Name: "Bench Press", Description: "Primary chest exercise", Sets: 4, Reps: "5,4,3+ each"},
			{Name: "Overhead Press", Description: "Shoulder pressing movement", Sets: 3, Reps: "6 - 8"},
			{Name: "Tricep Dips", Description: "Bodyweight tricep exercise", Sets: 3, Reps: "8-12"},
		},
	},
	{
		Name: "Push Day B", Type: models.TrainingTypePush, Description: "Shoulders and triceps focused workout",
		Exercises: []exerciseDefinition{
			{Name: "Incline Dumbbell Press", Description: "Upper chest focused press", Sets: 4, Reps: "4/6/8/10"},
			{Name: "Lateral Raises", Description: "Side delt isolation", Sets: 3, Reps: "12 - 15"},
			{Name: "Tricep Extensions", Description: "Overhead tricep exercise", Sets: 3, Reps: "10"},
		},
	},
	{
		Name: "Leg Day A", Type: models.TrainingTypeLegs, Description: "Quad and glute focused workout",
		Exercises: []exerciseDefinition{
			{Name: "Squats", Description: "Primary leg compound movement", Sets: 4, Reps: "5,5,3,3"},
			{Name: "Bulgarian Split Squats", Description: "Single leg quad exercise", Sets: 3, Reps: "8-10"},
			{Name: "Hip Thrusts", Description: "Glute focused exercise", Sets: 3, Reps: "10 - 12"},
		},
	},
	{
		Name: "Leg Day B", Type: models.TrainingTypeLegs, Description: "Hamstring and calf focused workout",
		Exercises: []exerciseDefinition{
			{Name: "Romanian Deadlifts", Description: "Hamstring focused movement", Sets: 4, Reps: "6/8/10/12"},
			{Name: "Walking Lunges", Description: "Dynamic leg exercise", Sets: 3, Reps: "10-12"},
			{Name: "Calf Raises", Description: "Calf isolation exercise", Sets: 4, Reps: "15"},
		},
	},
	{
		Name: "Full Body A", Type: models.TrainingTypeOther, Description: "Complete body compound movements",
		Exercises: []exerciseDefinition{
			{Name: "Deadlifts", Description: "Full body compound movement", Sets: 3, Reps: "5,3,1+"},
			{Name: "Push-ups", Description: "Bodyweight chest exercise", Sets: 3, Reps: "15 - 20"},
			{Name: "Bodyweight Squats", Description: "Bodyweight leg exercise", Sets: 3, Reps: "20"},
		},
	},
	{
		Name: "Core & Cardio", Type: models.TrainingTypeOther, Description: "Core strengthening and cardio",
		Exercises: []exerciseDefinition{
			{Name: "Plank", Description: "Core stability exercise", Sets: 3, Reps: "30-60"},
			{Name: "Mountain Climbers", Description: "Cardio and core exercise", Sets: 4, Reps: "20/30/40/50"},
			{Name: "Russian Twists", Description: "Oblique focused exercise", Sets: 3, Reps: "16"},
		},
	},
}

// ParseRepTarget returns the lower bound of a rep descriptor such as
// "10 - 12", "15-20", "4/6/8", "5,4,3+ each" or "8"
func ParseRepTarget(s string) (int, error) {
	head := s
	switch {
	case strings.Contains(s, " - "):
		head, _, _ = strings.Cut(s, " - ")
	case strings.Contains(s, "-"):
		head, _, _ = strings.Cut(s, "-")
	case strings.Contains(s, "/"):
		head, _, _ = strings.Cut(s, "/")
	case strings.Contains(s, ","):
		head, _, _ = strings.Cut(s, ",")
	}

	reps, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("invalid rep target %q: %w", s, err)
	}
	return reps, nil
}

// InitializeTrainingData inserts a new copy of the catalog. Calling it twice
// duplicates every row.
func InitializeTrainingData(db *gorm.DB) (*TrainingData, error) {
	return seedCatalog(db, trainingCatalog)
}

// CatalogIsEmpty reports whether no training session exists yet
func CatalogIsEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.TrainingSession{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count training sessions: %w", err)
	}
	return count == 0, nil
}

// seedCatalog inserts sessions, then exercises, then series in one transaction
func seedCatalog(db *gorm.DB, catalog []sessionDefinition) (*TrainingData, error) {
	data := &TrainingData{}

	if len(catalog) == 0 {
		return &TrainingData{
			TrainingSessions: []models.TrainingSession{},
			Exercises:        []models.Exercise{},
			Series:           []models.Series{},
		}, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		sessions := make([]models.TrainingSession, 0, len(catalog))
		for _, sd := range catalog {
			description := sd.Description
			sessions = append(sessions, models.TrainingSession{
				Name:        sd.Name,
				Type:        sd.Type,
				Description: &description,
			})
		}
		if err := tx.Create(&sessions).Error; err != nil {
			return fmt.Errorf("insert training sessions: %w", err)
		}

		var exercises []models.Exercise
		var definitions []exerciseDefinition
		for i, sd := range catalog {
			for _, ed := range sd.Exercises {
				description := ed.Description
				exercises = append(exercises, models.Exercise{
					TrainingSessionID: sessions[i].ID,
					Name:              ed.Name,
					Description:       &description,
					TargetSeries:      ed.Sets,
				})
				definitions = append(definitions, ed)
			}
		}
		if len(exercises) > 0 {
			if err := tx.Create(&exercises).Error; err != nil {
				return fmt.Errorf("insert exercises: %w", err)
			}
		}

		var series []models.Series
		for i, exercise := range exercises {
			reps, err := ParseRepTarget(definitions[i].Reps)
			if err != nil {
				return fmt.Errorf("exercise %q: %w", exercise.Name, err)
			}
			for n := 1; n <= exercise.TargetSeries; n++ {
				series = append(series, models.Series{
					ExerciseID:        exercise.ID,
					SeriesNumber:      n,
					TargetRepetitions: reps,
					TargetWeight:      0,
				})
			}
		}
		if len(series) > 0 {
			if err := tx.Create(&series).Error; err != nil {
				return fmt.Errorf("insert series: %w", err)
			}
		}

		data.TrainingSessions = sessions
		data.Exercises = exercises
		data.Series = series
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("initialize training data: %w", err)
	}

	if data.Exercises == nil {
		data.Exercises = []models.Exercise{}
	}
	if data.Series == nil {
		data.Series = []models.Series{}
	}

	return data, nil
}
