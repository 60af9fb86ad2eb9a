package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Snapshot contains all records the financial core computes on.
type Snapshot struct {
	Tasks      []Task        `json:"tasks"`
	Incomes    []Income      `json:"incomes"`
	ExtraWorks []ExtraWork   `json:"extraWorks"`
	Credits    []Credit      `json:"credits"`
	Goals      []MonthlyGoal `json:"goals"`
}

// LoadSnapshot reads all records with their nested records from the database.
func LoadSnapshot(db *gorm.DB) (Snapshot, error) {
	var s Snapshot

	err := db.
		Preload("Payments").
		Preload("Subtasks").
		Preload("ExpenseEntries").
		Preload("PausedRanges").
		Order("created_at").
		Find(&s.Tasks).Error
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading tasks failed: %w", err)
	}

	err = db.Order("date").Find(&s.Incomes).Error
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading incomes failed: %w", err)
	}

	err = db.Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("date")
	}).Order("created_at").Find(&s.ExtraWorks).Error
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading extra work failed: %w", err)
	}

	err = db.Preload("Schedule", ScheduleOrder).Order("created_at").Find(&s.Credits).Error
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading credits failed: %w", err)
	}

	err = db.Order("month").Find(&s.Goals).Error
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading goals failed: %w", err)
	}

	return s, nil
}

// ScheduleOrder orders preloaded schedule rows by their month number.
func ScheduleOrder(db *gorm.DB) *gorm.DB {
	return db.Order("month_number")
}
