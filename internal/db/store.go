package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SingletonID is the fixed primary key of single-row tables.
const SingletonID uint = 1

// EnsureSingleton inserts candidate under SingletonID unless that row already
// exists, then returns the stored row. The primary key makes concurrent
// creators collapse onto one row; created is true only for the winner.
func EnsureSingleton[T any](tx *gorm.DB, candidate *T) (*T, bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(candidate)
	if res.Error != nil {
		return nil, false, fmt.Errorf("create singleton: %w", res.Error)
	}

	var stored T
	if err := tx.First(&stored, SingletonID).Error; err != nil {
		return nil, false, fmt.Errorf("load singleton: %w", err)
	}
	return &stored, res.RowsAffected == 1, nil
}

// UpdateByFilter sets column to value on the rows in ids whose column
// differs from value, and returns how many rows changed. Rows already at the
// target value are left alone, so repeating a call reports 0.
func UpdateByFilter(tx *gorm.DB, model interface{}, ids []uint, column string, value interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := tx.Model(model).
		Where("id IN ?", ids).
		Where(clause.Neq{Column: clause.Column{Name: column}, Value: value}).
		Update(column, value)
	if res.Error != nil {
		return 0, fmt.Errorf("update %s: %w", column, res.Error)
	}
	return res.RowsAffected, nil
}
