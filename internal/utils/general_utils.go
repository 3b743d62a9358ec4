package utils

import (
	"time"

	"gorm.io/gorm"
)

func Paginate(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if size < 1 {
			size = 10
		}
		offset := (page - 1) * size
		return db.Offset(offset).Limit(size)
	}
}

func StrToTime(value string) (*time.Time, error) {
	result, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
