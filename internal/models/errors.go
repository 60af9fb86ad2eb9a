package models

import (
	"errors"
)

var (
	ErrGeneral               = errors.New("an error occurred while accessing the database")
	ErrResourceNotFound      = errors.New("there is no")
	ErrGoalAmountNotPositive = errors.New("goal amounts must be larger than zero")
	ErrGoalMonthMissing      = errors.New("goals need a month")
	ErrGoalMonthNotUnique    = errors.New("there can only be one goal per month")
	ErrInvalidPaymentMode    = errors.New("invalid payment mode")
	ErrInvalidScheduleType   = errors.New("invalid schedule type")
	ErrExtraWorkRateNegative = errors.New("extra work rates must not be negative")
)
