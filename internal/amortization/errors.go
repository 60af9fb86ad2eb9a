package amortization

import "errors"

var (
	ErrTermNotPositive      = errors.New("the term must be at least one month")
	ErrNegativeRate         = errors.New("the interest rate must not be negative")
	ErrAmountNotPositive    = errors.New("the credit amount must be larger than zero")
	ErrStartDateMissing     = errors.New("the credit needs a start date")
	ErrTermExhausted        = errors.New("there are no unpaid months left in the term for the outstanding balance")
	ErrScheduleItemNotFound = errors.New("there is no schedule item with this ID for the credit")
	ErrScheduleItemPaid     = errors.New("the schedule item is already paid")
	ErrEarlierItemUnpaid    = errors.New("an earlier schedule item is still unpaid")
)
