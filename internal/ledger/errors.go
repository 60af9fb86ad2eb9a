package ledger

import "errors"

var (
	ErrCleanupConfirmation = errors.New("the confirmation for the cleanup is not correct")
	ErrNotEmpty            = errors.New("the database already contains records, import with replace to overwrite them")
	ErrPaymentPaid         = errors.New("the payment is already paid")
)
