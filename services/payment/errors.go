package payment

import (
	"errors"
	"fmt"
)

// ErrNotCompleted reports a payment insert that the store neither confirmed
// nor faulted on.
var ErrNotCompleted = errors.New("payment could not be completed")

// DuplicatePaymentError rejects a resubmitted payment whose transactionId
// is already recorded.
type DuplicatePaymentError struct {
	TransactionID string
}

func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf("payment with transaction %s already recorded", e.TransactionID)
}

// IsDuplicate reports whether err is a duplicate payment rejection.
func IsDuplicate(err error) bool {
	var de *DuplicatePaymentError
	return errors.As(err, &de)
}
