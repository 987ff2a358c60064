package donation

import "errors"

var (
	ErrAmountNotNumeric   = errors.New("amount is not a number")
	ErrAmountBelowMinimum = errors.New("amount is below the minimum")
	ErrAmountAboveMaximum = errors.New("amount is above the maximum")

	ErrNotEditable  = errors.New("donation is no longer editable")
	ErrThrottled    = errors.New("donation rate limit reached for this track")
	ErrDonorUnknown = errors.New("donor identity could not be resolved")
)
