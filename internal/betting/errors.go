package betting

import "errors"

// Validation rejections surface to the caller with a readable reason;
// none of them is fatal internally.
var (
	ErrNoSelections          = errors.New("bet must contain at least one selection")
	ErrInvalidStake          = errors.New("stake must be positive")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrMarketClosed          = errors.New("market closed")
	ErrBettingWindowClosed   = errors.New("betting window closed")
	ErrConflictingSelections = errors.New("conflicting selections")
	ErrUnknownSelection      = errors.New("unknown market or option")
)

// Missing-reference rejections.
var (
	ErrUnknownMatch = errors.New("unknown match")
	ErrUnknownUser  = errors.New("unknown user")
)

// IsValidation reports whether err is a caller mistake rather than a
// missing reference or storage failure.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrNoSelections,
		ErrInvalidStake,
		ErrInsufficientBalance,
		ErrMarketClosed,
		ErrBettingWindowClosed,
		ErrConflictingSelections,
		ErrUnknownSelection,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err references a missing user or match.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownMatch) || errors.Is(err, ErrUnknownUser)
}
