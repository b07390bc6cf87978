package resolver_model

import (
	"errors"
	"fmt"
)

// UnavailableError means the language model could not be reached or rejected
// the call: transport failures, timeouts and non-2xx provider responses.
// RateLimited marks the throttling sub-kind so callers can answer with a
// distinct message.
type UnavailableError struct {
	RateLimited bool
	Err         error
}

func (e *UnavailableError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("language model throttled the request: %v", e.Err)
	}
	return fmt.Sprintf("language model unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// ContractViolationError means the model answered but broke the response
// contract: output that is not valid JSON, not an array or null, or an array
// whose entries do not re-anchor to the catalog. Distinct from a legitimate
// no-match, which is a normal Result.
type ContractViolationError struct {
	Reason string
	Raw    string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("language model broke the response contract: %s", e.Reason)
}

// IsUnavailable reports whether err is any unavailability failure.
func IsUnavailable(err error) bool {
	var unavailable *UnavailableError
	return errors.As(err, &unavailable)
}

// IsRateLimited reports whether err is the throttling sub-kind.
func IsRateLimited(err error) bool {
	var unavailable *UnavailableError
	return errors.As(err, &unavailable) && unavailable.RateLimited
}

// IsContractViolation reports whether err is malformed model output.
func IsContractViolation(err error) bool {
	var violation *ContractViolationError
	return errors.As(err, &violation)
}
