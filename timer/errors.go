package timer

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errParseExpiryCmd = &apperr.Error{
		Message: "unable to parse alert.cmd option",
	}

	errRunExpiryCmd = &apperr.Error{
		Message: "expiry command %q failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)
