package app

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errInvalidCountdown = &apperr.Error{
		Message: "countdown not started: %s",
	}

	errInitPaths = &apperr.Error{
		Message: "unable to resolve countdown directories",
	}

	errCopyStatic = &apperr.Error{
		Message: "unable to copy bundled sounds",
	}
)
