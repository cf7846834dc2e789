// Package report prints errors to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/countdown/internal/osutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit reports err and exits with a failure status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
