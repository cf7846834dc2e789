// Package testutil holds helpers shared by package tests
package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/countdown/internal/osutil"
)

const fixtureDir = "testdata"

// Transcript collects one line per rendered frame of a countdown.
type Transcript struct {
	Name  string
	lines []string
}

// Printf appends a formatted line.
func (tr *Transcript) Printf(format string, args ...any) {
	tr.lines = append(tr.lines, fmt.Sprintf(format, args...))
}

func (tr *Transcript) Lines() []string {
	return tr.lines
}

// CompareGolden checks tr against testdata/<Name>.golden. An empty transcript
// must not have a golden file.
func CompareGolden(t *testing.T, tr *Transcript) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	if len(tr.lines) == 0 {
		f := filepath.Join(fixtureDir, tr.Name+".golden")

		_, err := os.Stat(f)
		require.True(t, errors.Is(err, os.ErrNotExist),
			"expected no output, but golden file exists: %s", f)

		return
	}

	g := goldie.New(t, goldie.WithFixtureDir(fixtureDir))
	g.Assert(t, tr.Name, []byte(strings.Join(tr.lines, "\n")+"\n"))
}

// WriteFixture copies testdata/name to dst.
func WriteFixture(t *testing.T, name, dst string) {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(fixtureDir, name))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dst, b, osutil.FilePermission))
}
