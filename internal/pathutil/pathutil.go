// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvName suffixes every file name when set, so that separate environments
// do not share a config or log file.
const EnvName = "COUNTDOWN_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	logFilePath    string
	staticDir      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "countdown",
			configFileName: "config.yml",
			logFileName:    "countdown.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// StaticDir is where bundled sounds are copied and where users may drop
// their own.
func StaticDir() string {
	return Must().staticDir
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(EnvName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.logFileName = fmt.Sprintf("countdown_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.staticDir = filepath.Join(dataDir, "static")

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
