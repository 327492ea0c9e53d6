// Package pathutil resolves where lapwatch keeps its files
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const envName = "LAPWATCH_ENV"

// Paths holds the application file locations.
type Paths struct {
	ConfigFile string
	DBFile     string
	LogFile    string
}

// names are the bare file names, suffixed with $LAPWATCH_ENV when set so a
// development build does not touch real data.
type names struct {
	dir    string
	config string
	db     string
	log    string
}

func fileNames() names {
	n := names{
		dir:    "lapwatch",
		config: "config.yml",
		db:     "lapwatch.db",
		log:    "lapwatch.log",
	}

	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		n.config = fmt.Sprintf("config_%s.yml", env)
		n.db = fmt.Sprintf("lapwatch_%s.db", env)
		n.log = fmt.Sprintf("lapwatch_%s.log", env)
	}

	return n
}

// Resolve returns the XDG locations of the config, database and log files,
// creating their parent directories.
func Resolve() (*Paths, error) {
	n := fileNames()

	configFile, err := xdg.ConfigFile(filepath.Join(n.dir, n.config))
	if err != nil {
		return nil, err
	}

	dbFile, err := xdg.DataFile(filepath.Join(n.dir, n.db))
	if err != nil {
		return nil, err
	}

	logFile, err := xdg.DataFile(filepath.Join(n.dir, "log", n.log))
	if err != nil {
		return nil, err
	}

	return &Paths{
		ConfigFile: configFile,
		DBFile:     dbFile,
		LogFile:    logFile,
	}, nil
}
