// Package cli implements the command-line interface for cubik.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eggplant203/cubik/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath   string
	cubeSize int
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubik",
	Short: "NxN cube state engine playground",
	Long: `cubik - a generalized NxNxN twisty-puzzle state engine.

Scramble and play cubes of any size in the terminal, record play
sessions, and export move sequences and cube snapshots.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubik/cubik.db)")
	rootCmd.PersistentFlags().IntVarP(&cubeSize, "size", "n", 3, "Cube size N (N >= 2)")
}

// openDB opens the session database at the configured path and applies
// pending migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
