package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Eggplant203/cubik"
	"github.com/Eggplant203/cubik/internal/storage"
)

var (
	exportSessionID string
	exportFormat    string
	exportOutput    string
	exportLast      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session data",
	Long:  `Export session data in various formats.`,
}

var exportMovesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Export moves from a session",
	Long: `Export the move sequence from a session in text or JSON format.

Examples:
  cubik export moves --last
  cubik export moves --id <session_id> --format json
  cubik export moves --id <session_id> --format txt -o moves.txt`,
	RunE: runExportMoves,
}

var exportStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Export the final cube state of a session",
	Long: `Export a session's final cube state as a snapshot JSON document.

The snapshot round-trips through 'cubik apply --from'.`,
	RunE: runExportState,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(exportMovesCmd)
	exportMovesCmd.Flags().StringVar(&exportSessionID, "id", "", "Session ID to export")
	exportMovesCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	exportMovesCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportMovesCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	exportCmd.AddCommand(exportStateCmd)
	exportStateCmd.Flags().StringVar(&exportSessionID, "id", "", "Session ID to export")
	exportStateCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	exportStateCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// resolveSession picks the session named by --id / --last.
func resolveSession(sessions *storage.SessionRepository) (*storage.Session, error) {
	if exportLast {
		return sessions.GetLast()
	}
	if exportSessionID == "" {
		return nil, fmt.Errorf("provide --id or --last")
	}
	return sessions.Get(exportSessionID)
}

func runExportMoves(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(storage.NewSessionRepository(db))
	if err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	var out string
	switch exportFormat {
	case "txt":
		parts := make([]string, len(records))
		for i, r := range records {
			parts[i] = r.Notation
		}
		out = strings.Join(parts, " ") + "\n"
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		out = string(data) + "\n"
	default:
		return fmt.Errorf("unknown format %q (want txt or json)", exportFormat)
	}

	return writeOutput(out)
}

func runExportState(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(storage.NewSessionRepository(db))
	if err != nil {
		return err
	}
	if session.FinalState == nil {
		return fmt.Errorf("session %s has no recorded final state", session.SessionID)
	}

	return writeOutput(*session.FinalState + "\n")
}

// writeOutput writes to --output or stdout.
func writeOutput(out string) error {
	if exportOutput == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(exportOutput, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Printf("Wrote %s\n", exportOutput)
	return nil
}

// stateJSON serializes a cube's current state snapshot.
func stateJSON(cube *cubik.Cube) (string, error) {
	data, err := json.Marshal(cube.Snapshot())
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}
