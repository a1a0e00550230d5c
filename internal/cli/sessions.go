package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Eggplant203/cubik/internal/storage"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse recorded play sessions",
	Long:  `Commands for listing and inspecting recorded play sessions.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session's moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum sessions to list")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("%-36s  %-5s  %-19s  %-6s  %s\n", "SESSION", "SIZE", "STARTED", "SOLVED", "MOVES")
	for _, s := range sessions {
		solved := "no"
		if s.Solved {
			solved = "yes"
		}
		fmt.Printf("%-36s  %dx%d    %-19s  %-6s  %d\n",
			s.SessionID, s.Size, s.Size,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			solved, s.MoveCount)
	}
	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := storage.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Session:  %s\n", session.SessionID)
	fmt.Printf("Size:     %dx%d\n", session.Size, session.Size)
	fmt.Printf("Started:  %s\n", session.StartedAt.Local().Format(time.RFC3339))
	if session.EndedAt != nil {
		fmt.Printf("Ended:    %s\n", session.EndedAt.Local().Format(time.RFC3339))
	}
	fmt.Printf("Solved:   %v\n", session.Solved)
	if session.ScrambleText != nil {
		fmt.Printf("Scramble: %s\n", *session.ScrambleText)
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.Notation
	}
	fmt.Printf("Moves:    %s\n", strings.Join(parts, " "))
	return nil
}
