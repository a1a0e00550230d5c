package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eggplant203/cubik"
	"github.com/Eggplant203/cubik/internal/render"
)

var (
	applyFrom string
	applyJSON bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence to a cube",
	Long: `Apply a notation sequence to a cube and print the result.

Starts from a solved cube, or from a snapshot file with --from.

Examples:
  cubik apply "R U R' U'"
  cubik apply -n 4 "2R U 3F' x"
  cubik apply --from state.json "R U" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyFrom, "from", "", "Snapshot JSON file to start from")
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "Print the resulting snapshot as JSON")
}

func runApply(cmd *cobra.Command, args []string) error {
	cube, err := loadCube()
	if err != nil {
		return err
	}

	for _, arg := range args {
		if err := cube.ApplyNotation(arg); err != nil {
			return err
		}
	}

	if applyJSON {
		out, err := stateJSON(cube)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(render.Net(cube.State()))
	fmt.Printf("Solved: %v\n", cube.IsSolved())
	return nil
}

// loadCube builds the starting cube: solved at --size, or restored from
// the --from snapshot file.
func loadCube() (*cubik.Cube, error) {
	if applyFrom == "" {
		return cubik.New(cubeSize)
	}

	data, err := os.ReadFile(applyFrom)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", applyFrom, err)
	}
	var snap cubik.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", applyFrom, err)
	}
	return cubik.FromSnapshot(snap)
}
