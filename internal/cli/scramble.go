package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/Eggplant203/cubik"
	"github.com/Eggplant203/cubik/internal/render"
	"github.com/Eggplant203/cubik/internal/storage"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	scrambleSave  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a fresh cube",
	Long: `Scramble a fresh cube and print the scramble sequence and the
resulting net.

Examples:
  cubik scramble
  cubik scramble -n 4 --moves 40
  cubik scramble --seed 42 --save`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "m", 25, "Number of scramble moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = random)")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Record the scramble as a session")
}

func runScramble(cmd *cobra.Command, args []string) error {
	opts := []cubik.Option{}
	if scrambleSeed != 0 {
		opts = append(opts, cubik.WithRand(rand.New(rand.NewSource(scrambleSeed))))
	}

	cube, err := cubik.New(cubeSize, opts...)
	if err != nil {
		return err
	}

	moves, err := cube.Scramble(scrambleMoves)
	if err != nil {
		return err
	}

	fmt.Printf("Scramble (%dx%d, %d moves):\n", cubeSize, cubeSize, len(moves))
	fmt.Println(cubik.FormatMoves(moves))
	fmt.Println()
	fmt.Println(render.Net(cube.State()))

	if !scrambleSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	id, err := sessions.Create(cubeSize, cubik.FormatMoves(moves))
	if err != nil {
		return err
	}
	if err := storage.NewMoveRepository(db).CreateBatch(id, moves, 0, 0); err != nil {
		return err
	}

	fmt.Printf("Saved session %s\n", id)
	return nil
}
