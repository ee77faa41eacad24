// Command dlx demonstrates the exact-cover engine on the three classic
// puzzles: N-Queens, Sudoku, and 6×10 pentomino tilings. Each subcommand
// encodes its puzzle through the public library contract and renders the
// solutions as boards.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dlx/pentomino"
	"github.com/katalvlaran/dlx/queens"
	"github.com/katalvlaran/dlx/sudoku"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:          "dlx",
		Short:        "Exact-cover puzzle solver (Dancing Links)",
		SilenceUsage: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver progress")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		log.SetLevel(logrus.WarnLevel)
		if verbose {
			log.SetLevel(logrus.InfoLevel)
		}
	}

	root.AddCommand(queensCmd(), sudokuCmd(), pentominoCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func queensCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "queens [n]",
		Short: "Count (or print) all n-queens placements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n := 8
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("board size %q: %w", args[0], err)
				}
				n = v
			}

			start := time.Now()
			if !all {
				count, err := queens.Count(n)
				if err != nil {
					return err
				}
				log.WithFields(logrus.Fields{"n": n, "elapsed": time.Since(start)}).Info("enumeration finished")
				fmt.Printf("%d-queens: %d solutions\n", n, count)

				return nil
			}

			sols, err := queens.Placements(n)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"n": n, "elapsed": time.Since(start)}).Info("enumeration finished")
			for i, p := range sols {
				fmt.Printf("Solution %d:\n", i+1)
				for _, file := range p {
					for j := 0; j < n; j++ {
						if j == file {
							fmt.Print("X")
						} else {
							fmt.Print(".")
						}
					}
					fmt.Println()
				}
				fmt.Println()
			}
			fmt.Printf("%d-queens: %d solutions\n", n, len(sols))

			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every placement as a board")

	return cmd
}

// wikiPuzzle is the default demonstration puzzle (Wikipedia's Sudoku
// article); pass an 81-character string to solve something else.
const wikiPuzzle = "53..7...." + "6..195..." + ".98....6." +
	"8...6...3" + "4..8.3..1" + "7...2...6" +
	".6....28." + "...419..5" + "....8..79"

func sudokuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku [puzzle]",
		Short: "Solve a 9×9 Sudoku given as 81 characters ('.' or '0' = empty)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := wikiPuzzle
			if len(args) == 1 {
				input = args[0]
			}
			grid, err := parseGrid(input)
			if err != nil {
				return err
			}

			start := time.Now()
			solved, err := sudoku.Solve(grid)
			if err != nil {
				return err
			}
			log.WithField("elapsed", time.Since(start)).Info("puzzle solved")

			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					sep := " "
					if c == 2 || c == 5 {
						sep = "|"
					}
					fmt.Printf("%d%s", solved[r][c], sep)
				}
				fmt.Println()
				if r == 2 || r == 5 {
					fmt.Println("-----+-----+-----")
				}
			}

			return nil
		},
	}
}

func parseGrid(s string) (sudoku.Grid, error) {
	var g sudoku.Grid
	if len(s) != 81 {
		return g, fmt.Errorf("puzzle must be 81 characters, got %d", len(s))
	}
	for i, ch := range []byte(s) {
		switch {
		case ch == '.' || ch == '0':
			// empty cell
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = int(ch - '0')
		default:
			return g, fmt.Errorf("position %d: unexpected character %q", i, ch)
		}
	}

	return g, nil
}

func pentominoCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "pentomino",
		Short: "Stream 6×10 pentomino tilings",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			start := time.Now()
			tl := pentomino.Tilings()
			count := 0
			for {
				if limit > 0 && count == limit {
					break
				}
				b, ok := tl.Next()
				if !ok {
					break
				}
				count++
				fmt.Printf("Solution %d:\n", count)
				for _, row := range b {
					fmt.Printf("%s\n", row[:])
				}
				fmt.Println()
			}
			log.WithFields(logrus.Fields{"tilings": count, "elapsed": time.Since(start)}).Info("enumeration stopped")
			fmt.Printf("%d tilings\n", count)

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 6, "stop after this many tilings (0 = enumerate everything)")

	return cmd
}
