package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/will2dye4/sudoku/puzzle"
	"github.com/will2dye4/sudoku/store"
)

var (
	savePuzzleName   string
	savePuzzleString string
	clearPuzzle      string
)

func init() {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the puzzle library and solution cache",
	}

	prepareCmd := &cobra.Command{
		Use:   "prepare",
		Short: "Create the puzzle library and seed the sample catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext()
			id, err := store.DatabaseConnect(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)
			logrus.WithField("database", id).Info("puzzle library ready")
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the puzzles in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext()
			if _, err := store.DatabaseConnect(ctx); err != nil {
				return err
			}
			defer store.Close(ctx)
			names, err := store.ListPuzzles(ctx)
			if err != nil {
				return err
			}
			for _, name := range names {
				grid, err := store.LookupPuzzle(ctx, name)
				if err != nil {
					return err
				}
				fmt.Printf("%-12s %s\n", name, grid)
			}
			return nil
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Save a puzzle to the library under a name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if savePuzzleName == "" || savePuzzleString == "" {
				return fmt.Errorf("save needs both --name and --string")
			}
			ctx := cmdContext()
			if _, err := store.DatabaseConnect(ctx); err != nil {
				return err
			}
			defer store.Close(ctx)
			if err := store.SavePuzzle(ctx, savePuzzleName, savePuzzleString); err != nil {
				return err
			}
			logrus.WithField("puzzle", savePuzzleName).Info("puzzle saved")
			return nil
		},
	}
	saveCmd.Flags().StringVarP(&savePuzzleName, "name", "n", "", "Name to save the puzzle under")
	saveCmd.Flags().StringVarP(&savePuzzleString, "string", "s", "", "Puzzle as an 81-character string")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop cached solutions for a puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearPuzzle == "" {
				return fmt.Errorf("clear needs --name")
			}
			text, err := puzzle.ByName(clearPuzzle)
			if err != nil {
				return err
			}
			grid, err := puzzle.GridFromText(text)
			if err != nil {
				return err
			}
			if _, err := store.CacheConnect(); err != nil {
				return err
			}
			defer store.Close(cmdContext())
			if err := store.DropSolutions(grid.Condensed()); err != nil {
				return err
			}
			logrus.WithField("puzzle", clearPuzzle).Info("cached solutions dropped")
			return nil
		},
	}
	clearCmd.Flags().StringVarP(&clearPuzzle, "name", "n", "", "Name of the puzzle to clear")

	storeCmd.AddCommand(prepareCmd, listCmd, saveCmd, clearCmd)
	rootCmd.AddCommand(storeCmd)
}
