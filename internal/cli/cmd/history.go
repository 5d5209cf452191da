package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/burrow/internal/cli/styles"
)

var (
	historyJSON  bool
	historyLimit int
	historyYes   bool
)

const defaultHistoryLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and clear visit history",
	Long:  `Visit history of persistent tabs. Incognito and amnesia tabs are never recorded.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent visits",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all visit history",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", defaultHistoryLimit, "maximum entries to show")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyClearCmd.Flags().BoolVarP(&historyYes, "yes", "y", false, "skip confirmation prompt")
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewHistoryRenderer(app.Theme)

	uc, err := app.History()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	entries, err := uc.ListRecent(app.Ctx(), historyLimit)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	if historyJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Println(renderer.RenderList(entries))
	return nil
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewHistoryRenderer(app.Theme)

	if !historyYes {
		ok, err := styles.Confirm(app.Theme, "Delete all visit history?")
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			fmt.Println(styles.NewConfigRenderer(app.Theme).RenderCanceled())
			return nil
		}
	}

	uc, err := app.History()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	if err := uc.Clear(app.Ctx()); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	fmt.Println(renderer.RenderCleared())
	return nil
}
