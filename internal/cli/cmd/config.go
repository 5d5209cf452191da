package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/burrow/internal/cli/styles"
	"github.com/bnema/burrow/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and reset preferences",
	Long:  `Show where settings.json lives, print its effective values, emit its JSON schema or restore defaults.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Long:  `Print the preferences the browser would use, after merging the file with defaults.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of settings.json",
	RunE:  runConfigSchema,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Long: `Overwrite settings.json with the default preferences.

Asks for confirmation unless --yes is given.`,
	RunE: runConfigReset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Config.Path()

	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderPath(path, exists))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Println(renderer.RenderPreferences(app.Config.Path(), app.Config.Source().String(), app.Config.Get()))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	return config.WriteSchema(cmd.OutOrStdout())
}

func runConfigReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)

	if !configYes {
		ok, err := styles.Confirm(app.Theme, "Restore default preferences?")
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			fmt.Println(renderer.RenderCanceled())
			return nil
		}
	}

	if err := app.Config.Reset(app.Ctx()); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	fmt.Println(renderer.RenderResetDone(app.Config.Path()))
	return nil
}
