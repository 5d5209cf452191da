// Package cmd provides Cobra CLI commands for burrow.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/burrow/internal/cli"
	"github.com/bnema/burrow/internal/domain/build"
)

// commands that run without preferences or history loaded
var standalone = map[string]bool{
	"help":       true,
	"completion": true,
	"version":    true,
	"schema":     true,
}

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "burrow",
		Short: "A small tabbed web browser built on GTK4 and WebKitGTK",
		Long: `Burrow is a small tabbed web browser built on GTK4 and WebKitGTK.

Tabs share one persistent profile unless opened incognito, in which case
each gets its own throwaway context. Amnesia mode makes every new tab
ephemeral. Common ad containers are hidden by a built-in stylesheet.

With no subcommand (or with 'browse') the graphical browser starts.
The other subcommands inspect preferences and history from the terminal.`,
		SilenceUsage:      true,
		PersistentPreRunE: openApp,
		PersistentPostRun: closeApp,
	}
)

func openApp(cmd *cobra.Command, _ []string) error {
	if standalone[cmd.Name()] {
		return nil
	}
	a, err := cli.NewApp()
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	a.BuildInfo = buildInfo
	app = a
	return nil
}

func closeApp(_ *cobra.Command, _ []string) {
	if app == nil {
		return
	}
	_ = app.Close()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// browseCmd only documents the GUI entry point; cmd/burrow starts the
// browser before cobra parses anything.
var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Launch the graphical browser",
	Long: `Launch the GTK4 graphical browser.

If a URL or search text is provided, the first tab opens it. Otherwise
the first tab opens the configured homepage.

Examples:
  burrow browse                    # Open browser to homepage
  burrow browse example.com        # Open browser to URL
  burrow browse --incognito        # First tab in an ephemeral context`,
	Args: cobra.MaximumNArgs(1),
	Run:  func(_ *cobra.Command, _ []string) {},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", build.AppName, buildInfo.DisplayVersion())
		if buildInfo.BuildDate != "" {
			fmt.Fprintf(out, "built: %s\n", buildInfo.BuildDate)
		}
		if buildInfo.GoVersion != "" {
			fmt.Fprintf(out, "go: %s\n", buildInfo.GoVersion)
		}
	},
}

func init() {
	browseCmd.Flags().Bool("incognito", false, "open the first tab in an ephemeral context")
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
