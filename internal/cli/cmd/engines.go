package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/burrow/internal/cli/styles"
	"github.com/bnema/burrow/internal/domain/entity"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the available search engines",
	Long:  `List the search engines by index. The configured one is highlighted.`,
	RunE:  runEngines,
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}

func runEngines(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Println(renderer.RenderEngines(entity.SearchEngines(), app.Config.Get().SearchEngineIndex))
	return nil
}
