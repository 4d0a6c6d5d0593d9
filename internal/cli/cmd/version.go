package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		theme := styles.NewTheme()
		fmt.Println(theme.Title.Render("dumbtile") + " " + theme.Badge.Render(buildInfo.Version))
		fmt.Println(theme.Subtle.Render(buildInfo.String()))
		fmt.Println(theme.Subtle.Render(build.RepoURL()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
