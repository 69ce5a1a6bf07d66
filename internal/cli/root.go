package cli

import (
	"github.com/spf13/cobra"

	"github.com/meta-dds/meta-dds/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` wraps dds with an extra dependency layer: it reads the
meta_package.json5 manifest of a package, validates it, and drives dds and
CMake-based builds for the dependencies declared in the meta_dds block.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
