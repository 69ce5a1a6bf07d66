package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meta-dds/meta-dds/internal/manifest"
)

var validateQuiet bool

func init() {
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Suppress the issue report, set the exit status only")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <meta_package.json5>",
	Short: "Validate a package manifest",
	Long: `Validate a meta_package.json5 file.

The schema report lists every shape problem it can find; the final verdict
comes from the manifest parser, which stops at the first error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}
		if !result.Valid && !validateQuiet {
			for _, issue := range result.Issues {
				location := issue.Path
				if location == "" {
					location = "(document root)"
				}
				fmt.Printf("  %s: %s\n", location, issue.Message)
			}
		}

		if _, err := manifest.LoadFile(path); err != nil {
			return err
		}

		if !validateQuiet {
			fmt.Printf("%s is a valid package manifest\n", path)
		}
		return nil
	},
}
