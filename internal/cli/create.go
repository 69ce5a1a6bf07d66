package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

var createOutputDir string

func init() {
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Output directory (default: ./<name>)")
	rootCmd.AddCommand(createCmd)
}

// manifestTemplate is the starter meta_package.json5 written by create.
const manifestTemplate = `{
	// Package manifest for %s. Fields other than the dependency arrays and
	// the meta_dds block are read by dds itself.
	name: "%s",
	version: "0.1.0",

	depends: [],
	test_depends: [],

	meta_dds: {
		depends: [],
		test_depends: [],
	},
}
`

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a starter meta_package.json5 for a new package",
	Long: `Create a new package directory containing a minimal meta_package.json5
with an empty meta_dds block.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !namePattern.MatchString(name) {
			return fmt.Errorf("invalid package name %q: use lowercase letters, digits, '.', '_', and '-'", name)
		}

		outDir := createOutputDir
		if outDir == "" {
			outDir = name
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("creating package directory %s: %w", outDir, err)
		}

		manifestPath := filepath.Join(outDir, "meta_package.json5")
		if _, err := os.Stat(manifestPath); err == nil {
			return fmt.Errorf("%s already exists", manifestPath)
		}
		content := fmt.Sprintf(manifestTemplate, name, name)
		if err := os.WriteFile(manifestPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", manifestPath, err)
		}

		fmt.Printf("Created %s\n", manifestPath)
		return nil
	},
}
