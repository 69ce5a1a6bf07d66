package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/meta-dds/meta-dds/internal/manifest"
)

var (
	depsJSON bool
	depsYAML bool
)

func init() {
	depsCmd.Flags().BoolVar(&depsJSON, "json", false, "Print dependencies as JSON")
	depsCmd.Flags().BoolVar(&depsYAML, "yaml", false, "Print dependencies as YAML")
	rootCmd.AddCommand(depsCmd)
}

// depsReport is the machine-readable shape of the deps command output.
type depsReport struct {
	Depends         []string `json:"depends" yaml:"depends"`
	TestDepends     []string `json:"test_depends" yaml:"test_depends"`
	MetaDepends     []string `json:"meta_depends" yaml:"meta_depends"`
	MetaTestDepends []string `json:"meta_test_depends" yaml:"meta_test_depends"`
}

var depsCmd = &cobra.Command{
	Use:   "deps <meta_package.json5>",
	Short: "Print the dependencies declared in a package manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.LoadFile(args[0])
		if err != nil {
			return err
		}

		report := buildDepsReport(m)

		switch {
		case depsJSON:
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling dependency report: %w", err)
			}
			fmt.Println(string(out))
		case depsYAML:
			out, err := yaml.Marshal(report)
			if err != nil {
				return fmt.Errorf("marshaling dependency report: %w", err)
			}
			fmt.Print(string(out))
		default:
			printDepsSection("depends", report.Depends)
			printDepsSection("test_depends", report.TestDepends)
			printDepsSection("meta_dds.depends", report.MetaDepends)
			printDepsSection("meta_dds.test_depends", report.MetaTestDepends)
		}
		return nil
	},
}

func buildDepsReport(m *manifest.PackageManifest) depsReport {
	report := depsReport{
		Depends:         []string{},
		TestDepends:     []string{},
		MetaDepends:     []string{},
		MetaTestDepends: []string{},
	}
	for _, d := range m.Depends {
		report.Depends = append(report.Depends, d.String())
	}
	for _, d := range m.TestDepends {
		report.TestDepends = append(report.TestDepends, d.String())
	}
	for _, d := range m.MetaDepends {
		report.MetaDepends = append(report.MetaDepends, d.Dependency.String())
	}
	for _, d := range m.MetaTestDepends {
		report.MetaTestDepends = append(report.MetaTestDepends, d.Dependency.String())
	}
	return report
}

func printDepsSection(title string, entries []string) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, e := range entries {
		fmt.Printf("  %s\n", e)
	}
}
