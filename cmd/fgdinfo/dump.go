package main

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file.fgd>",
	Short: "Write the whole entity registry as YAML or TOML",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("format", "f", "yaml", "output format: yaml or toml")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(args[0])
	if err != nil {
		return err
	}

	return writeReport(cmd, reportRegistry(reg))
}

// writeReport marshals report per the invoking command's --format flag.
func writeReport(cmd *cobra.Command, report any) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	var out []byte
	switch format {
	case "yaml":
		out, err = yaml.Marshal(report)
	case "toml":
		out, err = toml.Marshal(report)
	default:
		return fmt.Errorf("unknown format %q (want yaml or toml)", format)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
