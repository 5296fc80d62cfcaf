package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file.fgd> <classname>",
	Short: "Show one entity class, including its resolved bases",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringP("format", "f", "yaml", "output format: yaml or toml")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(args[0])
	if err != nil {
		return err
	}

	def := reg.Entity(args[1])
	if def == nil {
		return fmt.Errorf("no class %q in %s", args[1], args[0])
	}

	return writeReport(cmd, reportEntity(def))
}
