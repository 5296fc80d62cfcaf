package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/forgetools/fgd/filesys"
	"github.com/forgetools/fgd/parser"
)

var rootCmd = &cobra.Command{
	Use:   "fgdinfo",
	Short: "Inspect FGD entity definition files",
	Long:  "fgdinfo loads an FGD file and its includes into an entity registry and reports on it.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("dir", "", "root directory for include resolution (default: the FGD file's directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
}

func initConfig() {
	viper.SetConfigName(".fgdinfo")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("FGDINFO")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	level := slog.LevelInfo
	if verbose, _ := rootCmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// splitRoot decides the include-resolution root and the name of the root file
// within it. An explicit --dir (or FGDINFO_DIR / config "dir") wins; otherwise
// the file's own directory is the root.
func splitRoot(path string) (dir, name string) {
	if dir = viper.GetString("dir"); dir != "" {
		return dir, path
	}
	return filepath.Dir(path), filepath.Base(path)
}

func loadRegistry(path string) (*parser.FGD, error) {
	dir, name := splitRoot(path)
	slog.Debug("loading registry", "dir", dir, "file", name)
	return parser.Parse(filesys.Dir(dir), name)
}
