// Package cmd implements the resumate CLI commands using Cobra.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foliotype/resumate/internal/adapters/config"
)

// Build-time version information, set via SetVersionInfo from main.go.
var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// Persistent flag values accessible to all subcommands.
var (
	cfgFile     string
	ProjectRoot string
	Verbose     bool
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "resumate",
	Short: "Compose, validate, and render résumés from portable formats",
	Long: `resumate reads résumés from JSON Resume, a legacy v3 export, or a
LinkedIn-style social export ZIP, validates them against a canonical
document model, and renders PDF or PNG previews from a fixed template
catalogue.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (env: RESUMATE_CONFIG_HOME)")
	rootCmd.PersistentFlags().StringVarP(&ProjectRoot, "project", "p", ".", "project root directory")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "enable verbose output (env: RESUMATE_VERBOSE)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "composing", Title: "Composing"},
		&cobra.Group{ID: "rendering", Title: "Rendering"},
		&cobra.Group{ID: "serving", Title: "Serving"},
	)
}

// Execute runs the root command. This is the main entry point called from main.go.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets build-time version information from ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		fmt.Sprintf("resumate %s (commit: %s, built: %s)\n", version, commit, date),
	)
}

// initConfig sets up Viper with the full precedence hierarchy: CLI flags >
// RESUMATE_* env vars > project resumate.toml > global XDG resumate.toml >
// built-in defaults.
func initConfig() error {
	viper.SetConfigType("toml")

	viper.SetDefault("render.default_template", "rhyhorn")
	viper.SetDefault("render.margin_points", 36.0)
	viper.SetDefault("render.base_font_size", 10.5)
	viper.SetDefault("cache.max_entries", 0)
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.hot_reload", false)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else {
		resolver := config.NewXDGPathResolver()
		viper.SetConfigFile(resolver.ConfigFile())
		_ = viper.ReadInConfig()
	}

	viper.SetConfigFile("resumate.toml")
	_ = viper.MergeInConfig()

	viper.SetEnvPrefix("RESUMATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if !rootCmd.PersistentFlags().Changed("verbose") && viper.GetBool("verbose") {
		Verbose = true
	}

	return nil
}
