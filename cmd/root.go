package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mindset/internal/config"
	"github.com/abhisek/mindset/internal/mindset"
)

var rootCmd = &cobra.Command{
	Use:   "mindset",
	Short: "Growth Mindset dashboard",
	Long: `Mindset is a terminal dashboard for building a growth mindset: tell it about
yourself, take a short mindset quiz and track skills, achievements and
learning goals. Nothing is saved when the session ends.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.yaml (default $XDG_CONFIG_HOME/mindset/config.yaml)")
	rootCmd.PersistentFlags().String("variant", "", "Dashboard variant: challenge or tracker (overrides MINDSET_VARIANT)")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration file and environment, then applies
// --variant, which has the highest priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("variant"); v != "" {
		variant, err := mindset.ParseVariant(v)
		if err != nil {
			return nil, err
		}
		cfg.Variant = variant
	}
	return cfg, nil
}
