package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/sfin/api"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the protocol versions the bridge supports",
	Example: `  sfin info
  sfin info --config ./staging.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		bridge, err := api.NewBridgeClient(cfg.BridgeURL, api.WithUserAgent(cfg.UserAgent))
		if err != nil {
			return err
		}
		defer bridge.Close()

		info, err := bridge.Info(ctx)
		if err != nil {
			return fmt.Errorf("failed to get bridge info: %w", err)
		}

		fmt.Printf("Bridge: %s\n", cfg.BridgeURL)
		for _, version := range info.Versions {
			fmt.Printf("  version %s\n", version)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
