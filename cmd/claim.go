package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/sfin/api"
	"github.com/ledgerline/sfin/secrets"
)

var storeClaimed bool

// claimCmd represents the claim command
var claimCmd = &cobra.Command{
	Use:   "claim <setup-token>",
	Short: "Exchange a one-time setup token for access credentials",
	Long: `Claim exchanges a Base64-encoded setup token for an access URL.
Setup tokens are single use: the bridge invalidates them on the first
claim, so save the resulting access URL (or pass --store to keep it in
AWS Secrets Manager).`,
	Example: `  # Claim and print the access URL
  sfin claim "aHR0cHM6Ly9icmlkZ2UuZXhhbXBsZS5jb20vY2xhaW0vZGVtbw=="

  # Claim and store the credentials in Secrets Manager
  sfin claim --store --secret-name "my-sfin-credentials" "aHR0cHM6..."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		bridge, err := api.NewBridgeClient(cfg.BridgeURL, api.WithUserAgent(cfg.UserAgent))
		if err != nil {
			return err
		}
		defer bridge.Close()

		credentials, err := bridge.Claim(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to claim setup token: %w", err)
		}

		if storeClaimed {
			manager, err := secrets.NewManager(ctx)
			if err != nil {
				return fmt.Errorf("failed to create Secrets Manager client: %w", err)
			}
			if err := manager.StoreCredentials(ctx, secretName, credentials); err != nil {
				return fmt.Errorf("failed to store credentials: %w", err)
			}
			fmt.Printf("Stored access credentials in secret %q\n", secretName)
			fmt.Printf("You can now use: sfin fetch --use-secrets --secret-name %q\n", secretName)
			return nil
		}

		fmt.Println(credentials.AccessURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(claimCmd)
	claimCmd.Flags().BoolVar(&storeClaimed, "store", false, "Store the claimed credentials in AWS Secrets Manager")
}
