package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerline/sfin/secrets"
)

var (
	listAll     bool
	forceDelete bool
)

// secretsCmd represents the secrets command
var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Manage stored access credentials in AWS Secrets Manager",
}

// listSecretsCmd represents the secrets list command
var listSecretsCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored credential secrets",
	Example: `  # List sfin-related secrets
  sfin secrets list

  # List every secret in the account
  sfin secrets list --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		manager, err := secrets.NewManager(ctx)
		if err != nil {
			return fmt.Errorf("failed to create Secrets Manager client: %w", err)
		}

		prefix := ""
		if !listAll {
			prefix = "sfin"
		}
		names, err := manager.ListSecrets(ctx, prefix)
		if err != nil {
			return fmt.Errorf("failed to list secrets: %w", err)
		}

		if len(names) == 0 {
			if prefix != "" {
				fmt.Printf("No secrets found with prefix %q\n", prefix)
			} else {
				fmt.Println("No secrets found")
			}
			return nil
		}
		fmt.Printf("Found %d secret(s):\n", len(names))
		for i, name := range names {
			fmt.Printf("%d. %s\n", i+1, name)
		}
		return nil
	},
}

// deleteSecretCmd represents the secrets delete command
var deleteSecretCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored credential secret",
	Long: `Delete permanently removes the secret from AWS Secrets Manager.
The access URL inside it cannot be recovered; a new setup token would be
needed to reconnect.`,
	Example: `  sfin secrets delete --secret-name "my-sfin-credentials"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if secretName == "" {
			return fmt.Errorf("secret name is required")
		}

		if !forceDelete {
			fmt.Printf("Are you sure you want to delete secret %q? This cannot be undone. (y/N): ", secretName)
			var response string
			fmt.Scanln(&response)
			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		manager, err := secrets.NewManager(ctx)
		if err != nil {
			return fmt.Errorf("failed to create Secrets Manager client: %w", err)
		}
		if err := manager.DeleteCredentials(ctx, secretName); err != nil {
			return fmt.Errorf("failed to delete secret: %w", err)
		}
		fmt.Printf("Deleted secret: %s\n", secretName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(secretsCmd)
	secretsCmd.AddCommand(listSecretsCmd)
	secretsCmd.AddCommand(deleteSecretCmd)

	listSecretsCmd.Flags().BoolVar(&listAll, "all", false, "List all secrets, not just sfin-related ones")
	deleteSecretCmd.Flags().BoolVar(&forceDelete, "force", false, "Delete without confirmation")
}
