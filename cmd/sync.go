package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/ledgerline/sfin/api"
	"github.com/ledgerline/sfin/db"
)

var dbPathFlag string

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch accounts and record balance snapshots locally",
	Long: `Sync fetches the current account set and writes one balance snapshot
per account into a local sqlite database, keyed by a per-run id. Running
it on a schedule builds a balance history without keeping transaction
data around.`,
	Example: `  # Snapshot balances into the default database
  sfin sync --use-secrets

  # Snapshot into an explicit database file
  sfin sync --use-secrets --db ./balances.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		credentials, err := getCredentials(ctx)
		if err != nil {
			return fmt.Errorf("failed to get access credentials: %w", err)
		}

		dbPath := dbPathFlag
		if dbPath == "" {
			dbPath, err = cfg.DatabasePath()
			if err != nil {
				return err
			}
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		store, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer store.Close()

		client := api.NewAccessClient(credentials, api.WithUserAgent(cfg.UserAgent))
		defer client.Close()

		set, err := client.GetAccounts(ctx, &api.GetAccountsOptions{BalancesOnly: true})
		if err != nil {
			return fmt.Errorf("failed to get accounts: %w", err)
		}

		runID := uuid.New().String()
		if err := store.RecordAccountSet(set, runID); err != nil {
			return fmt.Errorf("failed to record snapshots: %w", err)
		}

		fmt.Printf("Recorded %d balance snapshot(s), run %s\n", len(set.Accounts), runID)
		for _, message := range set.ServerMessages {
			fmt.Printf("Server message: %s\n", message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&dbPathFlag, "db", "", "Path to the snapshot database")
}
