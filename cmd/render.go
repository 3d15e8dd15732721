package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ledgerline/sfin/model"
)

// renderAccountSet formats the set for the terminal in the requested
// format. The renderers only read the typed model; parsing and filtering
// happened before this point.
func renderAccountSet(set model.AccountSet, format string) error {
	switch format {
	case "table":
		return renderTable(set)
	case "json":
		return renderJSON(set)
	case "csv":
		return renderCSV(set)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderTable(set model.AccountSet) error {
	for _, message := range set.ServerMessages {
		fmt.Printf("Server message: %s\n", message)
	}
	fmt.Printf("Found %d account(s):\n", len(set.Accounts))
	for i, account := range set.Accounts {
		fmt.Printf("%d. Account: %s\n", i+1, account.Name)
		fmt.Printf("   ID: %s\n", account.ID)
		fmt.Printf("   Balance: %s %s (as of %s)\n",
			account.Balance.String(), account.Currency,
			account.BalanceDate.Format("2006-01-02"))
		if account.AvailableBalance != nil {
			fmt.Printf("   Available: %s %s\n", account.AvailableBalance.String(), account.Currency)
		}
		fmt.Printf("   Organization: %s\n", orgLabel(account.Org))
		if len(account.Transactions) > 0 {
			fmt.Printf("   Transactions: %d\n", len(account.Transactions))
			for _, txn := range account.Transactions {
				marker := ""
				if txn.Pending {
					marker = " (pending)"
				}
				fmt.Printf("     %s  %10s  %s%s\n",
					txn.Posted.Format("2006-01-02"), txn.Amount.String(), txn.Description, marker)
			}
		}
		fmt.Println()
	}
	return nil
}

func orgLabel(org model.Organization) string {
	if org.Name != "" {
		return org.Name
	}
	return org.Key()
}

func renderJSON(set model.AccountSet) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(set.ToJSON())
}

// renderCSV writes one row per transaction, or one row per account when
// the set carries no transactions at all.
func renderCSV(set model.AccountSet) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	hasTransactions := false
	for _, account := range set.Accounts {
		if len(account.Transactions) > 0 {
			hasTransactions = true
			break
		}
	}

	if !hasTransactions {
		if err := w.Write([]string{"account_id", "account_name", "organization", "currency", "balance", "balance_date"}); err != nil {
			return err
		}
		for _, account := range set.Accounts {
			record := []string{
				account.ID,
				account.Name,
				orgLabel(account.Org),
				account.Currency,
				account.Balance.String(),
				account.BalanceDate.UTC().Format(time.RFC3339),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return w.Error()
	}

	if err := w.Write([]string{"account_id", "account_name", "transaction_id", "posted", "amount", "currency", "description", "pending"}); err != nil {
		return err
	}
	for _, account := range set.Accounts {
		for _, txn := range account.Transactions {
			record := []string{
				account.ID,
				account.Name,
				txn.ID,
				txn.Posted.UTC().Format(time.RFC3339),
				txn.Amount.String(),
				account.Currency,
				txn.Description,
				strconv.FormatBool(txn.Pending),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	return w.Error()
}
