package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/sfin/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	currency TEXT NOT NULL,
	org_id   TEXT,
	org_name TEXT
);
CREATE TABLE IF NOT EXISTS balance_snapshots (
	account_id   TEXT NOT NULL REFERENCES accounts(id),
	run_id       TEXT NOT NULL,
	balance      TEXT NOT NULL,
	balance_date INTEGER NOT NULL,
	recorded_at  INTEGER NOT NULL,
	PRIMARY KEY (account_id, run_id)
);`

// Client records fetched accounts and per-run balance snapshots in a
// local sqlite database. Balances are stored as decimal text, never as
// floats.
type Client struct {
	db *sqlx.DB
}

func Open(path string) (*Client, error) {
	conn, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, err
	}
	return &Client{db: conn}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) HasAccount(accountID string) (bool, error) {
	var count int
	if err := c.db.Get(&count, "SELECT COUNT(*) FROM accounts WHERE id = ?", accountID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *Client) PutAccount(account model.Account) error {
	_, err := c.db.Exec(
		"INSERT INTO accounts (id, name, currency, org_id, org_name) VALUES (?, ?, ?, ?, ?)",
		account.ID, account.Name, account.Currency, account.Org.ID, account.Org.Name,
	)
	return err
}

func (c *Client) PutBalanceSnapshot(accountID, runID string, balance decimal.Decimal, balanceDate time.Time) error {
	_, err := c.db.Exec(
		"INSERT INTO balance_snapshots (account_id, run_id, balance, balance_date, recorded_at) VALUES (?, ?, ?, ?, ?)",
		accountID, runID, balance.String(), model.ToEpochSeconds(balanceDate), time.Now().Unix(),
	)
	return err
}

// RecordAccountSet upserts every account in the set and writes one
// balance snapshot per account under runID.
func (c *Client) RecordAccountSet(set model.AccountSet, runID string) error {
	for _, account := range set.Accounts {
		exists, err := c.HasAccount(account.ID)
		if err != nil {
			return err
		}
		if !exists {
			if err := c.PutAccount(account); err != nil {
				return err
			}
		}
		if err := c.PutBalanceSnapshot(account.ID, runID, account.Balance, account.BalanceDate); err != nil {
			return err
		}
	}
	return nil
}
