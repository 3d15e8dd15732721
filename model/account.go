package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a single account as reported by the bridge, balances exact
// and transactions in server order.
type Account struct {
	Org              Organization
	ID               string
	Name             string
	Currency         string
	Balance          decimal.Decimal
	AvailableBalance *decimal.Decimal
	BalanceDate      time.Time
	Transactions     []Transaction
	Extra            map[string]any
}

func AccountFromJSON(obj map[string]any) (Account, error) {
	rawOrg, ok := obj["org"].(map[string]any)
	if !ok {
		return Account{}, formatErr("org", "must be an object")
	}
	org, err := OrganizationFromJSON(rawOrg)
	if err != nil {
		return Account{}, err
	}
	id, err := expectString(obj, "id")
	if err != nil {
		return Account{}, err
	}
	name, err := expectString(obj, "name")
	if err != nil {
		return Account{}, err
	}
	currency, err := expectString(obj, "currency")
	if err != nil {
		return Account{}, err
	}
	balance, err := parseDecimal(obj["balance"], "balance")
	if err != nil {
		return Account{}, err
	}
	balanceDate, err := parseDateTime(obj["balance-date"], "balance-date")
	if err != nil {
		return Account{}, err
	}

	account := Account{
		Org:          org,
		ID:           id,
		Name:         name,
		Currency:     currency,
		Balance:      balance,
		BalanceDate:  balanceDate,
		Transactions: []Transaction{},
	}

	if v, ok := obj["available-balance"]; ok && v != nil {
		available, err := parseDecimal(v, "available-balance")
		if err != nil {
			return Account{}, err
		}
		account.AvailableBalance = &available
	}

	if v, ok := obj["transactions"]; ok && v != nil {
		raw, ok := v.([]any)
		if !ok {
			return Account{}, formatErr("transactions", "must be a list")
		}
		txns := make([]Transaction, 0, len(raw))
		for _, item := range raw {
			txnObj, ok := item.(map[string]any)
			if !ok {
				return Account{}, formatErr("transactions", "must be a list of objects")
			}
			txn, err := TransactionFromJSON(txnObj)
			if err != nil {
				return Account{}, err
			}
			txns = append(txns, txn)
		}
		account.Transactions = txns
	}

	extra, err := copyExtra(obj, "extra")
	if err != nil {
		return Account{}, err
	}
	account.Extra = extra
	return account, nil
}

func (a Account) ToJSON() map[string]any {
	obj := map[string]any{
		"org":          a.Org.ToJSON(),
		"id":           a.ID,
		"name":         a.Name,
		"currency":     a.Currency,
		"balance":      a.Balance.String(),
		"balance-date": ToEpochSeconds(a.BalanceDate),
	}
	if a.AvailableBalance != nil {
		obj["available-balance"] = a.AvailableBalance.String()
	}
	if len(a.Transactions) > 0 {
		txns := make([]any, len(a.Transactions))
		for i, t := range a.Transactions {
			txns[i] = t.ToJSON()
		}
		obj["transactions"] = txns
	}
	if a.Extra != nil {
		obj["extra"] = a.Extra
	}
	return obj
}
