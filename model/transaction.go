package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single posted or pending transaction. Amount is an
// exact decimal: it round-trips the text the server sent without ever
// passing through a binary float.
type Transaction struct {
	ID           string
	Posted       time.Time
	Amount       decimal.Decimal
	Description  string
	TransactedAt *time.Time
	Pending      bool
	Extra        map[string]any
}

func TransactionFromJSON(obj map[string]any) (Transaction, error) {
	id, err := expectString(obj, "id")
	if err != nil {
		return Transaction{}, err
	}
	posted, err := parseDateTime(obj["posted"], "posted")
	if err != nil {
		return Transaction{}, err
	}
	amount, err := parseDecimal(obj["amount"], "amount")
	if err != nil {
		return Transaction{}, err
	}
	description, err := expectString(obj, "description")
	if err != nil {
		return Transaction{}, err
	}

	txn := Transaction{
		ID:          id,
		Posted:      posted,
		Amount:      amount,
		Description: description,
	}

	if v, ok := obj["transacted_at"]; ok && v != nil {
		at, err := parseDateTime(v, "transacted_at")
		if err != nil {
			return Transaction{}, err
		}
		txn.TransactedAt = &at
	}

	pending, err := parsePending(obj["pending"])
	if err != nil {
		return Transaction{}, err
	}
	txn.Pending = pending

	extra, err := copyExtra(obj, "extra")
	if err != nil {
		return Transaction{}, err
	}
	txn.Extra = extra
	return txn, nil
}

// parsePending coerces the wire "pending" value: absent means false,
// booleans pass through, numbers are true iff non-zero.
func parsePending(v any) (bool, error) {
	switch p := v.(type) {
	case nil:
		return false, nil
	case bool:
		return p, nil
	case json.Number:
		d, err := decimal.NewFromString(p.String())
		if err != nil {
			return false, &FormatError{Field: "pending", Msg: "must be a boolean or number", Cause: err}
		}
		return !d.IsZero(), nil
	case float64:
		return p != 0, nil
	case int:
		return p != 0, nil
	case int64:
		return p != 0, nil
	default:
		return false, formatErr("pending", "must be a boolean or number")
	}
}

func (t Transaction) ToJSON() map[string]any {
	obj := map[string]any{
		"id":          t.ID,
		"posted":      ToEpochSeconds(t.Posted),
		"amount":      t.Amount.String(),
		"description": t.Description,
	}
	if t.TransactedAt != nil {
		obj["transacted_at"] = ToEpochSeconds(*t.TransactedAt)
	}
	if t.Pending {
		obj["pending"] = true
	}
	if t.Extra != nil {
		obj["extra"] = t.Extra
	}
	return obj
}
