package api

import (
	"net/url"
	"strconv"
	"time"

	"github.com/ledgerline/sfin/model"
)

// GetAccountsOptions narrows an accounts query. The zero value requests
// everything.
type GetAccountsOptions struct {
	StartDate      *time.Time
	EndDate        *time.Time
	IncludePending bool
	AccountIDs     []string
	BalancesOnly   bool
}

// Values renders the options into the accounts endpoint's query
// parameters. Dates become epoch seconds, flags become "1", and account
// ids become a repeated "account" parameter in input order. An empty
// result means no query string.
func (o *GetAccountsOptions) Values() (url.Values, error) {
	values := url.Values{}
	if o == nil {
		return values, nil
	}
	if o.StartDate != nil && o.EndDate != nil && o.StartDate.After(*o.EndDate) {
		return nil, ErrInvalidDateRange
	}
	if o.StartDate != nil {
		values.Set("start-date", strconv.FormatInt(model.ToEpochSeconds(*o.StartDate), 10))
	}
	if o.EndDate != nil {
		values.Set("end-date", strconv.FormatInt(model.ToEpochSeconds(*o.EndDate), 10))
	}
	if o.IncludePending {
		values.Set("pending", "1")
	}
	if o.BalancesOnly {
		values.Set("balances-only", "1")
	}
	for _, id := range o.AccountIDs {
		if id != "" {
			values.Add("account", id)
		}
	}
	return values, nil
}
