package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountSetPayload = `{
	"errors": ["Connection to Example Bank may be delayed"],
	"accounts": [
		{
			"org": {
				"sfin-url": "https://bank.example.com/sfin",
				"domain": "bank.example.com",
				"name": "Example Bank",
				"url": "https://bank.example.com",
				"id": "org_123"
			},
			"id": "acc-001",
			"name": "Checking",
			"currency": "USD",
			"balance": "1000.00",
			"available-balance": "950.00",
			"balance-date": 1609459200,
			"transactions": [
				{
					"id": "txn-1",
					"posted": 1609459200,
					"amount": "-50.00",
					"description": "Coffee Shop",
					"transacted_at": 1609455600,
					"pending": 1,
					"extra": {"memo": "morning coffee"}
				},
				{
					"id": "txn-2",
					"posted": 1609462800,
					"amount": "2500.00",
					"description": "Payroll"
				}
			]
		},
		{
			"org": {"sfin-url": "https://other.example.com/sfin"},
			"id": "acc-002",
			"name": "Savings",
			"currency": "USD",
			"balance": "5000",
			"balance-date": "1609459200"
		}
	]
}`

func decodePayload(t *testing.T, payload string) map[string]any {
	t.Helper()
	obj, err := DecodeObject([]byte(payload))
	require.NoError(t, err)
	return obj
}

func TestAccountSetFromJSON(t *testing.T) {
	set, err := AccountSetFromJSON(decodePayload(t, accountSetPayload))
	require.NoError(t, err)

	require.Len(t, set.ServerMessages, 1)
	assert.Equal(t, "Connection to Example Bank may be delayed", set.ServerMessages[0])
	require.Len(t, set.Accounts, 2)

	checking := set.Accounts[0]
	assert.Equal(t, "acc-001", checking.ID)
	assert.Equal(t, "Checking", checking.Name)
	assert.Equal(t, "USD", checking.Currency)
	assert.Equal(t, "1000.00", checking.Balance.String())
	require.NotNil(t, checking.AvailableBalance)
	assert.Equal(t, "950.00", checking.AvailableBalance.String())
	assert.Equal(t, int64(1609459200), ToEpochSeconds(checking.BalanceDate))

	assert.Equal(t, "org_123", checking.Org.ID)
	assert.Equal(t, "Example Bank", checking.Org.Name)
	assert.Equal(t, "https://bank.example.com/sfin", checking.Org.SfinURL.String())
	require.NotNil(t, checking.Org.URL)

	require.Len(t, checking.Transactions, 2)
	coffee := checking.Transactions[0]
	assert.Equal(t, "txn-1", coffee.ID)
	assert.Equal(t, "-50.00", coffee.Amount.String())
	assert.True(t, coffee.Amount.Equal(decimal.NewFromInt(-50)))
	assert.True(t, coffee.Pending)
	require.NotNil(t, coffee.TransactedAt)
	assert.Equal(t, int64(1609455600), ToEpochSeconds(*coffee.TransactedAt))
	assert.Equal(t, "morning coffee", coffee.Extra["memo"])

	payroll := checking.Transactions[1]
	assert.False(t, payroll.Pending)
	assert.Nil(t, payroll.TransactedAt)
	assert.Nil(t, payroll.Extra)

	savings := set.Accounts[1]
	assert.Empty(t, savings.Org.ID)
	assert.Nil(t, savings.AvailableBalance)
	assert.Empty(t, savings.Transactions)
	// numeric-string balance-date accepted
	assert.Equal(t, int64(1609459200), ToEpochSeconds(savings.BalanceDate))
}

func TestAccountSetFromJSON_Empty(t *testing.T) {
	set, err := AccountSetFromJSON(decodePayload(t, `{"errors": [], "accounts": []}`))
	require.NoError(t, err)
	assert.Empty(t, set.ServerMessages)
	assert.Empty(t, set.Accounts)
}

func TestAccountSetFromJSON_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			name:    "errors_missing",
			payload: `{"accounts": []}`,
			wantErr: "errors: must be a list",
		},
		{
			name:    "errors_not_strings",
			payload: `{"errors": [42], "accounts": []}`,
			wantErr: "errors[0]: must be a string",
		},
		{
			name:    "accounts_missing",
			payload: `{"errors": []}`,
			wantErr: "accounts: must be a list",
		},
		{
			name:    "accounts_not_objects",
			payload: `{"errors": [], "accounts": ["nope"]}`,
			wantErr: "accounts: must be a list of objects",
		},
		{
			name:    "account_missing_balance",
			payload: `{"errors": [], "accounts": [{"org": {"sfin-url": "https://b.example.com/sfin"}, "id": "a", "name": "A", "currency": "USD", "balance-date": 0}]}`,
			wantErr: "balance: is required",
		},
		{
			name:    "account_missing_org",
			payload: `{"errors": [], "accounts": [{"id": "a", "name": "A", "currency": "USD", "balance": "1", "balance-date": 0}]}`,
			wantErr: "org: must be an object",
		},
		{
			name:    "transaction_missing_amount",
			payload: `{"errors": [], "accounts": [{"org": {"sfin-url": "https://b.example.com/sfin"}, "id": "a", "name": "A", "currency": "USD", "balance": "1", "balance-date": 0, "transactions": [{"id": "t", "posted": 0, "description": "x"}]}]}`,
			wantErr: "amount: is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AccountSetFromJSON(decodePayload(t, tt.payload))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
			var formatErr *FormatError
			assert.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestOrganizationFromJSON_LenientOptionals(t *testing.T) {
	// Non-string domain/name/id collapse to "" instead of failing; this
	// matches payloads seen from deployed bridges.
	obj := decodePayload(t, `{"sfin-url": "https://b.example.com/sfin", "domain": 42, "name": null, "id": true}`)
	org, err := OrganizationFromJSON(obj)
	require.NoError(t, err)
	assert.Empty(t, org.Domain)
	assert.Empty(t, org.Name)
	assert.Empty(t, org.ID)
}

func TestOrganizationFromJSON_StrictURLs(t *testing.T) {
	_, err := OrganizationFromJSON(decodePayload(t, `{"sfin-url": "relative/path"}`))
	assert.ErrorContains(t, err, "sfin-url: must include a scheme and host")

	_, err = OrganizationFromJSON(decodePayload(t, `{"domain": "b.example.com"}`))
	assert.ErrorContains(t, err, "sfin-url: is required")

	_, err = OrganizationFromJSON(decodePayload(t, `{"sfin-url": "https://b.example.com/sfin", "url": 42}`))
	assert.ErrorContains(t, err, "url: must be a string")

	_, err = OrganizationFromJSON(decodePayload(t, `{"sfin-url": "https://b.example.com/sfin", "url": "not-absolute"}`))
	assert.ErrorContains(t, err, "url: must include a scheme and host")
}

func TestOrganizationKey(t *testing.T) {
	org, err := OrganizationFromJSON(decodePayload(t, `{"sfin-url": "https://b.example.com/sfin", "domain": "b.example.com", "id": "org_9"}`))
	require.NoError(t, err)
	assert.Equal(t, "org_9", org.Key())

	org.ID = ""
	assert.Equal(t, "b.example.com", org.Key())

	org.Domain = ""
	assert.Equal(t, "https://b.example.com/sfin", org.Key())
}

func TestTransactionFromJSON_PendingCoercion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    bool
		wantErr bool
	}{
		{name: "true", raw: "true", want: true},
		{name: "false", raw: "false", want: false},
		{name: "one", raw: "1", want: true},
		{name: "zero", raw: "0", want: false},
		{name: "negative", raw: "-2", want: true},
		{name: "zero_point_zero", raw: "0.0", want: false},
		{name: "string_fails", raw: `"yes"`, wantErr: true},
		{name: "list_fails", raw: `[1]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := decodePayload(t, "{\"id\": \"t\", \"posted\": 0, \"amount\": \"1\", \"description\": \"x\", \"pending\": "+tt.raw+"}")
			txn, err := TransactionFromJSON(obj)
			if tt.wantErr {
				assert.ErrorContains(t, err, "pending")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, txn.Pending)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original, err := AccountSetFromJSON(decodePayload(t, accountSetPayload))
	require.NoError(t, err)

	reparsed, err := AccountSetFromJSON(original.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, original, reparsed)
}

func TestBridgeInfoFromJSON(t *testing.T) {
	info, err := BridgeInfoFromJSON(decodePayload(t, `{"versions": ["1.0", "2.0-beta"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0", "2.0-beta"}, info.Versions)

	_, err = BridgeInfoFromJSON(decodePayload(t, `{"versions": "1.0"}`))
	assert.ErrorContains(t, err, "versions: must be a list")

	_, err = BridgeInfoFromJSON(decodePayload(t, `{"versions": ["1.0", 2]}`))
	assert.ErrorContains(t, err, "versions[1]: must be a string")

	roundTripped, err := BridgeInfoFromJSON(info.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, info, roundTripped)
}

func TestFilterByOrganizationID(t *testing.T) {
	set, err := AccountSetFromJSON(decodePayload(t, accountSetPayload))
	require.NoError(t, err)

	filtered := FilterByOrganizationID(set, "org_123")
	require.Len(t, filtered.Accounts, 1)
	assert.Equal(t, "acc-001", filtered.Accounts[0].ID)
	assert.Equal(t, set.ServerMessages, filtered.ServerMessages)

	// the source set is untouched
	assert.Len(t, set.Accounts, 2)

	none := FilterByOrganizationID(set, "org_missing")
	assert.Empty(t, none.Accounts)
	assert.Equal(t, set.ServerMessages, none.ServerMessages)

	// "" never matches: accounts without an org id stay excluded
	empty := FilterByOrganizationID(set, "")
	assert.Empty(t, empty.Accounts)
}
