package model

import "strconv"

// AccountSet is the root /accounts response. ServerMessages carries the
// wire field named "errors", which holds informational strings rather
// than failures.
type AccountSet struct {
	ServerMessages []string
	Accounts       []Account
}

func AccountSetFromJSON(obj map[string]any) (AccountSet, error) {
	rawMessages, ok := obj["errors"].([]any)
	if !ok {
		return AccountSet{}, formatErr("errors", "must be a list")
	}
	messages := make([]string, 0, len(rawMessages))
	for i, v := range rawMessages {
		s, ok := v.(string)
		if !ok {
			return AccountSet{}, formatErr("errors["+strconv.Itoa(i)+"]", "must be a string")
		}
		messages = append(messages, s)
	}

	rawAccounts, ok := obj["accounts"].([]any)
	if !ok {
		return AccountSet{}, formatErr("accounts", "must be a list")
	}
	accounts := make([]Account, 0, len(rawAccounts))
	for _, item := range rawAccounts {
		accountObj, ok := item.(map[string]any)
		if !ok {
			return AccountSet{}, formatErr("accounts", "must be a list of objects")
		}
		account, err := AccountFromJSON(accountObj)
		if err != nil {
			return AccountSet{}, err
		}
		accounts = append(accounts, account)
	}
	return AccountSet{ServerMessages: messages, Accounts: accounts}, nil
}

func (s AccountSet) ToJSON() map[string]any {
	messages := make([]any, len(s.ServerMessages))
	for i, m := range s.ServerMessages {
		messages[i] = m
	}
	accounts := make([]any, len(s.Accounts))
	for i, a := range s.Accounts {
		accounts[i] = a.ToJSON()
	}
	return map[string]any{"errors": messages, "accounts": accounts}
}

// FilterByOrganizationID returns a new AccountSet holding only the
// accounts whose organization carries the given id. Server messages are
// carried through untouched and the source set is never modified.
func FilterByOrganizationID(s AccountSet, orgID string) AccountSet {
	filtered := make([]Account, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		if a.Org.ID != "" && a.Org.ID == orgID {
			filtered = append(filtered, a)
		}
	}
	messages := make([]string, len(s.ServerMessages))
	copy(messages, s.ServerMessages)
	return AccountSet{ServerMessages: messages, Accounts: filtered}
}
