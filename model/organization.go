package model

import "net/url"

// Organization identifies the financial institution behind an account.
// Only SfinURL is guaranteed present; the bridge may omit everything else.
type Organization struct {
	SfinURL *url.URL
	Domain  string
	Name    string
	URL     *url.URL
	ID      string
}

// Key is the identity used for de-duplication: id when present, else
// domain, else the sfin-url string form.
func (o Organization) Key() string {
	if o.ID != "" {
		return o.ID
	}
	if o.Domain != "" {
		return o.Domain
	}
	return o.SfinURL.String()
}

// OrganizationFromJSON parses the "org" object of an account. domain,
// name and id are deliberately lenient: deployed bridges have been seen
// sending non-string values there, which collapse to "" rather than
// failing the whole payload. sfin-url and url stay strict.
func OrganizationFromJSON(obj map[string]any) (Organization, error) {
	rawSfin, err := expectString(obj, "sfin-url")
	if err != nil {
		return Organization{}, err
	}
	sfinURL, err := ParseURI(rawSfin, "sfin-url")
	if err != nil {
		return Organization{}, err
	}

	org := Organization{
		SfinURL: sfinURL,
		Domain:  optionalString(obj, "domain"),
		Name:    optionalString(obj, "name"),
		ID:      optionalString(obj, "id"),
	}

	if v, ok := obj["url"]; ok && v != nil {
		raw, ok := v.(string)
		if !ok {
			return Organization{}, formatErr("url", "must be a string")
		}
		u, err := ParseURI(raw, "url")
		if err != nil {
			return Organization{}, err
		}
		org.URL = u
	}
	return org, nil
}

func (o Organization) ToJSON() map[string]any {
	obj := map[string]any{"sfin-url": o.SfinURL.String()}
	if o.Domain != "" {
		obj["domain"] = o.Domain
	}
	if o.Name != "" {
		obj["name"] = o.Name
	}
	if o.URL != nil {
		obj["url"] = o.URL.String()
	}
	if o.ID != "" {
		obj["id"] = o.ID
	}
	return obj
}
