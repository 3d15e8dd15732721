package model

import "strconv"

// BridgeInfo is the /info endpoint response: the protocol versions a
// bridge supports, in the order the server listed them.
type BridgeInfo struct {
	Versions []string
}

func BridgeInfoFromJSON(obj map[string]any) (BridgeInfo, error) {
	raw, ok := obj["versions"].([]any)
	if !ok {
		return BridgeInfo{}, formatErr("versions", "must be a list")
	}
	versions := make([]string, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return BridgeInfo{}, formatErr("versions["+strconv.Itoa(i)+"]", "must be a string")
		}
		versions = append(versions, s)
	}
	return BridgeInfo{Versions: versions}, nil
}

func (b BridgeInfo) ToJSON() map[string]any {
	versions := make([]any, len(b.Versions))
	for i, v := range b.Versions {
		versions[i] = v
	}
	return map[string]any{"versions": versions}
}
