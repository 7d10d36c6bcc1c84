package npmkit

import "encoding/json"

// NormalizeWorkspaces flattens the "workspaces" field of a package.json into
// a plain list of globs. The field may be absent (nil), a plain list, or an
// object whose "packages" field holds the list. Malformed shapes — including
// a list with any non-string element — normalize to an empty list rather
// than an error.
func NormalizeWorkspaces(v any) []string {
	switch ws := v.(type) {
	case nil:
		return []string{}
	case []string:
		return ws
	case []any:
		out := make([]string, 0, len(ws))
		for _, item := range ws {
			s, ok := item.(string)
			if !ok {
				return []string{}
			}
			out = append(out, s)
		}
		return out
	case map[string]any:
		return NormalizeWorkspaces(ws["packages"])
	default:
		return []string{}
	}
}

// Workspaces is the decoded "workspaces" field of a package.json. It accepts
// both forms the field takes on npm:
//
//	"workspaces": ["packages/*"]
//	"workspaces": {"packages": ["packages/*"]}
//
// and always decodes to a plain list, applying [NormalizeWorkspaces].
type Workspaces []string

func (w *Workspaces) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = NormalizeWorkspaces(raw)
	return nil
}

// PackageJSON is the slice of a package manifest this toolkit reads.
type PackageJSON struct {
	Name       string     `json:"name"`
	Version    string     `json:"version,omitempty"`
	Private    bool       `json:"private,omitempty"`
	Workspaces Workspaces `json:"workspaces,omitempty"`
}
