package materialize

import (
	"encoding/json"
	"os"
)

// ManifestName is the housekeeping file every template carries at its root.
const ManifestName = "__template.json"

// Entry names one file requiring keyword substitution and the keywords to
// apply to it, in listed order.
type Entry struct {
	File     string   `json:"file"`
	Keywords []string `json:"keywords"`
}

type manifest struct {
	Project []Entry `json:"project"`
}

func readManifest(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m.Project, nil
}
