package project

import (
	"strings"

	"webstart/pkg/catalog"
)

// Setup carries everything the materializer needs to know about the project
// being created. The wizard fills it in one prompt at a time and treats it
// as read-only once materialization starts.
type Setup struct {
	Template    catalog.Template
	ProjectID   string
	ProjectName string
	AuthorName  string
	AuthorEmail string
}

// DeriveProjectID turns a free-text project name into a filesystem-safe
// identifier: whitespace is trimmed, runs of whitespace collapse to a single
// hyphen and every token is lowercased. Deriving twice from the same raw
// name always yields the same id. An all-whitespace name yields "".
func DeriveProjectID(raw string) string {
	fields := strings.Fields(raw)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return strings.Join(fields, "-")
}
