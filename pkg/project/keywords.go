package project

import (
	"fmt"
	"time"
)

// Resolver produces the replacement value for one keyword token.
type Resolver func(Setup) string

// Now is the clock behind the setup date keyword. Tests override it.
var Now = time.Now

// Keywords is the closed set of placeholder tokens recognized in template
// files. Tokens outside this table are left byte-for-byte unchanged.
var Keywords = map[string]Resolver{
	"webstart-project-id":   func(s Setup) string { return s.ProjectID },
	"webstart-project-name": func(s Setup) string { return s.ProjectName },
	"webstart-project-author": func(s Setup) string {
		return fmt.Sprintf("%s <%s>", s.AuthorName, s.AuthorEmail)
	},
	"webstart-project-setupdate": func(Setup) string {
		return Now().Format("1/2/2006") + " (en-US)"
	},
	"webstart-template-url": func(s Setup) string { return s.Template.RepositoryURL },
	"@webstart":             func(s Setup) string { return "@" + s.ProjectID },
}

// Resolve returns the replacement for token. ok is false when the token is
// not part of the keyword table.
func Resolve(token string, s Setup) (value string, ok bool) {
	r, ok := Keywords[token]
	if !ok {
		return "", false
	}
	return r(s), true
}
