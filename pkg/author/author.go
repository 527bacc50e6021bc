// Package author discovers the acting user's display name and email from
// the local version-control configuration.
package author

import "context"

// ConfigReader reads values from the local version-control configuration.
type ConfigReader interface {
	ConfigValue(ctx context.Context, key string) (string, error)
}

// Identity is the acting user's display name and email.
type Identity struct {
	Name  string
	Email string
}

// Fallback is used whenever the local identity cannot be determined.
var Fallback = Identity{Name: "Unknown", Email: ""}

// Resolve reads user.name and user.email from the local configuration. It
// never fails: any lookup error degrades to the fallback identity so the
// wizard can proceed.
func Resolve(ctx context.Context, reader ConfigReader) Identity {
	name, err := reader.ConfigValue(ctx, "user.name")
	if err != nil || name == "" {
		return Fallback
	}

	email, err := reader.ConfigValue(ctx, "user.email")
	if err != nil {
		email = ""
	}

	return Identity{Name: name, Email: email}
}
