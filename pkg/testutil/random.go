// Package testutil provides utilities for testing
package testutil

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomString generates a random string of given length
func RandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// RandomProjectName generates a unique project name for testing
func RandomProjectName() string {
	return fmt.Sprintf("test-project-%s-%d", RandomString(6), time.Now().UnixNano())
}

// RandomTemplateName generates a random template repository name
func RandomTemplateName() string {
	kinds := []string{"node", "go", "python", "rust", "web"}
	return fmt.Sprintf("%s-starter-%s", kinds[rand.Intn(len(kinds))], RandomString(5))
}
