// Package user resolves the identity recorded as project owner and comment author
package user

import (
	"os"
	"os/user"
)

// EnvOverride names the variable that pins the author identity
const EnvOverride = "SLOTASK_USER"

// GetCurrentUsername returns the identity used for ownership and comments.
// Order: SLOTASK_USER, the OS account, USER, then "unknown".
func GetCurrentUsername() string {
	if name := os.Getenv(EnvOverride); name != "" {
		return name
	}

	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username
	}

	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
