package config

import (
	"os"
	"strings"

	"github.com/pddtools/pdd-ddns/internal/pp"
)

// Getenv reads an environment variable and trims the space around it.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ReadString reads an environment variable as a string.
func ReadString(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	*field = val
	return true
}
