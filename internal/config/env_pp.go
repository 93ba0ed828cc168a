package config

import (
	"strconv"

	"github.com/pddtools/pdd-ddns/internal/pp"
)

// ReadEmoji reads an environment variable as emoji/no-emoji.
func ReadEmoji(key string, ppfmt *pp.PP) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	emoji, err := strconv.ParseBool(val)
	if err != nil {
		(*ppfmt).Errorf(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*ppfmt = (*ppfmt).SetEmoji(emoji)
	return true
}

// ReadVerbosity reads an environment variable naming a verbosity level.
func ReadVerbosity(key string, ppfmt *pp.PP) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	var v pp.Verbosity
	switch val {
	case "trace":
		v = pp.Trace
	case "debug":
		v = pp.Debug
	case "info":
		v = pp.Info
	case "notice":
		v = pp.Notice
	case "warning":
		v = pp.Warning
	case "error":
		v = pp.Error
	default:
		(*ppfmt).Errorf(pp.EmojiUserError, "%s (%q) is not a verbosity level", key, val)
		return false
	}

	*ppfmt = (*ppfmt).SetVerbosity(v)
	return true
}
