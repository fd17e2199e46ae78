// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials.
//
// The package helps ensure that API tokens and keys are not accidentally exposed
// in the debug command echo or in error messages shown to users.
package logging

import (
	"regexp"
	"strings"
)

var (
	reToken  = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reAPIKey = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "*".
func Mask(s string) string {
	out := s
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"CLOUDFLARE_API_TOKEN", "CLOUDFLARE_API_KEY"} {
		out = maskEnvPair(out, k)
	}
	return out
}

// maskEnvPair masks the value of key=VALUE up to the next whitespace.
func maskEnvPair(s, key string) string {
	i := strings.Index(s, key+"=")
	if i < 0 {
		return s
	}
	rest := s[i+len(key)+1:]
	end := strings.IndexAny(rest, " \t\n")
	if end < 0 {
		end = len(rest)
	}
	return s[:i] + key + "=***" + rest[end:]
}
