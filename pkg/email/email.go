// Package email holds address normalization shared by the auth service and
// its stores so lookups and uniqueness checks agree on casing.
package email

import "strings"

// Normalize lowercases an address and strips surrounding whitespace.
// Addresses are case-insensitive for our purposes; the stores index the
// normalized form.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
