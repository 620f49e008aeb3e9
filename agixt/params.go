package agixt

import (
	"net/url"
	"strconv"
)

func pathEscape(s string) string  { return url.PathEscape(s) }
func queryEscape(s string) string { return url.QueryEscape(s) }

// collection converts a memory collection number to the string form the
// server expects on the wire.
func collection(n int) string {
	return strconv.Itoa(n)
}

// orDefault returns fallback when s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
