// file: internals/helpers/search.go
package helper

import "strings"

// SearchPattern builds the argument for a LOWER(col) LIKE ? clause: the term
// is lowercased to match the folded column and wrapped in wildcards.
func SearchPattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
