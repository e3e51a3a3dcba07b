/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"strings"
	"unicode"
)

// commonInitialisms are upper-cased as a whole, following Go naming conventions.
var commonInitialisms = map[string]bool{
	"api":  true,
	"http": true,
	"id":   true,
	"ip":   true,
	"json": true,
	"uri":  true,
	"url":  true,
	"uuid": true,
}

// goName converts a schema name such as "release_date" or "siteUrl" into an
// exported Go identifier ("ReleaseDate", "SiteUrl").
func goName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var b strings.Builder
	for _, part := range parts {
		if commonInitialisms[part] {
			b.WriteString(strings.ToUpper(part))
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
