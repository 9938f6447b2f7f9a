package validation

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var namePolicy = bluemonday.StrictPolicy()

// SanitizeName strips any markup from a user-supplied display or reference
// name. Names end up in verification mail and token claims, so they must
// never carry HTML.
func SanitizeName(name string) string {
	return strings.TrimSpace(namePolicy.Sanitize(name))
}
