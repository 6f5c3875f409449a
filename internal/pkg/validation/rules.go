package validation

import "strings"

// Form fields are free text: no format rules apply to dates, documents or
// years at submission time. The only rule enforced is presence of the
// required fields.

// HasContent reports whether a submitted value carries non-blank content.
func HasContent(value string) bool {
	return strings.TrimSpace(value) != ""
}
