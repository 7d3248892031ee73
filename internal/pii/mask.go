// Package pii redacts personal data from free text before it is shown back
// to the user or sent to the assistant gateway.
package pii

import "regexp"

const PhoneMask = "+91-XXXXXXXXXX"

var (
	phonePattern = regexp.MustCompile(`(\+91[-\s]?)?[6-9]\d{9}`)
	emailPattern = regexp.MustCompile(`([a-zA-Z0-9._%+-]+)@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
)

// Mask replaces Indian mobile numbers with PhoneMask and e-mail addresses
// with the first character of the local part followed by "***@***.com".
// Phone numbers are masked before e-mails. All other text is kept as is.
//
// A single pass can leave a new address behind (for example "a@b.co@d.com"),
// so the passes repeat until the text is stable. This keeps Mask idempotent.
func Mask(text string) string {
	for {
		masked := maskOnce(text)
		if masked == text {
			return masked
		}
		text = masked
	}
}

func maskOnce(text string) string {
	masked := phonePattern.ReplaceAllLiteralString(text, PhoneMask)

	return emailPattern.ReplaceAllStringFunc(masked, func(match string) string {
		return match[:1] + "***@***.com"
	})
}
