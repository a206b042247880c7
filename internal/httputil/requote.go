// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import "strings"

// uriSafe lists the reserved characters RequoteQuery leaves untouched, on
// top of the unreserved set (ALPHA / DIGIT / "-" / "." / "_" / "~").
const uriSafe = "!#$%&'()*+,/:;=?@[]"

// RequoteQuery prepares raw user input for interpolation into a URL. Only
// bytes that may not appear in a URL are percent-encoded (spaces, control
// bytes, non-ASCII, and "%" not starting a valid escape). Reserved
// characters such as "&", "+", "=" and "#" keep their URL meaning, so
// "C&C++" adds a parameter and "c#" starts a fragment.
func RequoteQuery(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%':
			if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
				b.WriteByte(c)
			} else {
				b.WriteString("%25")
			}
		case isUnreserved(c) || strings.IndexByte(uriSafe, c) >= 0:
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
