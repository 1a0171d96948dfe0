// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way browsers encode a single URI
// component: ASCII letters, digits and - _ . ! ~ * ' ( ) are kept, every other
// byte of the UTF-8 encoding becomes %XX with upper-case hex digits.
//
// Unlike url.PathEscape it escapes the sub-delimiters (& = + $ , ; : @ /), and
// unlike url.QueryEscape it encodes a space as %20, so the result can be
// appended to either a path or a query string.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}

	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}
