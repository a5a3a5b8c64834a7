package email

import (
	"regexp"
	"strings"
)

// addressPattern is deliberately stricter than full RFC 5322: plain
// local part, dotted domain, TLD of at least two letters. No quoting.
var addressPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateAddress reports whether s looks like a deliverable address.
func ValidateAddress(s string) bool {
	return addressPattern.MatchString(strings.TrimSpace(s))
}

// ParseAddressList splits a comma separated address list and validates
// each entry, returning the valid addresses in their original order and
// the entries that failed validation.
func ParseAddressList(s string) (valid, invalid []string) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if ValidateAddress(part) {
			valid = append(valid, part)
		} else {
			invalid = append(invalid, part)
		}
	}
	return valid, invalid
}
