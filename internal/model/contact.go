package model

import (
	"strings"
	"unicode"
)

// InstitutionalDomain is the email suffix every contact must carry.
const InstitutionalDomain = "rutgers.edu"

// Contact is the department organizing an event and its mailbox.
type Contact struct {
	Department Department
	Email      string
}

func (c Contact) IsValid() bool {
	return c.IsValidFor(InstitutionalDomain)
}

// IsValidFor checks the contact against a required email domain suffix.
// The local part must be the department code (case-insensitive).
func (c Contact) IsValidFor(domain string) bool {
	if !c.Department.Valid() {
		return false
	}
	email := c.Email
	if email == "" || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	local, host, _ := strings.Cut(email, "@")
	if local == "" || host == "" {
		return false
	}
	if strings.ToLower(local) != c.Department.Code() {
		return false
	}
	for _, r := range local {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' && r != '-' {
			return false
		}
	}
	for _, r := range host {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' {
			return false
		}
	}
	return strings.HasSuffix(email, domain)
}

// String renders "[Contact: Computer Science, cs@rutgers.edu]".
func (c Contact) String() string {
	return "[Contact: " + c.Department.Name() + ", " + c.Email + "]"
}
