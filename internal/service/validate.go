package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const minPassLen = 6

// Deliberately lenient: one character after the last dot is enough.
var emailPattern = regexp.MustCompile(`^[A-Za-z](.*)(@)(.+)(\.)(.+)$`)

func validateCredentials(email, password string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}

	return email != "" && utf8.RuneCountInString(password) >= minPassLen
}

func usernameFromEmail(email string) string {
	username, _, _ := strings.Cut(email, "@")
	return username
}
