package validation

import (
	"errors"
	"strings"
	"unicode"
)

// MinPasswordLength matches the platform-wide password policy
const MinPasswordLength = 8

// commonPasswords is a short deny-list of the passwords seen most in breach corpora
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"12345678": {}, "123456789": {}, "1234567890": {}, "qwerty123": {},
	"qwertyuiop": {}, "iloveyou": {}, "sunshine": {}, "princess": {},
	"football": {}, "baseball": {}, "welcome1": {}, "admin123": {},
	"abc12345": {}, "letmein1": {}, "11111111": {}, "00000000": {},
	"dragon123": {}, "monkey123": {}, "superman": {}, "trustno1": {},
	"mahasiswa": {}, "indonesia": {}, "bismillah": {}, "rahasia123": {},
}

// ValidatePassword enforces minimum length, rejects all-numeric and common
// passwords, and rejects passwords that contain the user's email local part or
// name.
func ValidatePassword(password string, attributes ...string) error {
	if password == "" {
		return errors.New(MsgRequired)
	}
	if len([]rune(password)) < MinPasswordLength {
		return errors.New("This password is too short. It must contain at least 8 characters.")
	}
	if isNumeric(password) {
		return errors.New("This password is entirely numeric.")
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		return errors.New("This password is too common.")
	}
	lower := strings.ToLower(password)
	for _, attr := range attributes {
		for _, part := range similarityParts(attr) {
			if len(part) >= 4 && strings.Contains(lower, part) {
				return errors.New("The password is too similar to your personal information.")
			}
		}
	}
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func similarityParts(attr string) []string {
	attr = strings.ToLower(strings.TrimSpace(attr))
	if attr == "" {
		return nil
	}
	attr = EmailLocalPart(attr)
	return strings.FieldsFunc(attr, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
