package model

import (
	"regexp"
	"strings"

	"github.com/nikbrunner/bizbook/internal/errors"
)

// Constraint messages shown when a field value is rejected.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	EmailConstraints   = "Emails should be of the format local-part@domain. " +
		"The local-part should only contain alphanumeric characters and the special characters +_.-, " +
		"and may not start or end with a special character. " +
		"The domain is made up of labels separated by periods; each label starts and ends with an " +
		"alphanumeric character, may contain hyphens, and the last label is at least 2 characters long"
)

var (
	nameRegex    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegex   = regexp.MustCompile(`^\d{3,}$`)
	addressRegex = regexp.MustCompile(`^\S.*$`)
	emailRegex   = regexp.MustCompile(
		`^[\p{L}\p{N}]([+_.\-]?[\p{L}\p{N}])*@` +
			`([\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])?\.)*` +
			`[\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])+$`)
)

// Name is a person's full name.
type Name string

// Phone is a person's phone number.
type Phone string

// Email is a person's email address.
type Email string

// Address is a person's postal address.
type Address string

// ParseName trims and validates a name.
func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !nameRegex.MatchString(s) {
		return "", errors.NewConstraintViolation(NameConstraints)
	}
	return Name(s), nil
}

// ParsePhone trims and validates a phone number.
func ParsePhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return "", errors.NewConstraintViolation(PhoneConstraints)
	}
	return Phone(s), nil
}

// ParseEmail trims and validates an email address.
func ParseEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return "", errors.NewConstraintViolation(EmailConstraints)
	}
	return Email(s), nil
}

// ParseAddress trims and validates an address.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if !addressRegex.MatchString(s) {
		return "", errors.NewConstraintViolation(AddressConstraints)
	}
	return Address(s), nil
}

// identityKey collapses case and inner whitespace so "john  DOE" and
// "John Doe" name the same person.
func (n Name) identityKey() string {
	return strings.ToLower(strings.Join(strings.Fields(string(n)), " "))
}
