package usecase

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/shandysiswandi/gosignup/internal/signup/entity"
)

const (
	msgUsernameRequired = "Username is required."
	msgUsernameLength   = "Username must be between 3 and 20 characters."
	msgUsernameChars    = "Username contains invalid characters (only alphanumeric, _, - allowed)."

	msgEmailRequired = "Email is required."
	msgEmailInvalid  = "Please enter a valid email address."
	msgEmailTooLong  = "Email address is too long."

	msgPhoneRequired = "Phone number is required."
	msgPhoneFormat   = "Please enter a valid phone number format (e.g., 123-456-7890)."
	msgPhoneLength   = "Phone number length is invalid."

	msgPasswordRequired   = "Password is required."
	msgPasswordLength     = "Password must be at least 8 characters long."
	msgPasswordComplexity = "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character."

	msgConfirmRequired = "Confirm Password is required."
	msgPasswordsDiffer = "Passwords do not match."
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
	emailMaxLen    = 255
	phoneMinLen    = 10
	phoneMaxLen    = 20
	passwordMinLen = 8
	passwordMaxLen = 128

	complexityMatchTimeout = time.Second
)

var (
	reUsername = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	rePhone    = regexp.MustCompile(`^\+?\d{1,3}?[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`)

	// Lookaheads need a backtracking engine, so the match is capped in time.
	rePasswordComplexity = func() *regexp2.Regexp {
		re := regexp2.MustCompile(`^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[^\da-zA-Z]).+$`, regexp2.None)
		re.MatchTimeout = complexityMatchTimeout
		return re
	}()
)

// FieldValidator checks one field of a sign-up request.
type FieldValidator interface {
	Field() string
	Validate(req entity.SignUpRequest) []entity.Violation
}

// FieldValidators returns one validator per field, in declaration order.
func FieldValidators() []FieldValidator {
	return []FieldValidator{
		usernameRule{},
		emailRule{},
		phoneRule{},
		passwordRule{},
		confirmPasswordRule{},
	}
}

type usernameRule struct{}

func (usernameRule) Field() string { return entity.FieldUsername }

func (r usernameRule) Validate(req entity.SignUpRequest) []entity.Violation {
	v := req.Username
	switch {
	case isBlank(v):
		return violations(r.Field(), entity.KindRequired, msgUsernameRequired)
	case !lengthBetween(v, usernameMinLen, usernameMaxLen):
		return violations(r.Field(), entity.KindLengthOutOfRange, msgUsernameLength)
	case !reUsername.MatchString(v):
		return violations(r.Field(), entity.KindPatternMismatch, msgUsernameChars)
	default:
		return nil
	}
}

type emailRule struct{}

func (emailRule) Field() string { return entity.FieldEmail }

func (r emailRule) Validate(req entity.SignUpRequest) []entity.Violation {
	v := req.Email
	if isBlank(v) {
		return violations(r.Field(), entity.KindRequired, msgEmailRequired)
	}

	var out []entity.Violation
	if !isEmailAddress(v) {
		out = append(out, entity.Violation{Field: r.Field(), Kind: entity.KindFormatInvalid, Message: msgEmailInvalid})
	}
	if utf8.RuneCountInString(v) > emailMaxLen {
		out = append(out, entity.Violation{Field: r.Field(), Kind: entity.KindLengthOutOfRange, Message: msgEmailTooLong})
	}

	return out
}

type phoneRule struct{}

func (phoneRule) Field() string { return entity.FieldPhoneNumber }

func (r phoneRule) Validate(req entity.SignUpRequest) []entity.Violation {
	v := req.PhoneNumber
	if isBlank(v) {
		return violations(r.Field(), entity.KindRequired, msgPhoneRequired)
	}

	var out []entity.Violation
	if !rePhone.MatchString(v) {
		out = append(out, entity.Violation{Field: r.Field(), Kind: entity.KindPatternMismatch, Message: msgPhoneFormat})
	}
	if !lengthBetween(v, phoneMinLen, phoneMaxLen) {
		out = append(out, entity.Violation{Field: r.Field(), Kind: entity.KindLengthOutOfRange, Message: msgPhoneLength})
	}

	return out
}

type passwordRule struct{}

func (passwordRule) Field() string { return entity.FieldPassword }

func (r passwordRule) Validate(req entity.SignUpRequest) []entity.Violation {
	v := req.Password
	if isBlank(v) {
		return violations(r.Field(), entity.KindRequired, msgPasswordRequired)
	}

	var out []entity.Violation
	// One message for both bounds.
	if !lengthBetween(v, passwordMinLen, passwordMaxLen) {
		out = append(out, entity.Violation{Field: r.Field(), Kind: entity.KindLengthOutOfRange, Message: msgPasswordLength})
	}
	if !isComplexPassword(v) {
		out = append(out, entity.Violation{Field: r.Field(), Kind: entity.KindPatternMismatch, Message: msgPasswordComplexity})
	}

	return out
}

type confirmPasswordRule struct{}

func (confirmPasswordRule) Field() string { return entity.FieldConfirmPassword }

func (r confirmPasswordRule) Validate(req entity.SignUpRequest) []entity.Violation {
	v := req.ConfirmPassword
	switch {
	case isBlank(v):
		return violations(r.Field(), entity.KindRequired, msgConfirmRequired)
	case v != req.Password:
		return violations(r.Field(), entity.KindMismatch, msgPasswordsDiffer)
	default:
		return nil
	}
}

func violations(field string, kind entity.Kind, msg string) []entity.Violation {
	return []entity.Violation{{Field: field, Kind: kind, Message: msg}}
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}

func lengthBetween(v string, lo, hi int) bool {
	n := utf8.RuneCountInString(v)
	return n >= lo && n <= hi
}

// isEmailAddress accepts a bare "local@domain" address whose domain has a dot.
func isEmailAddress(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Name != "" || addr.Address != strings.TrimSpace(v) {
		return false
	}

	at := strings.LastIndexByte(addr.Address, '@')
	if at <= 0 {
		return false
	}

	domain := addr.Address[at+1:]
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".")
}

func isComplexPassword(v string) bool {
	return matchWithin(rePasswordComplexity, v)
}

// matchWithin reports whether re matches v before re.MatchTimeout expires.
// A timed-out match counts as no match.
func matchWithin(re *regexp2.Regexp, v string) bool {
	ok, err := re.MatchString(v)
	if err != nil {
		return false
	}
	return ok
}
