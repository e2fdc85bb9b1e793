package fluentstr

import (
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	creditCardNumberLength = 16

	// CodeHasAlphabetic is the Code() of errors returned by HasAlphabetic.
	CodeHasAlphabetic = "has_alphabetic"
	// CodeCreditCard is the Code() of errors returned by NonCreditCardNumber.
	CodeCreditCard = "credit_card_number"
)

type hasAlphabetic struct {
	isCreditCardNumberCheck bool
}

// HasAlphabetic returns a rule that checks that a non-blank string contains
// at least one letter.
func HasAlphabetic() Rule {
	return hasAlphabetic{}
}

// NonCreditCardNumber returns a rule rejecting strings made of exactly 16
// digits and separators.
func NonCreditCardNumber() Rule {
	return hasAlphabetic{isCreditCardNumberCheck: true}
}

func (r hasAlphabetic) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.isCreditCardNumberCheck {
		appendDescription(ref, "Must not be a credit card number.")
		return nil
	}
	appendDescription(ref, "Must contain at least one alphabetic character.")
	return nil
}

var (
	alphabeticRegexp = regexp.MustCompile(`[^[:alpha:]]`)
	numberRegexp     = regexp.MustCompile(`\D`)
)

func (r hasAlphabetic) Validate(value any) error {
	v, err := asString(value)
	if err != nil {
		return err
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if alphabeticRegexp.ReplaceAllString(v, "") != "" {
		return nil
	}
	if !r.isCreditCardNumberCheck {
		return newValidationError(CodeHasAlphabetic, "must contain at least one alphabetic character")
	}
	if len(numberRegexp.ReplaceAllString(v, "")) != creditCardNumberLength {
		return nil
	}
	return newValidationError(CodeCreditCard, "must not be a credit card number")
}
