// Package phone normalizes locally written phone numbers into E.164.
package phone

import (
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrInvalidPhone is returned for input that is not a phone number.
var ErrInvalidPhone = errors.New("invalid phone number")

// Rule describes the numbering conventions of one country.
type Rule struct {
	CountryCode    string // without '+'
	TrunkPrefix    string // dialled before national numbers, dropped
	MobilePrefix   string
	NationalLength int

	// MobileInNational is true when the mobile prefix is part of the national
	// number (Peru: 9XXXXXXXX) and false when it is inserted after the country
	// code in international form only (Argentina: +54 9 XXXXXXXXXX).
	MobileInNational bool
}

// Built-in country rules.
var (
	RulePeru = Rule{
		CountryCode:      "51",
		TrunkPrefix:      "0",
		MobilePrefix:     "9",
		NationalLength:   9,
		MobileInNational: true,
	}
	RuleArgentina = Rule{
		CountryCode:    "54",
		TrunkPrefix:    "0",
		MobilePrefix:   "9",
		NationalLength: 10,
	}
)

var rules = map[string]Rule{
	"PE": RulePeru,
	"AR": RuleArgentina,
}

type normalizer struct {
	rule Rule
}

// New returns the normalizer selected by config: a custom rule when one is
// configured, otherwise the built-in rule of the locale.
func New(cfg *config.Config) (service.PhoneNormalizer, error) {
	if cfg.Phone == nil {
		return NewWithRule(RulePeru), nil
	}
	if custom := cfg.Phone.Rule; custom != nil && custom.CountryCode != "" {
		return NewWithRule(Rule{
			CountryCode:      custom.CountryCode,
			TrunkPrefix:      custom.TrunkPrefix,
			MobilePrefix:     custom.MobilePrefix,
			NationalLength:   custom.NationalLength,
			MobileInNational: custom.MobileInNational,
		}), nil
	}

	rule, ok := rules[strings.ToUpper(cfg.Phone.Locale)]
	if !ok {
		return nil, errors.Errorf("unsupported phone locale: %s", cfg.Phone.Locale)
	}

	return NewWithRule(rule), nil
}

// NewWithRule returns a normalizer for an explicit rule.
func NewWithRule(rule Rule) service.PhoneNormalizer {
	return &normalizer{rule: rule}
}

// Normalize implements service.PhoneNormalizer.
func (n *normalizer) Normalize(phone string) (string, error) {
	cleaned := clean(phone)
	if cleaned == "" {
		return "", errors.Wrap(ErrInvalidPhone, "empty phone number")
	}

	if rest, ok := strings.CutPrefix(cleaned, "+"); ok {
		if !isDigits(rest) {
			return "", errors.Wrapf(ErrInvalidPhone, "%q", phone)
		}

		return cleaned, nil
	}

	if !isDigits(cleaned) {
		return "", errors.Wrapf(ErrInvalidPhone, "%q", phone)
	}

	r := n.rule
	digits := cleaned
	if r.TrunkPrefix != "" {
		digits = strings.TrimPrefix(digits, r.TrunkPrefix)
	}

	switch {
	case len(digits) == r.NationalLength:
		return n.international(digits), nil
	case r.MobileInNational && len(digits) == r.NationalLength-len(r.MobilePrefix):
		return "+" + r.CountryCode + r.MobilePrefix + digits, nil
	case strings.HasPrefix(digits, r.CountryCode) && len(digits) == len(r.CountryCode)+r.NationalLength:
		return n.international(digits[len(r.CountryCode):]), nil
	case !r.MobileInNational && r.MobilePrefix != "" &&
		strings.HasPrefix(digits, r.CountryCode+r.MobilePrefix) &&
		len(digits) == len(r.CountryCode)+len(r.MobilePrefix)+r.NationalLength:
		return "+" + digits, nil
	default:
		return "+" + r.CountryCode + digits, nil
	}
}

func (n *normalizer) international(national string) string {
	if n.rule.MobileInNational {
		return "+" + n.rule.CountryCode + national
	}

	return "+" + n.rule.CountryCode + n.rule.MobilePrefix + national
}

func clean(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		switch r {
		case ' ', '\t', '-', '.', '(', ')':
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
