// Package validation implements the declarative per-field rule engine applied
// to inbound request payloads. Rule sets are declared once per endpoint; the
// engine evaluates every field independently and aggregates all failures into
// a single ordered message list instead of failing fast.
package validation

import (
	"net/mail"
	"unicode/utf8"
)

// Rule is one pure predicate over a field value plus the message surfaced
// when the predicate rejects the value.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Field binds a named payload field to an ordered rule chain. Rules within a
// field short-circuit at the first failure, so "exists" failing suppresses a
// later length check on the same field and contradictory messages never
// appear together.
type Field struct {
	Name  string
	Rules []Rule
}

// Lookup resolves a field name to its payload value. The second return value
// reports whether the field was present at all; an absent field is treated
// the same as an empty value.
type Lookup func(name string) (string, bool)

// Apply evaluates every field's rule chain against the payload and returns
// all failure messages in rule-definition order. Fields never short-circuit
// each other. An empty result means the payload passed.
func Apply(fields []Field, lookup Lookup) []string {
	var messages []string
	for _, field := range fields {
		value, _ := lookup(field.Name)
		for _, rule := range field.Rules {
			if !rule.Check(value) {
				messages = append(messages, rule.Message)
				break
			}
		}
	}
	return messages
}

// Required rejects empty values.
func Required(message string) Rule {
	return Rule{
		Check:   func(value string) bool { return value != "" },
		Message: message,
	}
}

// Email rejects values that do not parse as a bare RFC 5322 address.
func Email(message string) Rule {
	return Rule{
		Check: func(value string) bool {
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value
		},
		Message: message,
	}
}

// MaxLength rejects values longer than n characters. Length is counted in
// runes so multi-byte characters are not penalised.
func MaxLength(n int, message string) Rule {
	return Rule{
		Check:   func(value string) bool { return utf8.RuneCountInString(value) <= n },
		Message: message,
	}
}

// RuleFunc adapts any pure predicate into a Rule, keeping the engine
// extensible beyond the built-in checks.
func RuleFunc(check func(value string) bool, message string) Rule {
	return Rule{Check: check, Message: message}
}
