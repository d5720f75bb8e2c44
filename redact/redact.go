// Package redact hides sensitive strings before they are rendered.
package redact

import "strings"

// Redacted is the replacement used by ActionRedactFully.
const Redacted = "[redacted]"

// Action says how a value should be treated before display.
type Action int

const (
	// ActionKeep leaves the value as-is.
	ActionKeep Action = iota
	// ActionRedactFully replaces the value with Redacted.
	ActionRedactFully
	// ActionRedactPartialWithMask keeps the first N runes and masks the rest with '*'.
	ActionRedactPartialWithMask
	// ActionRedactPartialTruncate keeps the first N runes and appends Redacted.
	ActionRedactPartialTruncate
)

// PartiallyRedactString keeps the first visibleRunes runes of value and
// hides the rest, either masked rune-for-rune with '*' or truncated with a
// Redacted suffix. Values no longer than visibleRunes are returned unchanged.
//
//	PartiallyRedactString("sk_live_abc123", 8, false) // "sk_live_******"
//	PartiallyRedactString("sk_live_abc123", 8, true)  // "sk_live_[redacted]"
func PartiallyRedactString(value string, visibleRunes int, truncate bool) string {
	runes := []rune(value)
	if len(runes) <= visibleRunes {
		return value
	}

	visibleRunes = max(visibleRunes, 0)
	show := string(runes[:visibleRunes])

	if truncate {
		return show + Redacted
	}

	return show + strings.Repeat("*", len(runes)-visibleRunes)
}

// Apply runs action against value. partialLength is only read by the
// partial actions. Unknown actions keep the value.
func Apply(action Action, value string, partialLength int) string {
	switch action {
	case ActionRedactFully:
		return Redacted
	case ActionRedactPartialWithMask:
		return PartiallyRedactString(value, partialLength, false)
	case ActionRedactPartialTruncate:
		return PartiallyRedactString(value, partialLength, true)
	case ActionKeep:
		return value
	default:
		return value
	}
}
