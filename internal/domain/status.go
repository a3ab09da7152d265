package domain

import "strings"

// Status texts reported by submitters
const (
	StatusSending       = "Sending..."
	StatusQuerying      = "Querying..."
	StatusCancelled     = "cancelled"
	statusFailedPrefix  = "Transaction Failed"
	statusRevertedLabel = "Transaction reverted"
)

// IsFailureStatus reports whether a status text describes a failed submission
func IsFailureStatus(text string) bool {
	return strings.HasPrefix(text, statusFailedPrefix) ||
		strings.HasPrefix(text, statusRevertedLabel) ||
		text == StatusCancelled
}
