package progress

import (
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// NopSink is a no-op implementation of StatusSink
type NopSink struct{}

// NewNopSink creates a new no-op status sink
func NewNopSink() usecase.StatusSink {
	return &NopSink{}
}

// Start does nothing
func (n *NopSink) Start(message string) {}

// Update does nothing with status updates
func (n *NopSink) Update(text string) {}

// Stop does nothing
func (n *NopSink) Stop(final string) {}

// Ensure NopSink implements StatusSink
var _ usecase.StatusSink = (*NopSink)(nil)
