package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestSpinnerStatusSink(t *testing.T) {
	var out bytes.Buffer
	sink := NewSpinnerStatusSink(&out)

	sink.Start("Submitting token.transfer")
	sink.Update("Sending...")
	sink.Update("Sending...")
	sink.Update("Finalized. Block number: 7")
	sink.Stop("Finalized. Block number: 7")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, "  Sending...", lines[0])
	assert.Equal(t, "  Finalized. Block number: 7", lines[1])
	assert.Len(t, lines, 3, "repeated statuses print once")
	assert.True(t, strings.HasPrefix(lines[2], "✓ Finalized. Block number: 7 ("))
}

func TestSpinnerStatusSinkFailure(t *testing.T) {
	var out bytes.Buffer
	sink := NewSpinnerStatusSink(&out)

	sink.Start("Submitting token.transfer")
	sink.Stop("Transaction Failed: insufficient funds")
	assert.True(t, strings.HasPrefix(out.String(), "✗ Transaction Failed: insufficient funds ("))
}

func TestNopSink(t *testing.T) {
	sink := NewNopSink()
	sink.Start("x")
	sink.Update("y")
	sink.Stop("z")
}
