package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameIsMemoized(t *testing.T) {
	a := new(int)
	b := new(int)
	assert.Equal(t, Name(a), Name(a))
	assert.NotEqual(t, Name(a), Name(b))
}

func TestNameNil(t *testing.T) {
	var p *int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(p))
}

func TestColorStatusPassThrough(t *testing.T) {
	// Unknown statuses come back unchanged
	assert.Equal(t, "pending", ColorStatus("pending"))
	assert.Contains(t, ColorStatus("completed"), "completed")
	assert.Contains(t, ColorStatus("rejected"), "rejected")
}
