package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹850", Format(850))
	assert.Equal(t, "₹4,250", Format(4250))
	assert.Equal(t, "₹0", Format(0))
}

func TestFormatUsesIndianGrouping(t *testing.T) {
	assert.Equal(t, "₹1,00,000", Format(100000))
}

func TestFormatDropsFraction(t *testing.T) {
	assert.Equal(t, "₹850", Format(850.4))
}
