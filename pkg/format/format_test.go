package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "1,234,567.89", Amount(1234567.891))
	assert.Equal(t, "0.00", Amount(0))
	assert.Equal(t, "-12,000.50", Amount(-12000.5))
}

func TestWhole(t *testing.T) {
	assert.Equal(t, "755,000", Whole(755000.4))
	assert.Equal(t, "144", Whole(144))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.35%", Percent(12.346))
	assert.Equal(t, "0.00%", Percent(0))
}

func TestFull(t *testing.T) {
	assert.Equal(t, "755000", Full(755000))
	assert.Equal(t, "1234.5678", Full(1234.5678))
}
