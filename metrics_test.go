package typingcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWPM(t *testing.T) {
	assert.Equal(t, float64(0), WPM(10, 0))
	assert.Equal(t, float64(0), WPM(10, -1))
	// 50 correct chars / 5 = 10 words, over 30s (0.5 min) = 20 wpm
	assert.Equal(t, float64(20), WPM(50, 30000))
}

func TestUnproductivePercent(t *testing.T) {
	assert.Equal(t, float64(0), UnproductivePercent(0, 0, 0, 0))
	assert.Equal(t, float64(50), UnproductivePercent(10, 3, 1, 1))
}
