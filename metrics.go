package typingcore

// WPM computes words-per-minute from a count of correctly typed characters
// and a wall-clock duration, using the standard 5-characters-per-word
// convention. It returns 0 for a non-positive duration.
func WPM(correctChars int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	minutes := float64(durationMs) / 60000
	words := float64(correctChars) / 5
	return words / minutes
}

// UnproductivePercent computes the share of keystrokes that did not land a
// counted correct character: mismatches, collateral keystrokes, and
// backspaces. It returns 0 when no keystrokes were recorded.
func UnproductivePercent(typedKeystrokes, incorrect, collateral, backspaces int) float64 {
	if typedKeystrokes <= 0 {
		return 0
	}
	unproductive := incorrect + collateral + backspaces
	return (float64(unproductive) / float64(typedKeystrokes)) * 100
}
