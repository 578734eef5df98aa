package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchThemeByFilename(t *testing.T) {
	labels := []string{"beach", "city", "beach-sunset"}

	theme, ok := MatchThemeByFilename("beach-01.jpg", labels)
	assert.True(t, ok)
	assert.Equal(t, "beach", theme)

	theme, ok = MatchThemeByFilename("City_lights.png", labels)
	assert.True(t, ok)
	assert.Equal(t, "city", theme)

	// Longest label wins.
	theme, ok = MatchThemeByFilename("beach-sunset-03.jpg", labels)
	assert.True(t, ok)
	assert.Equal(t, "beach-sunset", theme)

	_, ok = MatchThemeByFilename("space-01.jpg", labels)
	assert.False(t, ok)

	// Label must prefix up to a separator, not merely share letters.
	_, ok = MatchThemeByFilename("beaches.jpg", []string{"beach"})
	assert.False(t, ok)
}
