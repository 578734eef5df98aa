package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeLegacyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "booth.cfg")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseLegacyConfig(t *testing.T) {
	path := writeLegacyFile(t, `
[general]
BUSINESS_NAME = Sunset Booth Co
# a comment
EVENT_NAME=Spring Gala

no_equals_line
PRINT_PRICE_1 = 18.50
`)

	values, err := ParseLegacyConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "Sunset Booth Co", values["BUSINESS_NAME"])
	assert.Equal(t, "Spring Gala", values["EVENT_NAME"])
	assert.Equal(t, "18.50", values["PRINT_PRICE_1"])
	assert.NotContains(t, values, "[general]")
	assert.Len(t, values, 3)
}

func TestParseLegacyConfigMissingFile(t *testing.T) {
	_, err := ParseLegacyConfig(filepath.Join(t.TempDir(), "absent.cfg"))
	assert.Error(t, err)
}

func TestSettingsFromLegacyOverridesDefaults(t *testing.T) {
	s := SettingsFromLegacy(map[string]string{
		"BUSINESS_NAME":    "Sunset Booth Co",
		"ACCEPT_VENMO":     "true",
		"PRINTS_ENABLED":   "false",
		"PRINT_PRICE_1":    "18.50",
		"PRINT_PRICE_2":    "-4", // negative prices are ignored
		"EMAIL_BASE_PRICE": "12",
	})

	assert.Equal(t, "Sunset Booth Co", s.BusinessName)
	assert.True(t, s.AcceptVenmo)
	assert.False(t, s.PrintsEnabled)
	assert.Equal(t, 18.50, s.PrintPrice1)
	assert.Equal(t, 25.00, s.PrintPrice2)
	assert.Equal(t, 12.00, s.EmailBasePrice)

	// Untouched keys keep first-run defaults.
	assert.True(t, s.AcceptCash)
	assert.Equal(t, 2.00, s.EmailExtraPrice)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "Greenscreen Photo Booth", s.BusinessName)
	assert.Equal(t, 15.00, s.PrintPrice1)
	assert.Equal(t, 65.00, s.PrintPrice8)
	assert.True(t, s.PrintsEnabled)
	assert.False(t, s.AIBackgroundsEnabled)
}
