package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"greenscreen_kiosk/model"
)

// ParseLegacyConfig reads the flat KEY=VALUE configuration file the previous
// deployment used. Blank lines and [section] headers are ignored; so are
// lines without an equals sign.
func ParseLegacyConfig(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "[") || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// DefaultSettings are the hard-coded first-run values, used when no legacy
// configuration file exists.
func DefaultSettings() model.SettingsInput {
	return model.SettingsInput{
		BusinessName:   "Greenscreen Photo Booth",
		WelcomeMessage: "Welcome! Touch to start",

		AIBackgroundsEnabled: false,
		PrintsEnabled:        true,
		EmailsEnabled:        true,

		AcceptCash: true,
		AcceptCard: true,

		PrintPrice1: 15.00,
		PrintPrice2: 25.00,
		PrintPrice3: 35.00,
		PrintPrice4: 45.00,
		PrintPrice5: 50.00,
		PrintPrice6: 55.00,
		PrintPrice7: 60.00,
		PrintPrice8: 65.00,

		EmailBasePrice:  10.00,
		EmailExtraPrice: 2.00,
	}
}

// SettingsFromLegacy maps the legacy key space onto the settings record,
// falling back to the documented default for every missing key.
func SettingsFromLegacy(values map[string]string) model.SettingsInput {
	s := DefaultSettings()

	str := func(key string, target *string) {
		if v, ok := values[key]; ok {
			*target = v
		}
	}
	boolean := func(key string, target *bool) {
		if v, ok := values[key]; ok {
			if b, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
				*target = b
			}
		}
	}
	price := func(key string, target *float64) {
		if v, ok := values[key]; ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
				*target = f
			}
		}
	}

	str("BUSINESS_NAME", &s.BusinessName)
	str("WELCOME_MESSAGE", &s.WelcomeMessage)
	str("EVENT_NAME", &s.EventName)
	str("EVENT_DATE", &s.EventDate)
	str("AI_API_KEY", &s.AIApiKey)

	boolean("AI_BACKGROUNDS_ENABLED", &s.AIBackgroundsEnabled)
	boolean("PRINTS_ENABLED", &s.PrintsEnabled)
	boolean("EMAILS_ENABLED", &s.EmailsEnabled)
	boolean("ACCEPT_CASH", &s.AcceptCash)
	boolean("ACCEPT_CARD", &s.AcceptCard)
	boolean("ACCEPT_VENMO", &s.AcceptVenmo)
	boolean("ACCEPT_ZELLE", &s.AcceptZelle)
	boolean("ACCEPT_OTHER", &s.AcceptOther)

	price("PRINT_PRICE_1", &s.PrintPrice1)
	price("PRINT_PRICE_2", &s.PrintPrice2)
	price("PRINT_PRICE_3", &s.PrintPrice3)
	price("PRINT_PRICE_4", &s.PrintPrice4)
	price("PRINT_PRICE_5", &s.PrintPrice5)
	price("PRINT_PRICE_6", &s.PrintPrice6)
	price("PRINT_PRICE_7", &s.PrintPrice7)
	price("PRINT_PRICE_8", &s.PrintPrice8)
	price("EMAIL_BASE_PRICE", &s.EmailBasePrice)
	price("EMAIL_EXTRA_PRICE", &s.EmailExtraPrice)

	return s
}
