package utils

import (
	"fmt"
	"strings"

	ua "github.com/mileusna/useragent"
)

// ParseDeviceInfo extracts a short "Browser on OS (Device)" description
// from a User-Agent string, for session listings.
func ParseDeviceInfo(userAgent string) string {
	if userAgent == "" {
		return "Unknown Browser on Unknown OS (Desktop)"
	}

	parsed := ua.Parse(userAgent)

	browser := parsed.Name
	if browser == "" {
		browser = "Unknown Browser"
	}

	os := parsed.OS
	if os == "" {
		os = "Unknown OS"
	}

	device := "Desktop"
	if parsed.Mobile {
		device = "Mobile"
	} else if parsed.Tablet {
		device = "Tablet"
	}

	return fmt.Sprintf("%s on %s (%s)", strings.TrimSpace(browser), strings.TrimSpace(os), device)
}
