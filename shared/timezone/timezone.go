package timezone

import (
	"hotie/config"
	"hotie/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	// dateLayouts are tried in order when a client sends a booking date.
	dateLayouts = []string{constant.DateOnlyFormat, constant.DateFormat}
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// GetLocation returns the application location, UTC until init has run.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses value with layout in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDate accepts either a calendar date or a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	var lastErr error

	for _, layout := range dateLayouts {
		t, err := Parse(layout, value)
		if err == nil {
			return t, nil
		}

		lastErr = err
	}

	return time.Time{}, errors.Wrapf(lastErr, "invalid date %q", value)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
