// Package timezone pins every timestamp the service produces or parses to the
// configured application location.
//
//	now := timezone.Now()
//	checkIn, err := timezone.ParseDate("2025-06-01")
//
// The location comes from APP_TIMEZONE and must be an IANA name such as
// "UTC" or "Asia/Jakarta". Unknown names fall back to UTC.
package timezone
