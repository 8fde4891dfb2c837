// Package transform maps directory-export rows into GeoDirectory import rows,
// filtering by taxonomy and merging cached street addresses.
package transform

import (
	"fmt"
	"regexp"
	"strings"
)

// localAreaCode is prefixed to seven-digit numbers; the export's listings are
// all St. Croix businesses.
const localAreaCode = "340"

var nonDigits = regexp.MustCompile(`\D`)

// FormatPhone normalizes a phone value to AAA-BBB-CCCC. Seven-digit numbers
// get the local area code; anything else passes through unchanged rather than
// guessing.
func FormatPhone(phone string) string {
	if phone == "" {
		return ""
	}

	digits := nonDigits.ReplaceAllString(phone, "")
	switch len(digits) {
	case 10:
		return fmt.Sprintf("%s-%s-%s", digits[0:3], digits[3:6], digits[6:10])
	case 7:
		return fmt.Sprintf("%s-%s-%s", localAreaCode, digits[0:3], digits[3:7])
	default:
		return phone
	}
}

// CleanURL trims a URL value and ensures it carries a scheme.
func CleanURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}

// ChooseBest returns the first non-empty of two source values. Several export
// fields exist twice under old and new column names.
func ChooseBest(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	return secondary
}

// Platform identifies a social network whose profile value needs expanding
// into a full URL.
type Platform string

const (
	Facebook    Platform = "facebook"
	Twitter     Platform = "twitter"
	Instagram   Platform = "instagram"
	Pinterest   Platform = "pinterest"
	YouTube     Platform = "youtube"
	LinkedIn    Platform = "linkedin"
	TripAdvisor Platform = "trip_advisor"
	Yelp        Platform = "yelp"
)

var platformBaseURLs = map[Platform]string{
	Facebook:    "https://www.facebook.com/",
	Twitter:     "https://twitter.com/",
	Instagram:   "https://www.instagram.com/",
	Pinterest:   "https://www.pinterest.com/",
	YouTube:     "https://www.youtube.com/@",
	LinkedIn:    "https://www.linkedin.com/",
	TripAdvisor: "https://www.tripadvisor.com/",
	Yelp:        "https://www.yelp.com/biz/",
}

// SocialURL expands a social profile value, which might be a bare username,
// an @handle, or a full URL, into the canonical profile URL for the platform.
// Existing URLs are preserved, with http upgraded to https.
func SocialURL(platform Platform, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "http://") {
		return strings.Replace(value, "http://", "https://", 1)
	}
	if strings.HasPrefix(value, "https://") {
		return value
	}

	username := strings.TrimSpace(strings.TrimLeft(strings.TrimRight(value, "/"), "@"))
	if username == "" {
		return ""
	}

	if platform == LinkedIn {
		if strings.HasPrefix(username, "in/") || strings.HasPrefix(username, "company/") {
			return platformBaseURLs[platform] + username
		}
		return platformBaseURLs[platform] + "in/" + username
	}

	if base, ok := platformBaseURLs[platform]; ok {
		return base + username
	}
	return CleanURL(value)
}
