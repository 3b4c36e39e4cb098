package domain

import (
	"regexp"
	"strings"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

var videoIDPattern = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// IsValidYouTubeURL is the cheap check used before any preview lookup.
func IsValidYouTubeURL(url string) bool {
	return strings.Contains(url, "youtube.com/watch?v=") || strings.Contains(url, "youtu.be/")
}

// ExtractVideoID returns the 11 character video id embedded in url.
func ExtractVideoID(url string) (string, bool) {
	match := videoIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[2]) != 11 {
		return "", false
	}
	return match[2], true
}

func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}
