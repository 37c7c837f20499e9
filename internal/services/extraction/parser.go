// Package extraction orchestrates one transcript extraction end to end:
// resolve the video ID, fetch captions and metadata, optionally persist,
// then render the requested output format.
package extraction

import (
	"regexp"
	"strings"

	apperrors "github.com/ytkit/transcript-api/pkg/errors"
)

// The accepted URL shapes, tried in order. A bare 11-character ID is
// accepted last so URLs never fall through to the ID pattern.
var (
	watchPattern = regexp.MustCompile(`(?:youtube\.com/watch\?(?:[^#]*&)?v=)([A-Za-z0-9_-]{11})`)
	shortPattern = regexp.MustCompile(`(?:youtu\.be/)([A-Za-z0-9_-]{11})`)
	pathPattern  = regexp.MustCompile(`(?:youtube\.com/(?:embed|shorts|v|live)/)([A-Za-z0-9_-]{11})`)
	barePattern  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ParseVideoID extracts the 11-character video ID from a YouTube URL or
// returns the input itself when it already is a bare ID. Anything that
// matches no accepted shape, empty input included, is not found.
func ParseVideoID(input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	for _, pattern := range []*regexp.Regexp{watchPattern, shortPattern, pathPattern} {
		if match := pattern.FindStringSubmatch(trimmed); match != nil {
			return match[1], nil
		}
	}

	if barePattern.MatchString(trimmed) {
		return trimmed, nil
	}

	return "", apperrors.NotFound(trimmed)
}
