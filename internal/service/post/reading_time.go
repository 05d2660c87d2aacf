package post_service

import "strings"

// wordsPerMinute is the assumed reading speed for the reading-time
// estimate shown next to each post.
const wordsPerMinute = 200

// CalculateReadingTime estimates minutes-to-read from the content's
// word count, rounded up. Empty content reads in zero minutes; any
// non-empty content takes at least one.
func CalculateReadingTime(content string) int32 {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int32((words + wordsPerMinute - 1) / wordsPerMinute)
}
