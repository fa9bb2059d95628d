package analytics

import (
	"chat-metrics/classify"
	"chat-metrics/store"
)

type BasicStats struct {
	Messages int
	Words    int
	Media    int
	Links    int
	Emojis   int
	Stickers int
}

// Basic computes the six headline counters in a single traversal.
func Basic(view store.View, oracles classify.Oracles) BasicStats {
	var stats BasicStats
	for i := 0; i < view.Len(); i++ {
		text := view.At(i).Content
		stats.Messages++
		stats.Words += len(classify.Words(text))
		stats.Links += oracles.CountURLs(text)
		stats.Emojis += oracles.CountEmojis(text)
		if classify.IsMedia(text) {
			stats.Media++
		}
		if classify.IsSticker(text) {
			stats.Stickers++
		}
	}
	return stats
}
