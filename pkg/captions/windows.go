package captions

// DefaultChunkSeconds is the caption window width the archive serves best.
const DefaultChunkSeconds = 60

// Window is one fixed-width slice of a broadcast's timeline. Start and End
// are offsets in seconds from the start of the broadcast; the window covers
// [Start, End).
type Window struct {
	Index int
	Start int
	End   int
}

// Partition splits [0, duration) into consecutive chunk-wide windows. The
// windows are contiguous and non-overlapping; the last one is clipped to
// the remaining duration rather than overrunning it. A non-positive chunk
// falls back to DefaultChunkSeconds; a non-positive duration yields no
// windows.
func Partition(duration, chunk int) []Window {
	if chunk <= 0 {
		chunk = DefaultChunkSeconds
	}
	if duration <= 0 {
		return nil
	}

	windows := make([]Window, 0, (duration+chunk-1)/chunk)
	for start := 0; start < duration; start += chunk {
		end := start + chunk
		if end > duration {
			end = duration
		}
		windows = append(windows, Window{Index: len(windows), Start: start, End: end})
	}
	return windows
}
