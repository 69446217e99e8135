package captions

import "strings"

// speakerMarker is the caption convention for a speaker change. The archive
// emits both ">>" and ">>>"; the longer form is normalized away before
// splitting.
const speakerMarker = ">>"

// Fragment is one speaker-turn text fragment extracted from a caption
// chunk. Continuation marks a fragment that began without a new-speaker
// marker: within a chunk that only happens for text preceding the first
// marker, which is either the opening of the broadcast or the tail of a
// turn that a window boundary cut in half. Telling those apart is the
// caller's job (see Merge) and is best-effort, since the caption stream
// carries no explicit turn-continuation signal.
type Fragment struct {
	Text         string
	Continuation bool
}

// Fragments extracts speaker-turn fragments from the cues of one caption
// chunk, in time order. Cue texts are joined with single spaces and split
// on the new-speaker marker; empty fragments are dropped, so a silent or
// commercial-block window yields nothing.
func Fragments(cues []Cue) []Fragment {
	if len(cues) == 0 {
		return nil
	}

	texts := make([]string, 0, len(cues))
	for _, cue := range cues {
		texts = append(texts, cue.Text)
	}

	joined := strings.Join(texts, " ")
	joined = strings.ReplaceAll(joined, speakerMarker+"> ", speakerMarker)
	joined = strings.ReplaceAll(joined, speakerMarker+">", speakerMarker)

	var fragments []Fragment
	for i, piece := range strings.Split(joined, speakerMarker) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		fragments = append(fragments, Fragment{
			Text:         piece,
			Continuation: i == 0,
		})
	}
	return fragments
}

// Merge appends the fragments of the next caption window onto the turns
// accumulated so far. A leading continuation fragment is glued onto the
// previous window's final turn, undoing a split caused by the window
// boundary; every other fragment becomes a distinct turn. Merging windowed
// fragments this way reproduces the turn boundaries a single unwindowed
// fetch would have produced.
func Merge(turns []string, fragments []Fragment) []string {
	for _, f := range fragments {
		if f.Continuation && len(turns) > 0 {
			turns[len(turns)-1] = turns[len(turns)-1] + " " + f.Text
			continue
		}
		turns = append(turns, f.Text)
	}
	return turns
}
