// Package transcript defines diarized transcript segments and the
// speaker-labeling heuristics used before analysis runs.
package transcript

import (
	"fmt"
	"sort"
	"strings"
)

// Speaker labels assigned after classification.
const (
	RoleTherapist = "Therapist"
	RoleClient    = "Client"
)

// Segment is one diarized utterance. Immutable once ingested.
type Segment struct {
	StartSec  float64 `json:"start_sec"`
	EndSec    float64 `json:"end_sec"`
	SpeakerID string  `json:"speaker_id"`
	Text      string  `json:"text"`
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 { return s.EndSec - s.StartSec }

// Validate checks segment invariants: start < end on every segment and
// no overlap between segments of the same speaker.
func Validate(segments []Segment) error {
	if len(segments) == 0 {
		return fmt.Errorf("transcript has no segments")
	}

	bySpeaker := make(map[string][]Segment)
	for i, seg := range segments {
		if seg.SpeakerID == "" {
			return fmt.Errorf("segment %d: empty speaker_id", i)
		}
		if seg.StartSec >= seg.EndSec {
			return fmt.Errorf("segment %d: start %.2f not before end %.2f", i, seg.StartSec, seg.EndSec)
		}
		bySpeaker[seg.SpeakerID] = append(bySpeaker[seg.SpeakerID], seg)
	}

	for speaker, segs := range bySpeaker {
		sorted := make([]Segment, len(segs))
		copy(sorted, segs)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartSec < sorted[j].StartSec })
		for i := 1; i < len(sorted); i++ {
			if sorted[i].StartSec < sorted[i-1].EndSec {
				return fmt.Errorf("speaker %s: segment starting at %.2f overlaps previous ending at %.2f",
					speaker, sorted[i].StartSec, sorted[i-1].EndSec)
			}
		}
	}
	return nil
}

// Speakers returns the distinct speaker IDs in first-appearance order.
func Speakers(segments []Segment) []string {
	seen := make(map[string]bool)
	var out []string
	for _, seg := range segments {
		if !seen[seg.SpeakerID] {
			seen[seg.SpeakerID] = true
			out = append(out, seg.SpeakerID)
		}
	}
	return out
}

// SpeakingRatios returns each speaker's share of total speech time.
func SpeakingRatios(segments []Segment) map[string]float64 {
	totals := make(map[string]float64)
	var total float64
	for _, seg := range segments {
		d := seg.Duration()
		totals[seg.SpeakerID] += d
		total += d
	}
	ratios := make(map[string]float64, len(totals))
	for speaker, t := range totals {
		if total > 0 {
			ratios[speaker] = t / total
		}
	}
	return ratios
}

// FilterBySpeaker returns the segments spoken by the given speaker,
// preserving order.
func FilterBySpeaker(segments []Segment, speakerID string) []Segment {
	var out []Segment
	for _, seg := range segments {
		if seg.SpeakerID == speakerID {
			out = append(out, seg)
		}
	}
	return out
}

// Relabel rewrites speaker IDs through the given mapping. Unmapped IDs
// pass through unchanged.
func Relabel(segments []Segment, labels map[string]string) []Segment {
	out := make([]Segment, len(segments))
	for i, seg := range segments {
		out[i] = seg
		if label, ok := labels[seg.SpeakerID]; ok {
			out[i].SpeakerID = label
		}
	}
	return out
}

// Render flattens segments into "Speaker: text" lines for prompts.
func Render(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.SpeakerID)
		b.WriteString(": ")
		b.WriteString(seg.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// ClientSegments returns the client-side segments of a labeled
// transcript. When the transcript is unlabeled it falls back to the
// heuristic guess so mood analysis still has something to chew on.
func ClientSegments(segments []Segment) []Segment {
	if labeled := FilterBySpeaker(segments, RoleClient); len(labeled) > 0 {
		return labeled
	}
	guess := HeuristicLabels(segments)
	for id, role := range guess.Labels {
		if role == RoleClient {
			return FilterBySpeaker(segments, id)
		}
	}
	return segments
}
