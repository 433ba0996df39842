package transcript

// Therapists open the session and typically hold 25-45% of the speech
// time; both signals feed the heuristic below and its confidence.
const (
	therapistRatioLow  = 0.25
	therapistRatioHigh = 0.45
)

// LabelGuess is a speaker-to-role assignment with a confidence score.
type LabelGuess struct {
	Labels     map[string]string
	Confidence float64
}

// HeuristicLabels assigns Therapist/Client roles from structural signals
// alone: the first speaker is presumed the therapist, and the presumption
// is strengthened or weakened by their speaking ratio. Works only for
// two-speaker transcripts; with any other speaker count it returns an
// empty guess.
func HeuristicLabels(segments []Segment) LabelGuess {
	speakers := Speakers(segments)
	if len(speakers) != 2 {
		return LabelGuess{Labels: map[string]string{}}
	}

	first, second := speakers[0], speakers[1]
	ratios := SpeakingRatios(segments)
	firstRatio := ratios[first]

	therapist, client := first, second
	confidence := 0.6 // first-speaker prior alone

	switch {
	case firstRatio >= therapistRatioLow && firstRatio <= therapistRatioHigh:
		// Both signals agree.
		confidence = 0.9
	case ratios[second] >= therapistRatioLow && ratios[second] <= therapistRatioHigh:
		// Ratio contradicts the first-speaker prior; ratio wins but with
		// less certainty.
		therapist, client = second, first
		confidence = 0.7
	}

	return LabelGuess{
		Labels: map[string]string{
			therapist: RoleTherapist,
			client:    RoleClient,
		},
		Confidence: confidence,
	}
}

// FuseLabels combines the heuristic guess with a model-produced guess.
// Agreement boosts confidence; on disagreement the higher-confidence
// guess wins. Either side may be empty.
func FuseLabels(heuristic, model LabelGuess) LabelGuess {
	if len(model.Labels) == 0 {
		return heuristic
	}
	if len(heuristic.Labels) == 0 {
		return model
	}

	agree := len(heuristic.Labels) == len(model.Labels)
	if agree {
		for id, role := range heuristic.Labels {
			if model.Labels[id] != role {
				agree = false
				break
			}
		}
	}

	if agree {
		confidence := heuristic.Confidence + (1-heuristic.Confidence)*model.Confidence
		return LabelGuess{Labels: heuristic.Labels, Confidence: confidence}
	}
	if model.Confidence > heuristic.Confidence {
		return model
	}
	return heuristic
}
