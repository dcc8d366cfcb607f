package ranking

// maxSuggestions caps suggested changes; the list is a prefix of the missing skills
const maxSuggestions = 10

// Feedback bands over match percentage. Each is the inclusive lower bound of its label.
const (
	strongFitThreshold   = 80
	goodFitThreshold     = 65
	moderateFitThreshold = 50
	limitedFitThreshold  = 35
)

// Feedback labels
const (
	FeedbackStrongMatch = "Strong Match - Highly recommended for immediate interview"
	FeedbackGoodFit     = "Good Fit - Consider for next round with skill validation"
	FeedbackModerateFit = "Moderate Fit - May require additional training"
	FeedbackLimited     = "Limited Match - Consider only for junior roles"
	FeedbackPoor        = "Poor Match - Not recommended for this position"
)

// Suggestions is the output of the suggestion stage
type Suggestions struct {
	SuggestedChanges []string
	GeneralFeedback  string
}

// Suggest returns the first ten missing skills in order, and the feedback label for matchPercentage
func Suggest(matchPercentage int, missingSkills []string) Suggestions {
	n := len(missingSkills)
	if n > maxSuggestions {
		n = maxSuggestions
	}

	changes := make([]string, n)
	copy(changes, missingSkills[:n])

	return Suggestions{
		SuggestedChanges: changes,
		GeneralFeedback:  FeedbackLabel(matchPercentage),
	}
}

// FeedbackLabel maps every integer percentage to exactly one label
func FeedbackLabel(matchPercentage int) string {
	switch {
	case matchPercentage >= strongFitThreshold:
		return FeedbackStrongMatch
	case matchPercentage >= goodFitThreshold:
		return FeedbackGoodFit
	case matchPercentage >= moderateFitThreshold:
		return FeedbackModerateFit
	case matchPercentage >= limitedFitThreshold:
		return FeedbackLimited
	default:
		return FeedbackPoor
	}
}
