package lookup

// #region imports
import (
	"github.com/mingshu-dev/yaocast/internal/fortune"
)

// #endregion

// #region exceptions

// DefaultExceptions lists the curated lines whose received reading
// departs from what their surface markers suggest. Each pin matches the
// corpus label; keeping them named documents the deviation instead of
// burying it in the table.
func DefaultExceptions() []ExceptionRule {
	return []ExceptionRule{
		{
			Name:      "modesty-fifth-line",
			Hexagram:  15,
			Position:  5,
			Label:     fortune.Neutral,
			Rationale: "无不利 here licenses the campaign, it does not promise its outcome",
		},
		{
			Name:      "waiting-on-sand",
			Hexagram:  5,
			Position:  2,
			Label:     fortune.Neutral,
			Rationale: "終吉 arrives only after reproach; the line itself is mixed",
		},
		{
			Name:      "uninvited-guests",
			Hexagram:  5,
			Position:  6,
			Label:     fortune.Neutral,
			Rationale: "終吉 is conditional on deference to the three arrivals",
		},
		{
			Name:      "dispute-cut-short",
			Hexagram:  6,
			Position:  1,
			Label:     fortune.Neutral,
			Rationale: "終吉 follows minor reproach; abandoning the dispute is merely safe",
		},
		{
			Name:      "living-on-old-merit",
			Hexagram:  6,
			Position:  3,
			Label:     fortune.Neutral,
			Rationale: "終吉 under 貞厲 and with no achievement reads as holding even",
		},
		{
			Name:      "advance-from-the-horn",
			Hexagram:  35,
			Position:  6,
			Label:     fortune.Neutral,
			Rationale: "厲吉 resolves but 貞吝 closes the line; force only serves against one's own city",
		},
	}
}

// #endregion exceptions
