package selection

import (
	"sort"
	"strings"

	"github.com/jonathan/resumeforge/internal/types"
)

// DefaultMaxBullets is the number of responsibilities kept per experience entry
const DefaultMaxBullets = 3

// ScoredBullet is a responsibility with its keyword relevance
type ScoredBullet struct {
	Text           string
	RelevanceScore int
}

// ScoreBulletRelevance counts how many distinct keywords occur in the text as
// case-insensitive substrings. A keyword appearing twice still counts once.
// Empty keywords are skipped rather than matching every text; they would add the
// same amount to every bullet, so rankings are unaffected but scores are lower by
// the number of empty keywords.
func ScoreBulletRelevance(text string, keywords []string) int {
	textLower := strings.ToLower(text)
	score := 0
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			score++
		}
	}
	return score
}

// RankBullets scores each responsibility and sorts them by descending relevance.
// Equal scores keep their original order.
func RankBullets(responsibilities []string, keywords []string) []ScoredBullet {
	scored := make([]ScoredBullet, 0, len(responsibilities))
	for _, text := range responsibilities {
		scored = append(scored, ScoredBullet{
			Text:           text,
			RelevanceScore: ScoreBulletRelevance(text, keywords),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	return scored
}

// OptimizeExperience reorders each entry's responsibilities by keyword relevance and keeps
// at most maxBullets of them. Entry order and all other fields are unchanged, and the
// input slice is not modified.
func OptimizeExperience(experiences []types.Experience, keywords []string, maxBullets int) []types.Experience {
	if maxBullets < 0 {
		maxBullets = 0
	}

	optimized := make([]types.Experience, 0, len(experiences))
	for _, exp := range experiences {
		ranked := RankBullets(exp.Responsibilities, keywords)
		if len(ranked) > maxBullets {
			ranked = ranked[:maxBullets]
		}

		bullets := make([]string, 0, len(ranked))
		for _, b := range ranked {
			bullets = append(bullets, b.Text)
		}

		exp.Responsibilities = bullets
		optimized = append(optimized, exp)
	}
	return optimized
}
