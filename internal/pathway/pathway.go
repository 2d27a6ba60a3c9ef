// Package pathway computes the recommended CBE pathway from the five
// self-rated subject scores.
package pathway

import "github.com/edutena/pathways/internal/domain"

// Calculate returns the pathway for a set of ratings. Unset ratings
// count as zero. STEM weighs math, science and technical; the social
// and creative ratings are doubled to stand for their two-subject
// clusters. Ties resolve STEM, then Social Sciences, then Arts &
// Sports, because the comparisons run in that order with >=. The
// order is load-bearing: all-equal ratings always yield STEM.
func Calculate(scores domain.Scores) domain.Pathway {
	stem := int(scores.Math) + int(scores.Science) + int(scores.Technical)
	social := int(scores.Social) * 2
	arts := int(scores.Creative) * 2

	switch {
	case stem >= social && stem >= arts:
		return domain.PathwaySTEM
	case social >= stem && social >= arts:
		return domain.PathwaySocialSciences
	default:
		return domain.PathwayArtsAndSports
	}
}
