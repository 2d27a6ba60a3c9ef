package pathway

import (
	"testing"

	"github.com/edutena/pathways/internal/domain"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		scores domain.Scores
		want   domain.Pathway
	}{
		{
			name:   "all exceeding ties to STEM",
			scores: domain.Scores{Math: 4, Science: 4, Social: 4, Creative: 4, Technical: 4},
			want:   domain.PathwaySTEM,
		},
		{
			name:   "all below ties to STEM",
			scores: domain.Scores{Math: 1, Science: 1, Social: 1, Creative: 1, Technical: 1},
			want:   domain.PathwaySTEM,
		},
		{
			name: "strong social wins",
			// stem=3, social=8, arts=2
			scores: domain.Scores{Math: 1, Science: 1, Social: 4, Creative: 1, Technical: 1},
			want:   domain.PathwaySocialSciences,
		},
		{
			name: "doubling is not enough to beat stem sum",
			// stem=4, social=2, arts=2: STEM despite the doubled weights
			scores: domain.Scores{Math: 2, Science: 1, Social: 1, Creative: 1, Technical: 1},
			want:   domain.PathwaySTEM,
		},
		{
			name: "strong creative wins arts",
			// stem=3, social=2, arts=8
			scores: domain.Scores{Math: 1, Science: 1, Social: 1, Creative: 4, Technical: 1},
			want:   domain.PathwayArtsAndSports,
		},
		{
			name: "social beats arts on tie",
			// stem=3, social=8, arts=8: social wins by evaluation order
			scores: domain.Scores{Math: 1, Science: 1, Social: 4, Creative: 4, Technical: 1},
			want:   domain.PathwaySocialSciences,
		},
		{
			name: "unset ratings count as zero",
			// stem=0, social=0, arts=2
			scores: domain.Scores{Creative: 1},
			want:   domain.PathwayArtsAndSports,
		},
		{
			name:   "empty scores tie to STEM",
			scores: domain.Scores{},
			want:   domain.PathwaySTEM,
		},
		{
			name: "stem subjects dominate",
			// stem=12, social=4, arts=4
			scores: domain.Scores{Math: 4, Science: 4, Social: 2, Creative: 2, Technical: 4},
			want:   domain.PathwaySTEM,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Calculate(tt.scores); got != tt.want {
				t.Errorf("Calculate(%+v) = %q, want %q", tt.scores, got, tt.want)
			}
		})
	}
}

func TestCalculateDeterministic(t *testing.T) {
	scores := domain.Scores{Math: 2, Science: 3, Social: 3, Creative: 2, Technical: 1}
	first := Calculate(scores)
	for i := 0; i < 100; i++ {
		if got := Calculate(scores); got != first {
			t.Fatalf("Calculate is not deterministic: got %q then %q", first, got)
		}
	}
}
