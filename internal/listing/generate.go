package listing

import (
	"github.com/google/uuid"

	"listinghub/pkg/models"
)

// NormalizeInput re-applies field normalization to every free-text field.
// Handlers call this once on entry; the generators assume it has happened.
func NormalizeInput(in models.ListingInput) models.ListingInput {
	in.Product = Normalize(in.Product)
	in.Material = Normalize(in.Material)
	in.Style = Normalize(in.Style)
	in.Color = Normalize(in.Color)
	in.Audience = Normalize(in.Audience)
	in.Occasion = Normalize(in.Occasion)
	in.Personalization = Normalize(in.Personalization)
	in.Season = Normalize(in.Season)
	in.Benefit = Normalize(in.Benefit)
	in.MaterialsText = Normalize(in.MaterialsText)
	in.Sizing = Normalize(in.Sizing)
	in.Shipping = Normalize(in.Shipping)

	kws := make([]string, 0, len(in.Keywords))
	for _, k := range in.Keywords {
		if k = Normalize(k); k != "" {
			kws = append(kws, k)
		}
	}
	in.Keywords = kws
	return in
}

// Generate runs the three pure pipelines over one normalized input and
// assembles the pack.
func Generate(in models.ListingInput) models.SEOPack {
	in = NormalizeInput(in)

	titles := Titles(in)
	checks := make([]models.TitleCheck, 0, len(titles))
	for _, t := range titles {
		checks = append(checks, CheckTitle(t))
	}

	return models.SEOPack{
		ID:          uuid.NewString(),
		Titles:      checks,
		Tags:        Tags(in),
		Description: Description(in),
	}
}
