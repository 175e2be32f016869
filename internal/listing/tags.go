package listing

import (
	"strings"

	"listinghub/pkg/models"
)

const maxTags = 13

// buyerIntentBase is the curated starting set for buyer-intent tags.
var buyerIntentBase = []string{"gift", "personalized", "custom", "handmade", "unique"}

// LongTailTags builds multi-word search phrases from keywords, the
// style/material/product base, audience, occasion, and the seasonal lead
// keyword. Lowercased, deduped, order-preserving, capped at 13.
func LongTailTags(in models.ListingInput) []string {
	base := joinNonEmpty(" ", in.Style, in.Material, in.Product)

	var candidates []string
	if len(in.Keywords) > 0 {
		candidates = append(candidates, joinNonEmpty(" ", in.Keywords[0], base))
	}
	if len(in.Keywords) > 1 {
		candidates = append(candidates, joinNonEmpty(" ", in.Keywords[0], in.Keywords[1], in.Product))
	}
	if in.Audience != "" {
		candidates = append(candidates, joinNonEmpty(" ", base, "for", in.Audience))
	}
	if in.Occasion != "" {
		candidates = append(candidates, joinNonEmpty(" ", in.Occasion, in.Product, in.Style))
	}
	if kw := seasonKeyword(in.Season); kw != "" {
		candidates = append(candidates, joinNonEmpty(" ", kw, in.Product, "gift"))
	}

	return dedupeLower(candidates)
}

// BuyerIntentTags returns the fixed motivation words plus audience and
// occasion variants when present.
func BuyerIntentTags(in models.ListingInput) []string {
	tags := make([]string, 0, len(buyerIntentBase)+2)
	tags = append(tags, buyerIntentBase...)
	if a := strings.ToLower(in.Audience); a != "" {
		tags = append(tags, "for "+a)
	}
	if o := strings.ToLower(in.Occasion); o != "" {
		tags = append(tags, o+" gift")
	}
	return dedupeLower(tags)
}

// SeasonalTags is the full pack for the selected season, lowercased and
// deduped in pack order.
func SeasonalTags(in models.ListingInput) []string {
	return dedupeLower(SeasonalPack(in.Season))
}

// Tags assembles the three independent tag lists.
func Tags(in models.ListingInput) models.TagSets {
	return models.TagSets{
		LongTail:    LongTailTags(in),
		BuyerIntent: BuyerIntentTags(in),
		Seasonal:    SeasonalTags(in),
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// dedupeLower normalizes each candidate to lowercase, drops empties and
// case-insensitive duplicates, and caps the list at 13.
func dedupeLower(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		c = strings.ToLower(Normalize(c))
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == maxTags {
			break
		}
	}
	return out
}
