package listing

import (
	"strings"

	"listinghub/pkg/models"
)

const (
	maxFeatureBullets   = 8
	maxKeywordsInFooter = 8

	fallbackHookLine = "A thoughtful gift that feels premium and personal."
	closingLine      = "📩 Questions? Message me anytime — I’m happy to help!"
)

var fallbackBullets = []string{
	"High quality, made with care",
	"Unique look that matches multiple styles",
	"Great as a gift or for everyday use",
}

// HookLines builds the two opening lines optimized for the search preview.
func HookLines(in models.ListingInput) (string, string) {
	kw := ""
	if len(in.Keywords) > 0 {
		kw = in.Keywords[0]
	}

	var line1 string
	switch {
	case in.Benefit != "":
		line1 = in.Product + ": " + in.Benefit
	case kw != "":
		line1 = in.Product + ": " + kw + " designed to stand out"
	default:
		line1 = in.Product + ": made to stand out"
	}

	var parts []string
	if in.Audience != "" {
		parts = append(parts, "Perfect for "+in.Audience)
	}
	if in.Occasion != "" {
		parts = append(parts, in.Occasion+" gifts")
	}
	if in.Personalization != "" {
		parts = append(parts, in.Personalization)
	}
	if skw := seasonKeyword(in.Season); skw != "" {
		parts = append(parts, skw)
	}

	line2 := fallbackHookLine
	if len(parts) > 0 {
		line2 = strings.Join(parts, " • ")
	}

	return Normalize(line1), Normalize(line2)
}

// Description assembles the full multi-section plain-text body. Sections
// appear in a fixed order; optional ones are included only when their field
// is non-empty.
func Description(in models.ListingInput) string {
	line1, line2 := HookLines(in)

	bullets := featureBullets(in.Features)

	var desc []string
	desc = append(desc, line1, line2, "")
	desc = append(desc, "✅ Why you'll love it:")
	if len(bullets) > 0 {
		for _, b := range bullets {
			desc = append(desc, "• "+b)
		}
	} else {
		for _, b := range fallbackBullets {
			desc = append(desc, "• "+b)
		}
	}

	if in.MaterialsText != "" {
		desc = append(desc, "", "🧵 Materials: "+in.MaterialsText)
	}
	if in.Sizing != "" {
		desc = append(desc, "", "📏 Size / Details: "+in.Sizing)
	}
	if in.Personalization != "" {
		desc = append(desc, "", "✨ Personalization: "+in.Personalization)
	}
	if in.Shipping != "" {
		desc = append(desc, "", "🚚 Shipping: "+in.Shipping)
	}

	if kws := footerKeywords(in.Keywords); kws != "" {
		desc = append(desc, "", "🔎 Keywords: "+kws)
	}

	desc = append(desc, "", closingLine)
	return strings.Join(desc, "\n")
}

func featureBullets(features string) []string {
	lines := strings.Split(features, "\n")
	out := make([]string, 0, maxFeatureBullets)
	for _, l := range lines {
		if l = Normalize(l); l != "" {
			out = append(out, l)
		}
		if len(out) == maxFeatureBullets {
			break
		}
	}
	return out
}

func footerKeywords(keywords []string) string {
	if len(keywords) > maxKeywordsInFooter {
		keywords = keywords[:maxKeywordsInFooter]
	}
	return strings.Join(keywords, ", ")
}
