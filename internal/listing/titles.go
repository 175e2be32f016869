package listing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"listinghub/pkg/models"
)

// MaxTitleLen is the marketplace display limit. It only drives the warning
// classification; titles are never rejected or cut to fit.
const MaxTitleLen = 140

const maxTitles = 8

// Slots is the named-slot record a title template renders from.
type Slots struct {
	Product         string
	Material        string
	Style           string
	Audience        string
	Occasion        string
	Personalization string
	Color           string
	Season          string // first keyword of the seasonal pack, not the season name
	KW1, KW2, KW3   string
}

// titleTemplate pairs a stable name with its placeholder pattern, so the
// eight variants live as data instead of interleaved formatting logic.
type titleTemplate struct {
	name    string
	pattern string
}

var titleTemplates = []titleTemplate{
	{"keyword-lead", "{kw1} {product} - {material} {style} | {audience} {occasion}"},
	{"product-lead", "{product} {kw1} {kw2} | {personalization} {audience} Gift"},
	{"double-keyword", "{kw1} {kw2} {product} | {color} {style} - Perfect {occasion}"},
	{"seasonal", "{season} {kw1} {product} | Unique {audience} Gift - {material}"},
	{"gift-idea", "{product} | {kw1} {style} {material} - {occasion} Gift Idea"},
	{"personalized", "{kw1} {product} | {personalization} - {audience} {occasion} Gift"},
	{"handmade", "{kw1} {kw2} {product} | Handmade {style} - {audience}"},
	{"premium", "{product} {kw1} | Premium {material} - {color} {occasion}"},
}

var (
	doublePipeRe  = regexp.MustCompile(`\|\s*\|`)
	spaceBeforeRe = regexp.MustCompile(`\s+\|`)
	spaceAfterRe  = regexp.MustCompile(`\|\s+`)
)

// NewSlots fills the slot record from a normalized input: the first three
// non-empty keywords plus the selected season's lead keyword.
func NewSlots(in models.ListingInput) Slots {
	s := Slots{
		Product:         in.Product,
		Material:        in.Material,
		Style:           in.Style,
		Audience:        in.Audience,
		Occasion:        in.Occasion,
		Personalization: in.Personalization,
		Color:           in.Color,
		Season:          seasonKeyword(in.Season),
	}
	if len(in.Keywords) > 0 {
		s.KW1 = in.Keywords[0]
	}
	if len(in.Keywords) > 1 {
		s.KW2 = in.Keywords[1]
	}
	if len(in.Keywords) > 2 {
		s.KW3 = in.Keywords[2]
	}
	return s
}

// Render substitutes the slots into one template pattern and cleans up the
// result: whitespace collapsed, doubled pipes merged, pipe spacing
// normalized, stray leading/trailing separators stripped.
func Render(s Slots, pattern string) string {
	r := strings.NewReplacer(
		"{kw1}", s.KW1,
		"{kw2}", s.KW2,
		"{kw3}", s.KW3,
		"{product}", s.Product,
		"{material}", s.Material,
		"{style}", s.Style,
		"{audience}", s.Audience,
		"{occasion}", s.Occasion,
		"{personalization}", s.Personalization,
		"{color}", s.Color,
		"{season}", s.Season,
	)
	out := Normalize(r.Replace(pattern))
	out = doublePipeRe.ReplaceAllString(out, "|")
	out = spaceBeforeRe.ReplaceAllString(out, " |")
	out = spaceAfterRe.ReplaceAllString(out, "| ")
	return strings.Trim(out, " -|")
}

// Titles renders all templates against the input, dropping candidates that
// collapse to empty and exact duplicates. A candidate identical to the
// template's empty-slot skeleton carries no user content (only literal
// filler like "Gift") and is discarded too. First-seen order, capped at 8.
func Titles(in models.ListingInput) []string {
	slots := NewSlots(in)
	titles := make([]string, 0, len(titleTemplates))
	seen := make(map[string]struct{}, len(titleTemplates))
	for _, t := range titleTemplates {
		cand := Render(slots, t.pattern)
		if cand == "" || cand == Render(Slots{}, t.pattern) {
			continue
		}
		if _, dup := seen[cand]; dup {
			continue
		}
		seen[cand] = struct{}{}
		titles = append(titles, cand)
	}
	if len(titles) > maxTitles {
		titles = titles[:maxTitles]
	}
	return titles
}

// CheckTitle classifies a title against the display limit.
func CheckTitle(title string) models.TitleCheck {
	n := utf8.RuneCountInString(title)
	status := "ok"
	switch {
	case n > MaxTitleLen:
		status = "over"
	case n >= 130:
		status = "close"
	}
	return models.TitleCheck{Text: title, Length: n, Limit: MaxTitleLen, Status: status}
}
