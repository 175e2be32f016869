package models

// ListingInput is the normalized form of a listing submission.
//
// Every free-text field arrives whitespace-collapsed and trimmed; none is
// required, so generators must tolerate any combination of empty fields.
type ListingInput struct {
	Product         string   `json:"product"`
	Material        string   `json:"material"`
	Style           string   `json:"style"`
	Color           string   `json:"color,omitempty"`
	Audience        string   `json:"audience,omitempty"`
	Occasion        string   `json:"occasion,omitempty"`
	Personalization string   `json:"personalization,omitempty"`
	Season          string   `json:"season,omitempty"` // one of: None, Spring, Summer, Autumn, Winter
	Keywords        []string `json:"keywords"`
	Benefit         string   `json:"benefit,omitempty"`
	Features        string   `json:"features,omitempty"` // newline-delimited
	MaterialsText   string   `json:"materials_text,omitempty"`
	Sizing          string   `json:"sizing,omitempty"`
	Shipping        string   `json:"shipping,omitempty"`
}

// TitleCheck carries the display-only length classification for one title.
// Titles are never rejected or truncated on length.
type TitleCheck struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
	Limit  int    `json:"limit"`
	Status string `json:"status"` // "ok", "close", "over"
}

type TagSets struct {
	LongTail    []string `json:"long_tail"`
	BuyerIntent []string `json:"buyer_intent"`
	Seasonal    []string `json:"seasonal"`
}

// SEOPack is the full output of one generation request.
type SEOPack struct {
	ID          string       `json:"id"`
	Titles      []TitleCheck `json:"titles"`
	Tags        TagSets      `json:"tags"`
	Description string       `json:"description"`
}
