package listing

// Season is the closed set of values accepted by the season selector.
type Season string

const (
	SeasonNone   Season = "None"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// seasonalPacks maps each season to its ordered keyword list. The first
// entry is the anchor used in titles, hooks, and long-tail tags. Defined
// once at process start and never mutated.
var seasonalPacks = map[Season][]string{
	SeasonNone:   {},
	SeasonSpring: {"spring", "easter", "mother's day"},
	SeasonSummer: {"summer", "beach", "vacation"},
	SeasonAutumn: {"fall", "autumn", "halloween", "thanksgiving"},
	SeasonWinter: {"christmas", "winter", "new year"},
}

// Seasons lists the selector options in display order.
func Seasons() []Season {
	return []Season{SeasonNone, SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// SeasonalPack returns the keyword list for a season. Unknown season names
// behave like None.
func SeasonalPack(season string) []string {
	return seasonalPacks[Season(season)]
}

// seasonKeyword is the first keyword of the pack, used as the {season} slot
// in titles and as the seasonal long-tail anchor. Empty for None.
func seasonKeyword(season string) string {
	if pack := SeasonalPack(season); len(pack) > 0 {
		return pack[0]
	}
	return ""
}
