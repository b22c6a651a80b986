package enums

import "strings"

// Option pairs a stored enum value with its display label, for form clients
// that render pickers straight from the catalog endpoint.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Label turns a stored snake_case value into a display label,
// e.g. "double_over_head" -> "Double Over Head".
func Label(value string) string {
	words := strings.Split(value, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func options[T ~string](values []T) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: string(v), Label: Label(string(v))})
	}
	return out
}

// Catalog returns every journal vocabulary keyed by field group, in display order.
func Catalog() map[string][]Option {
	return map[string][]Option{
		"sessionType":      options(SessionTypes),
		"waveHeight":       options(WaveHeights),
		"waveFrequency":    options(WaveFrequencies),
		"waveCharacter":    options(WaveCharacters),
		"wavePeeling":      options(WavePeelings),
		"waveWallShape":    options(WaveWallShapes),
		"wavePeelSpeed":    options(WavePeelSpeeds),
		"waveSteepness":    options(WaveSteepnesses),
		"waveShallowness":  options(WaveShallownesses),
		"tideMovement":     options(TideMovements),
		"windDirection":    options(CardinalPoints),
		"windConsistency":  options(WindConsistencies),
		"windStrength":     options(WindStrengths),
		"currentRip":       options(CurrentRips),
		"rockDanger":       options(RockDangers),
		"waterQuality":     options(WaterQualities),
		"waterSurface":     options(WaterSurfaces),
		"vibeInWater":      options(VibesInWater),
		"crowdVolume":      options(CrowdVolumes),
		"crowdSkillLevel":  options(CrowdSkillLevels),
		"overallFeeling":   options(OverallFeelings),
		"facedChallenges":  options(FacedChallenges),
		"marineLife":       options(MarineLifeSpecies),
		"wetsuitThickness": options(WetsuitThicknesses),
		"breakType":        options(BreakTypes),
		"yearSeason":       options(YearSeasons),
	}
}
