package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	dbm "surflog/internal/models/db_models"
	"surflog/internal/models/enums"
	"surflog/internal/models/request_models"
	"surflog/pkg/utils"
)

// ValidateJournalEntry checks an untrusted payload against the vocabulary
// catalog and structural rules. It returns either a draft aggregate ready for
// the repository (no ids, no sync timestamp) or the full list of violations.
// Reference existence (break, board) is deliberately not checked here; the
// repository owns those failure modes.
func ValidateJournalEntry(req *request_models.CreateJournalEntryRequest) (*dbm.JournalEntry, utils.ValidationErrors) {
	var violations utils.ValidationErrors

	sessionType := enums.SessionType(req.SessionType)
	if !sessionType.Valid() {
		violations.Add("sessionType", unknownValue(req.SessionType))
	}

	if req.UUID != "" {
		if _, err := uuid.Parse(req.UUID); err != nil {
			violations.Add("uuid", fmt.Sprintf("%q is not a valid UUID", req.UUID))
		}
	}

	if req.BreakID == 0 {
		violations.Add("breakId", "must be a positive integer")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		violations.Add("date", fmt.Sprintf("%q is not a calendar date (expected YYYY-MM-DD)", req.Date))
	}

	// Free-form time-of-day strings; no ordering between start and end is
	// enforced, which keeps overnight sessions legal.
	if req.StartTime == "" {
		violations.Add("startTime", "required")
	}
	if req.EndTime == "" {
		violations.Add("endTime", "required")
	}

	draft := &dbm.JournalEntry{
		UUID:        req.UUID,
		SessionType: sessionType,
		BreakID:     req.BreakID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if wave := req.WaveConditions; wave == nil {
		violations.Add("waveConditions", "required")
	} else {
		checkEnum(&violations, "waveConditions.height", enums.WaveHeight(wave.Height))
		checkEnum(&violations, "waveConditions.frequency", enums.WaveFrequency(wave.Frequency))
		checkEnum(&violations, "waveConditions.character", enums.WaveCharacter(wave.Character))
		checkEnum(&violations, "waveConditions.tideMovement", enums.TideMovement(wave.TideMovement))
		checkEnum(&violations, "waveConditions.peelDirection", enums.WavePeeling(wave.PeelDirection))
		checkEnum(&violations, "waveConditions.wallShape", enums.WaveWallShape(wave.WallShape))
		checkEnum(&violations, "waveConditions.peelSpeed", enums.WavePeelSpeed(wave.PeelSpeed))
		checkEnum(&violations, "waveConditions.steepness", enums.WaveSteepness(wave.Steepness))
		checkEnum(&violations, "waveConditions.shallowness", enums.WaveShallowness(wave.Shallowness))
		draft.WaveConditions = dbm.WaveConditions{
			Height:        enums.WaveHeight(wave.Height),
			Frequency:     enums.WaveFrequency(wave.Frequency),
			Character:     enums.WaveCharacter(wave.Character),
			TideMovement:  enums.TideMovement(wave.TideMovement),
			PeelDirection: enums.WavePeeling(wave.PeelDirection),
			WallShape:     enums.WaveWallShape(wave.WallShape),
			PeelSpeed:     enums.WavePeelSpeed(wave.PeelSpeed),
			Steepness:     enums.WaveSteepness(wave.Steepness),
			Shallowness:   enums.WaveShallowness(wave.Shallowness),
		}
	}

	if wind := req.WindConditions; wind == nil {
		violations.Add("windConditions", "required")
	} else {
		checkEnum(&violations, "windConditions.direction", enums.CardinalPoint(wind.Direction))
		checkEnum(&violations, "windConditions.consistency", enums.WindConsistency(wind.Consistency))
		checkEnum(&violations, "windConditions.strength", enums.WindStrength(wind.Strength))
		draft.WindConditions = dbm.WindConditions{
			Direction:   enums.CardinalPoint(wind.Direction),
			Consistency: enums.WindConsistency(wind.Consistency),
			Strength:    enums.WindStrength(wind.Strength),
		}
	}

	if env := req.EnvironmentConditions; env == nil {
		violations.Add("environmentConditions", "required")
	} else {
		checkEnum(&violations, "environmentConditions.current", enums.CurrentRip(env.Current))
		checkEnum(&violations, "environmentConditions.rockDanger", enums.RockDanger(env.RockDanger))
		checkEnum(&violations, "environmentConditions.waterQuality", enums.WaterQuality(env.WaterQuality))
		checkEnum(&violations, "environmentConditions.waterSurface", enums.WaterSurface(env.WaterSurface))
		draft.EnvironmentConditions = dbm.EnvironmentConditions{
			Current:      enums.CurrentRip(env.Current),
			RockDanger:   enums.RockDanger(env.RockDanger),
			WaterQuality: enums.WaterQuality(env.WaterQuality),
			WaterSurface: enums.WaterSurface(env.WaterSurface),
		}
	}

	if crowd := req.CrowdConditions; crowd == nil {
		violations.Add("crowdConditions", "required")
	} else {
		checkEnum(&violations, "crowdConditions.vibe", enums.VibeInWater(crowd.Vibe))
		checkEnum(&violations, "crowdConditions.volume", enums.CrowdVolume(crowd.Volume))
		checkEnum(&violations, "crowdConditions.skillLevel", enums.CrowdSkillLevel(crowd.SkillLevel))
		draft.CrowdConditions = dbm.CrowdConditions{
			Vibe:       enums.VibeInWater(crowd.Vibe),
			Volume:     enums.CrowdVolume(crowd.Volume),
			SkillLevel: enums.CrowdSkillLevel(crowd.SkillLevel),
		}
	}

	if gear := req.GearUsed; gear == nil {
		violations.Add("gearUsed", "required")
	} else {
		if gear.BoardID == 0 {
			violations.Add("gearUsed.boardId", "must be a positive integer")
		}
		// wetsuitThickness stays free text ("4/3", "shorts", ...).
		draft.GearUsed = dbm.GearUsed{
			BoardID:          gear.BoardID,
			WetsuitThickness: gear.WetsuitThickness,
			Gloves:           gear.Gloves,
			Boots:            gear.Boots,
			Hood:             gear.Hood,
		}
	}

	if perf := req.PersonalPerformance; perf == nil {
		violations.Add("personalPerformance", "required")
	} else {
		if perf.PerformanceRating < enums.PerformanceRatingMin || perf.PerformanceRating > enums.PerformanceRatingMax {
			violations.Add("personalPerformance.performanceRating",
				fmt.Sprintf("must be between %d and %d", enums.PerformanceRatingMin, enums.PerformanceRatingMax))
		}
		checkEnum(&violations, "personalPerformance.feeling", enums.OverallFeeling(perf.Feeling))
		draft.PersonalPerformance = dbm.PersonalPerformance{
			PerformanceRating: perf.PerformanceRating,
			Feeling:           enums.OverallFeeling(perf.Feeling),
			Comments:          perf.Comments,
		}
	}

	// A missing list group means no sightings/challenges; an empty one is a
	// legal entry. Duplicate values collapse to a single row.
	if req.MarineLife != nil {
		seen := make(map[enums.MarineLife]bool, len(req.MarineLife.Species))
		for i, raw := range req.MarineLife.Species {
			species := enums.MarineLife(raw)
			if !species.Valid() {
				violations.Add(fmt.Sprintf("marineLife.species[%d]", i), unknownValue(raw))
				continue
			}
			if seen[species] {
				continue
			}
			seen[species] = true
			draft.MarineLife = append(draft.MarineLife, dbm.MarineLifeObservation{Species: species})
		}
	}

	if req.ChallengesFaced != nil {
		seen := make(map[enums.FacedChallenge]bool, len(req.ChallengesFaced.Challenge))
		for i, raw := range req.ChallengesFaced.Challenge {
			challenge := enums.FacedChallenge(raw)
			if !challenge.Valid() {
				violations.Add(fmt.Sprintf("challengesFaced.challenge[%d]", i), unknownValue(raw))
				continue
			}
			if seen[challenge] {
				continue
			}
			seen[challenge] = true
			draft.ChallengesFaced = append(draft.ChallengesFaced, dbm.ChallengeFaced{Challenge: challenge})
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return draft, nil
}

type validatable interface {
	~string
	Valid() bool
}

func checkEnum[T validatable](violations *utils.ValidationErrors, field string, v T) {
	if !v.Valid() {
		violations.Add(field, unknownValue(string(v)))
	}
}

func unknownValue(v string) string {
	if v == "" {
		return "required"
	}
	return fmt.Sprintf("unknown value %q", v)
}
