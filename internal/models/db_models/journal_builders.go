package db_models

import (
	"time"

	"surflog/internal/models/response_models"
)

func BuildJournalEntryResponse(entry *JournalEntry) *response_models.JournalEntryResponse {
	out := &response_models.JournalEntryResponse{
		ID:          entry.ID,
		UUID:        entry.UUID,
		AuthorID:    entry.AuthorID,
		SessionType: string(entry.SessionType),
		BreakID:     entry.BreakID,
		Date:        entry.Date.Format("2006-01-02"),
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		WaveConditions: response_models.WaveConditionsResponse{
			Height:        string(entry.WaveConditions.Height),
			Frequency:     string(entry.WaveConditions.Frequency),
			Character:     string(entry.WaveConditions.Character),
			TideMovement:  string(entry.WaveConditions.TideMovement),
			PeelDirection: string(entry.WaveConditions.PeelDirection),
			WallShape:     string(entry.WaveConditions.WallShape),
			PeelSpeed:     string(entry.WaveConditions.PeelSpeed),
			Steepness:     string(entry.WaveConditions.Steepness),
			Shallowness:   string(entry.WaveConditions.Shallowness),
		},
		WindConditions: response_models.WindConditionsResponse{
			Direction:   string(entry.WindConditions.Direction),
			Consistency: string(entry.WindConditions.Consistency),
			Strength:    string(entry.WindConditions.Strength),
		},
		EnvironmentConditions: response_models.EnvironmentConditionsResponse{
			Current:      string(entry.EnvironmentConditions.Current),
			RockDanger:   string(entry.EnvironmentConditions.RockDanger),
			WaterQuality: string(entry.EnvironmentConditions.WaterQuality),
			WaterSurface: string(entry.EnvironmentConditions.WaterSurface),
		},
		CrowdConditions: response_models.CrowdConditionsResponse{
			Vibe:       string(entry.CrowdConditions.Vibe),
			Volume:     string(entry.CrowdConditions.Volume),
			SkillLevel: string(entry.CrowdConditions.SkillLevel),
		},
		GearUsed: response_models.GearUsedResponse{
			BoardID:          entry.GearUsed.BoardID,
			WetsuitThickness: entry.GearUsed.WetsuitThickness,
			Gloves:           entry.GearUsed.Gloves,
			Boots:            entry.GearUsed.Boots,
			Hood:             entry.GearUsed.Hood,
		},
		PersonalPerformance: response_models.PersonalPerformanceResponse{
			PerformanceRating: entry.PersonalPerformance.PerformanceRating,
			Feeling:           string(entry.PersonalPerformance.Feeling),
			Comments:          entry.PersonalPerformance.Comments,
		},
		MarineLife:      make([]string, 0, len(entry.MarineLife)),
		ChallengesFaced: make([]string, 0, len(entry.ChallengesFaced)),
	}

	for _, obs := range entry.MarineLife {
		out.MarineLife = append(out.MarineLife, string(obs.Species))
	}
	for _, ch := range entry.ChallengesFaced {
		out.ChallengesFaced = append(out.ChallengesFaced, string(ch.Challenge))
	}
	if entry.SyncedAt != nil {
		out.SyncedAt = entry.SyncedAt.Format(time.RFC3339)
	}
	return out
}

func BuildJournalEntrySummary(entry *JournalEntry) response_models.JournalEntrySummary {
	return response_models.JournalEntrySummary{
		ID:          entry.ID,
		UUID:        entry.UUID,
		SessionType: string(entry.SessionType),
		BreakID:     entry.BreakID,
		Date:        entry.Date.Format("2006-01-02"),
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
	}
}
