package request_models

// CreateJournalEntryRequest is the untrusted nested payload for one session.
// Condition groups are pointers so the gateway can report a missing group as a
// named violation instead of silently zero-filling it.
type CreateJournalEntryRequest struct {
	UUID        string `json:"uuid"` // optional; generated server-side when absent
	SessionType string `json:"sessionType"`
	BreakID     uint   `json:"breakId"`
	Date        string `json:"date"` // ISO calendar date, "2006-01-02"
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`

	WaveConditions        *WaveConditionsRequest        `json:"waveConditions"`
	WindConditions        *WindConditionsRequest        `json:"windConditions"`
	EnvironmentConditions *EnvironmentConditionsRequest `json:"environmentConditions"`
	CrowdConditions       *CrowdConditionsRequest       `json:"crowdConditions"`
	GearUsed              *GearUsedRequest              `json:"gearUsed"`
	PersonalPerformance   *PersonalPerformanceRequest   `json:"personalPerformance"`
	MarineLife            *MarineLifeRequest            `json:"marineLife"`
	ChallengesFaced       *ChallengesFacedRequest       `json:"challengesFaced"`
}

type WaveConditionsRequest struct {
	Height        string `json:"height"`
	Frequency     string `json:"frequency"`
	Character     string `json:"character"`
	TideMovement  string `json:"tideMovement"`
	PeelDirection string `json:"peelDirection"`
	WallShape     string `json:"wallShape"`
	PeelSpeed     string `json:"peelSpeed"`
	Steepness     string `json:"steepness"`
	Shallowness   string `json:"shallowness"`
}

type WindConditionsRequest struct {
	Direction   string `json:"direction"`
	Consistency string `json:"consistency"`
	Strength    string `json:"strength"`
}

type EnvironmentConditionsRequest struct {
	Current      string `json:"current"`
	RockDanger   string `json:"rockDanger"`
	WaterQuality string `json:"waterQuality"`
	WaterSurface string `json:"waterSurface"`
}

type CrowdConditionsRequest struct {
	Vibe       string `json:"vibe"`
	Volume     string `json:"volume"`
	SkillLevel string `json:"skillLevel"`
}

type GearUsedRequest struct {
	BoardID          uint   `json:"boardId"`
	WetsuitThickness string `json:"wetsuitThickness"`
	Gloves           bool   `json:"gloves"`
	Boots            bool   `json:"boots"`
	Hood             bool   `json:"hood"`
}

type PersonalPerformanceRequest struct {
	PerformanceRating int    `json:"performanceRating"`
	Feeling           string `json:"feeling"`
	Comments          string `json:"comments"`
}

type MarineLifeRequest struct {
	Species []string `json:"species"`
}

type ChallengesFacedRequest struct {
	Challenge []string `json:"challenge"`
}
