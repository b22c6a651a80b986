package response_models

type JournalEntryResponse struct {
	ID          uint   `json:"id"`
	UUID        string `json:"uuid"`
	AuthorID    uint   `json:"authorId"`
	SessionType string `json:"sessionType"`
	BreakID     uint   `json:"breakId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	SyncedAt    string `json:"syncedAt,omitempty"`

	WaveConditions        WaveConditionsResponse        `json:"waveConditions"`
	WindConditions        WindConditionsResponse        `json:"windConditions"`
	EnvironmentConditions EnvironmentConditionsResponse `json:"environmentConditions"`
	CrowdConditions       CrowdConditionsResponse       `json:"crowdConditions"`
	GearUsed              GearUsedResponse              `json:"gearUsed"`
	PersonalPerformance   PersonalPerformanceResponse   `json:"personalPerformance"`
	MarineLife            []string                      `json:"marineLife"`
	ChallengesFaced       []string                      `json:"challengesFaced"`
}

type WaveConditionsResponse struct {
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

type WindConditionsResponse struct {
	Direction   string `json:"direction"`
	Consistency string `json:"consistency"`
	Strength    string `json:"strength"`
}

type EnvironmentConditionsResponse struct {
	Current      string `json:"current"`
	RockDanger   string `json:"rockDanger"`
	WaterQuality string `json:"waterQuality"`
	WaterSurface string `json:"waterSurface"`
}

type CrowdConditionsResponse struct {
	Vibe       string `json:"vibe"`
	Volume     string `json:"volume"`
	SkillLevel string `json:"skillLevel"`
}

type GearUsedResponse struct {
	BoardID          uint   `json:"boardId"`
	WetsuitThickness string `json:"wetsuitThickness,omitempty"`
	Gloves           bool   `json:"gloves"`
	Boots            bool   `json:"boots"`
	Hood             bool   `json:"hood"`
}

type PersonalPerformanceResponse struct {
	PerformanceRating int    `json:"performanceRating"`
	Feeling           string `json:"feeling"`
	Comments          string `json:"comments,omitempty"`
}

type JournalEntrySummary struct {
	ID          uint   `json:"id"`
	UUID        string `json:"uuid"`
	SessionType string `json:"sessionType"`
	BreakID     uint   `json:"breakId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}
