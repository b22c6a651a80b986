package db_models

import (
	"time"

	"surflog/internal/models/enums"
)

// JournalEntry is the aggregate root of one recorded session. The six singular
// condition groups and the two list groups below only ever exist together with
// their parent row; the repository writes the whole graph in one transaction.
type JournalEntry struct {
	BaseModel
	UUID        string            `gorm:"type:uuid;uniqueIndex;not null"` // client-generated, offline-safe
	AuthorID    uint              `gorm:"not null;index"`
	SessionType enums.SessionType `gorm:"type:text;not null"`
	BreakID     uint              `gorm:"not null"`
	Date        time.Time         `gorm:"not null"`
	StartTime   string            `gorm:"not null"`
	EndTime     string            `gorm:"not null"`
	SyncedAt    *time.Time        // nil while the entry only exists on the client

	WaveConditions        WaveConditions         `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
	WindConditions        WindConditions         `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
	EnvironmentConditions EnvironmentConditions  `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
	CrowdConditions       CrowdConditions        `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
	GearUsed              GearUsed               `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
	PersonalPerformance   PersonalPerformance    `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
	MarineLife            []MarineLifeObservation `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
	ChallengesFaced       []ChallengeFaced        `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE"`
}

type WaveConditions struct {
	BaseModel
	JournalEntryID uint                  `gorm:"not null;index"`
	Height         enums.WaveHeight      `gorm:"type:text;not null"`
	Frequency      enums.WaveFrequency   `gorm:"type:text;not null"`
	Character      enums.WaveCharacter   `gorm:"type:text;not null"`
	TideMovement   enums.TideMovement    `gorm:"type:text;not null"`
	PeelDirection  enums.WavePeeling     `gorm:"type:text;not null"`
	WallShape      enums.WaveWallShape   `gorm:"type:text;not null"`
	PeelSpeed      enums.WavePeelSpeed   `gorm:"type:text;not null"`
	Steepness      enums.WaveSteepness   `gorm:"type:text;not null"`
	Shallowness    enums.WaveShallowness `gorm:"type:text;not null"`
}

type WindConditions struct {
	BaseModel
	JournalEntryID uint                  `gorm:"not null;index"`
	Direction      enums.CardinalPoint   `gorm:"type:text;not null"`
	Consistency    enums.WindConsistency `gorm:"type:text;not null"`
	Strength       enums.WindStrength    `gorm:"type:text;not null"`
}

type EnvironmentConditions struct {
	BaseModel
	JournalEntryID uint               `gorm:"not null;index"`
	Current        enums.CurrentRip   `gorm:"type:text;not null"`
	RockDanger     enums.RockDanger   `gorm:"type:text;not null"`
	WaterQuality   enums.WaterQuality `gorm:"type:text;not null"`
	WaterSurface   enums.WaterSurface `gorm:"type:text;not null"`
}

type CrowdConditions struct {
	BaseModel
	JournalEntryID uint                  `gorm:"not null;index"`
	Vibe           enums.VibeInWater     `gorm:"type:text;not null"`
	Volume         enums.CrowdVolume     `gorm:"type:text;not null"`
	SkillLevel     enums.CrowdSkillLevel `gorm:"type:text;not null"`
}

type GearUsed struct {
	BaseModel
	JournalEntryID   uint   `gorm:"not null;index"`
	BoardID          uint   `gorm:"not null"`
	WetsuitThickness string // free text, e.g. "4/3"
	Gloves           bool   `gorm:"not null;default:false"`
	Boots            bool   `gorm:"not null;default:false"`
	Hood             bool   `gorm:"not null;default:false"`
}

type PersonalPerformance struct {
	BaseModel
	JournalEntryID    uint                 `gorm:"not null;index"`
	PerformanceRating int                  `gorm:"not null"`
	Feeling           enums.OverallFeeling `gorm:"type:text;not null"`
	Comments          string
}

type MarineLifeObservation struct {
	BaseModel
	JournalEntryID uint             `gorm:"not null;index"`
	Species        enums.MarineLife `gorm:"type:text;not null"`
}

func (MarineLifeObservation) TableName() string { return "marine_life" }

type ChallengeFaced struct {
	BaseModel
	JournalEntryID uint                 `gorm:"not null;index"`
	Challenge      enums.FacedChallenge `gorm:"type:text;not null"`
}

func (ChallengeFaced) TableName() string { return "challenges_faced" }
