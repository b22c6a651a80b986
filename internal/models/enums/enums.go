package enums

// Closed vocabularies for every enum-constrained journal field. Values are
// stored in the database as-is, so they must never be renamed once live.

type SessionType string

const (
	SessionObserved SessionType = "observed"
	SessionSurfed   SessionType = "surfed"
)

var SessionTypes = []SessionType{SessionObserved, SessionSurfed}

type WaveHeight string

const (
	WaveAnkleHigh      WaveHeight = "ankle_high"
	WaveKneeHigh       WaveHeight = "knee_high"
	WaveWaistHigh      WaveHeight = "waist_high"
	WaveShoulderHigh   WaveHeight = "shoulder_high"
	WaveHeadHigh       WaveHeight = "head_high"
	WaveOverHead       WaveHeight = "over_head"
	WaveDoubleOverHead WaveHeight = "double_over_head"
	WaveTripleOverHead WaveHeight = "triple_over_head"
	WaveXXLDead        WaveHeight = "xxl_dead"
)

var WaveHeights = []WaveHeight{
	WaveAnkleHigh, WaveKneeHigh, WaveWaistHigh, WaveShoulderHigh,
	WaveHeadHigh, WaveOverHead, WaveDoubleOverHead, WaveTripleOverHead, WaveXXLDead,
}

type WaveFrequency string

const (
	FrequencyLongWait   WaveFrequency = "long_wait"
	FrequencyMediumWait WaveFrequency = "medium_wait"
	FrequencyShortWait  WaveFrequency = "short_wait"
	FrequencyConstant   WaveFrequency = "constant"
)

var WaveFrequencies = []WaveFrequency{
	FrequencyLongWait, FrequencyMediumWait, FrequencyShortWait, FrequencyConstant,
}

type WaveCharacter string

const (
	CharacterSoft    WaveCharacter = "soft"
	CharacterMedium  WaveCharacter = "medium"
	CharacterPunchy  WaveCharacter = "punchy"
	CharacterSerious WaveCharacter = "serious"
	CharacterExtreme WaveCharacter = "extreme"
)

var WaveCharacters = []WaveCharacter{
	CharacterSoft, CharacterMedium, CharacterPunchy, CharacterSerious, CharacterExtreme,
}

type WavePeeling string

const (
	PeelLeft   WavePeeling = "left"
	PeelRight  WavePeeling = "right"
	PeelAFrame WavePeeling = "a_frame"
	PeelMix    WavePeeling = "mix"
)

var WavePeelings = []WavePeeling{PeelLeft, PeelRight, PeelAFrame, PeelMix}

type WaveWallShape string

const (
	WallCrumbly  WaveWallShape = "crumbly"
	WallHollow   WaveWallShape = "hollow"
	WallVertical WaveWallShape = "vertical"
	WallVaried   WaveWallShape = "varied"
)

var WaveWallShapes = []WaveWallShape{WallCrumbly, WallHollow, WallVertical, WallVaried}

type WavePeelSpeed string

const (
	PeelSpeedSlow WavePeelSpeed = "slow_peeling"
	PeelSpeedFast WavePeelSpeed = "fast_peeling"
	PeelSpeedRacy WavePeelSpeed = "racy"
)

var WavePeelSpeeds = []WavePeelSpeed{PeelSpeedSlow, PeelSpeedFast, PeelSpeedRacy}

type WaveSteepness string

const (
	SteepnessFat     WaveSteepness = "fat"
	SteepnessMellow  WaveSteepness = "mellow"
	SteepnessSteep   WaveSteepness = "steep"
	SteepnessRadical WaveSteepness = "radical"
)

var WaveSteepnesses = []WaveSteepness{SteepnessFat, SteepnessMellow, SteepnessSteep, SteepnessRadical}

type WaveShallowness string

const (
	ShallownessDry     WaveShallowness = "dry"
	ShallownessShallow WaveShallowness = "shallow"
	ShallownessMedium  WaveShallowness = "medium"
	ShallownessDeep    WaveShallowness = "deep"
)

var WaveShallownesses = []WaveShallowness{
	ShallownessDry, ShallownessShallow, ShallownessMedium, ShallownessDeep,
}

type TideMovement string

const (
	TideRising  TideMovement = "rising"
	TideFalling TideMovement = "falling"
)

var TideMovements = []TideMovement{TideRising, TideFalling}

// Wind direction is recorded as a 16-point compass bearing, not as a
// shore-relative term; whether "NW" is offshore depends on the break.
type CardinalPoint string

const (
	CardinalN   CardinalPoint = "N"
	CardinalNNE CardinalPoint = "NNE"
	CardinalNE  CardinalPoint = "NE"
	CardinalENE CardinalPoint = "ENE"
	CardinalE   CardinalPoint = "E"
	CardinalESE CardinalPoint = "ESE"
	CardinalSE  CardinalPoint = "SE"
	CardinalSSE CardinalPoint = "SSE"
	CardinalS   CardinalPoint = "S"
	CardinalSSW CardinalPoint = "SSW"
	CardinalSW  CardinalPoint = "SW"
	CardinalWSW CardinalPoint = "WSW"
	CardinalW   CardinalPoint = "W"
	CardinalWNW CardinalPoint = "WNW"
	CardinalNW  CardinalPoint = "NW"
	CardinalNNW CardinalPoint = "NNW"
)

var CardinalPoints = []CardinalPoint{
	CardinalN, CardinalNNE, CardinalNE, CardinalENE,
	CardinalE, CardinalESE, CardinalSE, CardinalSSE,
	CardinalS, CardinalSSW, CardinalSW, CardinalWSW,
	CardinalW, CardinalWNW, CardinalNW, CardinalNNW,
}

type WindConsistency string

const (
	WindGusty  WindConsistency = "gusty"
	WindSteady WindConsistency = "steady"
)

var WindConsistencies = []WindConsistency{WindGusty, WindSteady}

type WindStrength string

const (
	WindNone     WindStrength = "none"
	WindLight    WindStrength = "light"
	WindModerate WindStrength = "moderate"
	WindStrong   WindStrength = "strong"
	WindSevere   WindStrength = "severe"
	WindExtreme  WindStrength = "extreme"
)

var WindStrengths = []WindStrength{WindNone, WindLight, WindModerate, WindStrong, WindSevere, WindExtreme}

type CurrentRip string

const (
	CurrentNone     CurrentRip = "none"
	CurrentLight    CurrentRip = "light"
	CurrentModerate CurrentRip = "moderate"
	CurrentStrong   CurrentRip = "strong"
	CurrentSevere   CurrentRip = "severe"
	CurrentExtreme  CurrentRip = "extreme"
)

var CurrentRips = []CurrentRip{CurrentNone, CurrentLight, CurrentModerate, CurrentStrong, CurrentSevere, CurrentExtreme}

type RockDanger string

const (
	RockNone     RockDanger = "none"
	RockLittle   RockDanger = "little"
	RockModerate RockDanger = "moderate"
	RockHigh     RockDanger = "high"
	RockExtreme  RockDanger = "extreme"
)

var RockDangers = []RockDanger{RockNone, RockLittle, RockModerate, RockHigh, RockExtreme}

type WaterQuality string

const (
	WaterPristine WaterQuality = "pristine"
	WaterClean    WaterQuality = "clean"
	WaterMuddy    WaterQuality = "muddy"
	WaterDirty    WaterQuality = "dirty"
	WaterPolluted WaterQuality = "polluted"
)

var WaterQualities = []WaterQuality{WaterPristine, WaterClean, WaterMuddy, WaterDirty, WaterPolluted}

type WaterSurface string

const (
	SurfaceGlassy  WaterSurface = "glassy"
	SurfaceNormal  WaterSurface = "normal"
	SurfaceGroomed WaterSurface = "groomed"
	SurfaceMessy   WaterSurface = "messy"
)

var WaterSurfaces = []WaterSurface{SurfaceGlassy, SurfaceNormal, SurfaceGroomed, SurfaceMessy}

type VibeInWater string

const (
	VibeFriendly    VibeInWater = "friendly"
	VibeChilled     VibeInWater = "chilled"
	VibeCompetitive VibeInWater = "competitive"
	VibeAggressive  VibeInWater = "aggressive"
)

var VibesInWater = []VibeInWater{VibeFriendly, VibeChilled, VibeCompetitive, VibeAggressive}

type CrowdVolume string

const (
	CrowdEmpty     CrowdVolume = "empty"
	CrowdLight     CrowdVolume = "light"
	CrowdModerate  CrowdVolume = "moderate"
	CrowdHigh      CrowdVolume = "high"
	CrowdSaturated CrowdVolume = "saturated"
)

var CrowdVolumes = []CrowdVolume{CrowdEmpty, CrowdLight, CrowdModerate, CrowdHigh, CrowdSaturated}

type CrowdSkillLevel string

const (
	SkillBeginner     CrowdSkillLevel = "beginner"
	SkillNovice       CrowdSkillLevel = "novice"
	SkillIntermediate CrowdSkillLevel = "intermediate"
	SkillAdvanced     CrowdSkillLevel = "advanced"
	SkillExpert       CrowdSkillLevel = "expert"
	SkillPros         CrowdSkillLevel = "pros"
)

var CrowdSkillLevels = []CrowdSkillLevel{
	SkillBeginner, SkillNovice, SkillIntermediate, SkillAdvanced, SkillExpert, SkillPros,
}

type OverallFeeling string

const (
	FeelingAngry      OverallFeeling = "angry"
	FeelingFrustrated OverallFeeling = "frustrated"
	FeelingNervous    OverallFeeling = "nervous"
	FeelingNeutral    OverallFeeling = "neutral"
	FeelingContent    OverallFeeling = "content"
	FeelingSatisfied  OverallFeeling = "satisfied"
	FeelingStoked     OverallFeeling = "stoked"
)

var OverallFeelings = []OverallFeeling{
	FeelingAngry, FeelingFrustrated, FeelingNervous, FeelingNeutral,
	FeelingContent, FeelingSatisfied, FeelingStoked,
}

type FacedChallenge string

const (
	ChallengePaddlingOut   FacedChallenge = "paddling_out"
	ChallengePositioning   FacedChallenge = "positioning"
	ChallengeTakeOff       FacedChallenge = "take_off"
	ChallengeWaveRhythm    FacedChallenge = "wave_rhythm"
	ChallengeWaveSelection FacedChallenge = "wave_selection"
	ChallengeManeuvers     FacedChallenge = "maneuvers"
)

var FacedChallenges = []FacedChallenge{
	ChallengePaddlingOut, ChallengePositioning, ChallengeTakeOff,
	ChallengeWaveRhythm, ChallengeWaveSelection, ChallengeManeuvers,
}

type MarineLife string

const (
	MarineDolphins  MarineLife = "dolphins"
	MarineJellyFish MarineLife = "jelly_fish"
	MarineUrchins   MarineLife = "urchins"
	MarineSharks    MarineLife = "sharks"
	MarineSeals     MarineLife = "seals"
	MarineAlgae     MarineLife = "algae"
)

var MarineLifeSpecies = []MarineLife{
	MarineDolphins, MarineJellyFish, MarineUrchins, MarineSharks, MarineSeals, MarineAlgae,
}

// WetsuitThickness is advisory only: gear payloads carry it as free text and the
// gateway does not enforce membership.
type WetsuitThickness string

var WetsuitThicknesses = []WetsuitThickness{
	"shorts", "lycra_or_shirt", "2/2", "3/2", "3/3", "4/3", "5/4", "+5",
}

const (
	PerformanceRatingMin = 1
	PerformanceRatingMax = 10
)

type BreakType string

const (
	BreakPoint      BreakType = "point"
	BreakReef       BreakType = "reef"
	BreakBeach      BreakType = "beach"
	BreakRiverMouth BreakType = "river_mouth"
	BreakRiver      BreakType = "river"
	BreakLake       BreakType = "lake"
	BreakArtificial BreakType = "artificial"
)

var BreakTypes = []BreakType{
	BreakPoint, BreakReef, BreakBeach, BreakRiverMouth, BreakRiver, BreakLake, BreakArtificial,
}

type YearSeason string

const (
	SeasonWinter  YearSeason = "winter"
	SeasonSpring  YearSeason = "spring"
	SeasonSummer  YearSeason = "summer"
	SeasonAutumn  YearSeason = "autumn"
	SeasonAllYear YearSeason = "all_year"
)

var YearSeasons = []YearSeason{SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn, SeasonAllYear}

func member[T ~string](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func (v SessionType) Valid() bool     { return member(SessionTypes, v) }
func (v WaveHeight) Valid() bool      { return member(WaveHeights, v) }
func (v WaveFrequency) Valid() bool   { return member(WaveFrequencies, v) }
func (v WaveCharacter) Valid() bool   { return member(WaveCharacters, v) }
func (v WavePeeling) Valid() bool     { return member(WavePeelings, v) }
func (v WaveWallShape) Valid() bool   { return member(WaveWallShapes, v) }
func (v WavePeelSpeed) Valid() bool   { return member(WavePeelSpeeds, v) }
func (v WaveSteepness) Valid() bool   { return member(WaveSteepnesses, v) }
func (v WaveShallowness) Valid() bool { return member(WaveShallownesses, v) }
func (v TideMovement) Valid() bool    { return member(TideMovements, v) }
func (v CardinalPoint) Valid() bool   { return member(CardinalPoints, v) }
func (v WindConsistency) Valid() bool { return member(WindConsistencies, v) }
func (v WindStrength) Valid() bool    { return member(WindStrengths, v) }
func (v CurrentRip) Valid() bool      { return member(CurrentRips, v) }
func (v RockDanger) Valid() bool      { return member(RockDangers, v) }
func (v WaterQuality) Valid() bool    { return member(WaterQualities, v) }
func (v WaterSurface) Valid() bool    { return member(WaterSurfaces, v) }
func (v VibeInWater) Valid() bool     { return member(VibesInWater, v) }
func (v CrowdVolume) Valid() bool     { return member(CrowdVolumes, v) }
func (v CrowdSkillLevel) Valid() bool { return member(CrowdSkillLevels, v) }
func (v OverallFeeling) Valid() bool  { return member(OverallFeelings, v) }
func (v FacedChallenge) Valid() bool  { return member(FacedChallenges, v) }
func (v MarineLife) Valid() bool      { return member(MarineLifeSpecies, v) }
func (v BreakType) Valid() bool       { return member(BreakTypes, v) }
func (v YearSeason) Valid() bool      { return member(YearSeasons, v) }
