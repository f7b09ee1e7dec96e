package models

import "time"

const (
	StepWelcome    = "welcome"
	StepAssessment = "assessment"
	StepDashboard  = "dashboard"
)

const (
	StagePreparing = "preparing"
	StageBetween   = "between"
	StageTransfer  = "transfer"
)

const (
	OutcomeNotYet             = "notYet"
	OutcomePoorFertilisation  = "poorFertilisation"
	OutcomeEarlyArrest        = "earlyArrest"
	OutcomeFewBlast           = "fewBlast"
	OutcomeFailedImplantation = "failedImplantation"
)

const (
	TabPlan      = "plan"
	TabToday     = "today"
	TabProgress  = "progress"
	TabAnswers   = "answers"
	TabJournal   = "journal"
	TabCommunity = "community"
)

const (
	CommentUnexplained = "unexplained"
	CommentNormal      = "normal"
	CommentEggQuality  = "eggQuality"
	CommentMaleFactor  = "maleFactor"
)

const (
	FactorEndometriosis = "endometriosis"
	FactorPCOS          = "pcos"
	FactorLowAMH        = "lowAmh"
	FactorAutoimmune    = "autoimmune"
	FactorThyroid       = "thyroid"
)

const (
	ApproachSupplements = "supplements"
	ApproachDiet        = "diet"
	ApproachEverything  = "everything"
	ApproachUnsure      = "unsure"
)

const (
	StressYes = "yes"
	StressNo  = "no"
)

const (
	SectionMin = 1
	SectionMax = 4
)

type PregnancyHistory struct {
	Chemical    bool `json:"chemical"`
	Miscarriage bool `json:"miscarriage"`
	LiveBirth   bool `json:"liveBirth"`
	None        bool `json:"none"`
}

type JournalEntry struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

type ProgressTracking struct {
	SupplementDays int `json:"supplementDays"`
	MeditationDays int `json:"meditationDays"`
	ExerciseDays   int `json:"exerciseDays"`
}

// AssessmentRecord holds every answer a user has given. Age and Cycles stay
// free-form numeric strings ("" means unanswered) so the persisted layout
// round-trips records written by earlier clients.
type AssessmentRecord struct {
	Age              string           `json:"age"`
	Cycles           string           `json:"cycles"`
	Stage            string           `json:"stage"`
	EmbryoOutcome    string           `json:"embryoOutcome"`
	Pregnancies      PregnancyHistory `json:"pregnancies"`
	DoctorComments   []string         `json:"doctorComments"`
	KnownFactors     []string         `json:"knownFactors"`
	HighStress       string           `json:"highStress"`
	CurrentApproach  []string         `json:"currentApproach"`
	BiggestFear      string           `json:"biggestFear"`
	JournalEntries   []JournalEntry   `json:"journalEntries"`
	ProgressTracking ProgressTracking `json:"progressTracking"`
}

// JourneySnapshot is the complete persisted state for one identity. The JSON
// field names are the storage contract and must not change.
type JourneySnapshot struct {
	Data        AssessmentRecord `json:"data"`
	Step        string           `json:"step"`
	Section     int              `json:"section"`
	ActiveTab   string           `json:"activeTab"`
	LastUpdated string           `json:"lastUpdated"`
}

func DefaultAssessmentRecord() AssessmentRecord {
	return AssessmentRecord{
		DoctorComments:  []string{},
		KnownFactors:    []string{},
		CurrentApproach: []string{},
		JournalEntries:  []JournalEntry{},
	}
}

func DefaultSnapshot() JourneySnapshot {
	return JourneySnapshot{
		Data:      DefaultAssessmentRecord(),
		Step:      StepWelcome,
		Section:   SectionMin,
		ActiveTab: TabPlan,
	}
}

// Journey is the storage row for one identity: the normalized email is the
// partition key, the payload is the serialized JourneySnapshot.
type Journey struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Payload   string `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
