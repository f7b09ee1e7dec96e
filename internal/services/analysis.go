package services

import "github.com/terraincognita07/nido/internal/models"

// Analysis is the derived action plan for one assessment record.
type Analysis struct {
	Bottleneck       string   `json:"bottleneck"`
	Priorities       []string `json:"priorities"`
	SecondaryFactors []string `json:"secondaryFactors"`
	Guidance         string   `json:"guidance"`
}

type outcomePlan struct {
	bottleneck string
	priorities [3]string
}

var outcomePlans = map[string]outcomePlan{
	models.OutcomeNotYet: {
		bottleneck: "You are preparing for your first IVF cycle - this is the perfect time to optimize. The next 90-120 days of preparation can significantly impact your egg and sperm quality.",
		priorities: [3]string{
			"Start comprehensive supplement protocol for both partners now",
			"Establish healthy foundations: sleep 7-8 hours, Mediterranean diet, daily movement",
			"Begin stress management practices - they will serve you throughout this journey",
		},
	},
	models.OutcomePoorFertilisation: {
		bottleneck: "Fertilization quality - eggs and sperm meeting but not creating viable embryos efficiently",
		priorities: [3]string{
			"Oxidative stress reduction for both partners",
			"Mediterranean fertility diet",
			"Partner sperm DNA protocol",
		},
	},
	models.OutcomeEarlyArrest: {
		bottleneck: "Early development - embryos stopping before blastocyst",
		priorities: [3]string{
			"Mitochondrial support: CoQ10, L-carnitine",
			"7-8 hours quality sleep",
			"Reduce inflammation",
		},
	},
	models.OutcomeFewBlast: {
		bottleneck: "Blastocyst conversion - few embryos reach day 5 or 6",
		priorities: [3]string{
			"Full antioxidant protocol 90 days",
			"Discuss time-lapse incubation",
			"Anti-inflammatory focus",
		},
	},
	models.OutcomeFailedImplantation: {
		bottleneck: "Implantation - good blasts not sticking",
		priorities: [3]string{
			"Uterine support: Vitamin E, omega-3s",
			"Discuss testing with doctor",
			"Stress management",
		},
	},
}

const (
	guidancePreparingFirstCycle = "You have 90-120 days to optimize before your first cycle. This is ideal timing! Focus on building strong foundations now."
	guidancePreparingRepeat     = "90-120 days pre-cycle is ideal. Build foundations: supplements, diet, sleep, stress."
	guidanceBetweenCycles       = "Use this time wisely. Start protocol now for best next cycle."
	guidanceBeforeTransfer      = "Focus on uterine environment. Stop CoQ10, Vit E day before."

	noteEndometriosis = "Endo inflammation affects egg quality"
	notePCOS          = "PCOS impacts egg maturation"
)

// Analyze derives the plan from the answers. It is pure and total: an unset
// or unknown outcome yields empty bottleneck and priorities instead of
// failing, even though the completion gate keeps that case off the dashboard.
func Analyze(record models.AssessmentRecord) Analysis {
	analysis := Analysis{
		Priorities:       []string{},
		SecondaryFactors: []string{},
	}

	if plan, known := outcomePlans[record.EmbryoOutcome]; known {
		analysis.Bottleneck = plan.bottleneck
		analysis.Priorities = plan.priorities[:]
	}

	if HasKnownFactor(record, models.FactorEndometriosis) {
		analysis.SecondaryFactors = append(analysis.SecondaryFactors, noteEndometriosis)
	}
	if HasKnownFactor(record, models.FactorPCOS) {
		analysis.SecondaryFactors = append(analysis.SecondaryFactors, notePCOS)
	}

	// Stage drives guidance; the embryo outcome only refines the preparing
	// branch.
	switch record.Stage {
	case models.StagePreparing:
		if record.EmbryoOutcome == models.OutcomeNotYet {
			analysis.Guidance = guidancePreparingFirstCycle
		} else {
			analysis.Guidance = guidancePreparingRepeat
		}
	case models.StageBetween:
		analysis.Guidance = guidanceBetweenCycles
	case models.StageTransfer:
		analysis.Guidance = guidanceBeforeTransfer
	}

	return analysis
}
