package services

import "github.com/terraincognita07/nido/internal/models"

// SupplementID is the stable identity a protocol entry is deduplicated by.
// Renaming a supplement's display name must not change its ID.
type SupplementID string

const (
	SupplementMultivitamin     SupplementID = "multivitamin"
	SupplementCoQ10            SupplementID = "coq10"
	SupplementVitaminC         SupplementID = "vitamin_c"
	SupplementFishOilDHA       SupplementID = "fish_oil_dha"
	SupplementVitaminD         SupplementID = "vitamin_d"
	SupplementRAlphaLipoicAcid SupplementID = "r_alpha_lipoic_acid"
	SupplementLCarnitine       SupplementID = "l_carnitine"
	SupplementPrenatalFolate   SupplementID = "prenatal_methylfolate"
	SupplementMyoInositol      SupplementID = "myo_inositol"
	SupplementNAcetylcysteine  SupplementID = "n_acetylcysteine"
	SupplementVitaminE         SupplementID = "vitamin_e"
)

const (
	StopContinue           = "Continue"
	StopDayBeforeTransfer  = "Day before transfer"
	StopDayBeforeRetrieval = "Day before retrieval"
)

type Supplement struct {
	ID   SupplementID `json:"id"`
	Name string       `json:"name"`
	Why  string       `json:"why"`
	Stop string       `json:"stopRule,omitempty"`
}

// Protocol holds the generated supplement lists for both partners.
type Protocol struct {
	ForPartnerA []Supplement `json:"forPartnerA"`
	ForPartnerB []Supplement `json:"forPartnerB"`
}

func partnerAProtocol() []Supplement {
	return []Supplement{
		{ID: SupplementMultivitamin, Name: "Daily Multivitamin with methylfolate", Why: "Fills nutritional gaps and supports sperm health"},
		{ID: SupplementCoQ10, Name: "CoQ10 400mg", Why: "Improves sperm energy and motility"},
		{ID: SupplementVitaminC, Name: "Vitamin C 500mg", Why: "Protects sperm from damage"},
		{ID: SupplementFishOilDHA, Name: "Fish oil DHA 900mg", Why: "Supports sperm membrane health"},
		{ID: SupplementVitaminD, Name: "Vitamin D 4000IU", Why: "Improves testosterone and sperm quality"},
		{ID: SupplementRAlphaLipoicAcid, Name: "R-alpha lipoic acid 200-300mg", Why: "Antioxidant for sperm DNA protection"},
		{ID: SupplementLCarnitine, Name: "L-carnitine 1000mg", Why: "Provides energy for sperm motility"},
	}
}

func partnerBBaseProtocol() []Supplement {
	return []Supplement{
		{ID: SupplementPrenatalFolate, Name: "Prenatal with 800mcg methylfolate", Stop: StopContinue, Why: "Essential for egg quality and pregnancy"},
		{ID: SupplementCoQ10, Name: "CoQ10 400mg", Stop: StopDayBeforeTransfer, Why: "Boosts egg energy and quality"},
		{ID: SupplementVitaminC, Name: "Vitamin C 500mg", Stop: StopDayBeforeRetrieval, Why: "Protects eggs from stress"},
		{ID: SupplementVitaminD, Name: "Vitamin D 4000IU", Stop: StopContinue, Why: "Improves egg quality and implantation"},
	}
}

// GenerateSupplements builds the protocol for the record. Partner A is
// answer-independent; partner B starts from the base list and appends
// conditional entries in a fixed order: PCOS, endometriosis, miscarriage
// history, embryo outcome. Conditional appends that could repeat an already
// listed compound are skipped by ID.
func GenerateSupplements(record models.AssessmentRecord) Protocol {
	partnerB := partnerBBaseProtocol()

	if HasKnownFactor(record, models.FactorPCOS) {
		partnerB = append(partnerB,
			Supplement{ID: SupplementMyoInositol, Name: "Myo-inositol 4mg", Stop: StopDayBeforeRetrieval, Why: "Improves egg quality in PCOS"},
			Supplement{ID: SupplementNAcetylcysteine, Name: "N-acetylcysteine 600mg", Stop: StopDayBeforeRetrieval, Why: "Reduces inflammation"},
		)
	}

	if HasKnownFactor(record, models.FactorEndometriosis) && !protocolContains(partnerB, SupplementRAlphaLipoicAcid) {
		partnerB = append(partnerB,
			Supplement{ID: SupplementRAlphaLipoicAcid, Name: "R-alpha lipoic acid 200mg", Stop: StopDayBeforeRetrieval, Why: "Reduces inflammation"},
		)
	}

	if record.Pregnancies.Miscarriage {
		partnerB = append(partnerB,
			Supplement{ID: SupplementVitaminE, Name: "Vitamin E 200IU", Stop: StopDayBeforeTransfer, Why: "Supports implantation"},
		)
	}

	if outcomeSuggestsCarnitine(record.EmbryoOutcome) && !protocolContains(partnerB, SupplementLCarnitine) {
		partnerB = append(partnerB,
			Supplement{ID: SupplementLCarnitine, Name: "L-carnitine 3mg", Stop: StopDayBeforeRetrieval, Why: "Boosts egg energy"},
		)
	}

	return Protocol{
		ForPartnerA: partnerAProtocol(),
		ForPartnerB: partnerB,
	}
}

func outcomeSuggestsCarnitine(outcome string) bool {
	switch outcome {
	case models.OutcomePoorFertilisation, models.OutcomeEarlyArrest, models.OutcomeFewBlast:
		return true
	default:
		return false
	}
}

func protocolContains(entries []Supplement, id SupplementID) bool {
	for _, entry := range entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}
