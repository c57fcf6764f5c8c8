// Package domain contains core business entities and types for pharmacogenomic
// (PGx) genotype interpretation and CPIC-style drug-dosing guidance.
//
// Reference: Relling & Klein (2011) CPIC: Clinical Pharmacogenetics
// Implementation Consortium of the Pharmacogenomics Research Network.
// Clin Pharmacol Ther. 89(3):464-7. doi: 10.1038/clpt.2010.279
package domain

import "errors"

// FormatTag identifies the raw genotype file format detected by the extractor.
type FormatTag string

const (
	FORMAT_23ANDME  FormatTag = "23andme"
	FORMAT_ANCESTRY FormatTag = "ancestrydna"
	FORMAT_GENERIC  FormatTag = "generic"
	FORMAT_UNKNOWN  FormatTag = "unknown"
)

// FunctionalEffect represents the functional consequence of a tracked variant
// on the enzyme or transporter encoded by its gene.
type FunctionalEffect string

const (
	NO_FUNCTION        FunctionalEffect = "no_function"
	DECREASED_FUNCTION FunctionalEffect = "decreased_function"
	NORMAL_FUNCTION    FunctionalEffect = "normal_function"
	INCREASED_FUNCTION FunctionalEffect = "increased_function"
	TAG_VARIANT        FunctionalEffect = "tag_variant"
)

// Classification represents the clinical severity of a dosing recommendation.
// These categories drive how prominently a recommendation is surfaced:
// standard therapy, use with caution, or avoid the drug entirely.
type Classification string

const (
	STANDARD Classification = "standard"
	CAUTION  Classification = "caution"
	AVOID    Classification = "avoid"
)

// ActivityLevel represents the overall enzyme/transporter activity implied by
// a metabolizer phenotype.
type ActivityLevel string

const (
	ACTIVITY_NONE      ActivityLevel = "none"
	ACTIVITY_LOW       ActivityLevel = "low"
	ACTIVITY_DECREASED ActivityLevel = "decreased"
	ACTIVITY_NORMAL    ActivityLevel = "normal"
	ACTIVITY_INCREASED ActivityLevel = "increased"
)

// PhenotypeKey identifies a metabolizer phenotype category. Most genes use the
// standard metabolizer vocabulary; transporter genes use function tiers and the
// warfarin-target gene uses sensitivity tiers.
type PhenotypeKey string

const (
	POOR_METABOLIZER         PhenotypeKey = "poor_metabolizer"
	INTERMEDIATE_METABOLIZER PhenotypeKey = "intermediate_metabolizer"
	NORMAL_METABOLIZER       PhenotypeKey = "normal_metabolizer"
	ULTRARAPID_METABOLIZER   PhenotypeKey = "ultrarapid_metabolizer"

	// Transporter-function vocabulary (SLCO1B1 guidelines).
	NORMAL_FUNCTION_KEY       PhenotypeKey = "normal_function"
	INTERMEDIATE_FUNCTION_KEY PhenotypeKey = "intermediate_function"
	POOR_FUNCTION_KEY         PhenotypeKey = "poor_function"

	// Warfarin-target sensitivity vocabulary (VKORC1).
	LOW_WARFARIN_SENSITIVITY      PhenotypeKey = "low_warfarin_sensitivity"
	MODERATE_WARFARIN_SENSITIVITY PhenotypeKey = "moderate_warfarin_sensitivity"
	HIGH_WARFARIN_SENSITIVITY     PhenotypeKey = "high_warfarin_sensitivity"
)

// DoseTier represents the severity tier of a multi-gene dosing decision.
// Tiers only ever escalate; combination logic never downgrades a tier.
type DoseTier string

const (
	TIER_STANDARD              DoseTier = "standard"
	TIER_REDUCED               DoseTier = "reduced_dose"
	TIER_SIGNIFICANTLY_REDUCED DoseTier = "significantly_reduced"
)

// Validation errors for catalog and result integrity
var (
	ErrInvalidFormatTag      = errors.New("invalid raw file format tag")
	ErrInvalidEffect         = errors.New("invalid functional effect")
	ErrInvalidClassification = errors.New("invalid recommendation classification")
	ErrInvalidActivityLevel  = errors.New("invalid activity level")
)

// IsValid validates the format tag.
func (f FormatTag) IsValid() bool {
	switch f {
	case FORMAT_23ANDME, FORMAT_ANCESTRY, FORMAT_GENERIC, FORMAT_UNKNOWN:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format tag.
func (f FormatTag) String() string {
	return string(f)
}

// IsValid validates the functional effect against the closed effect set.
func (fe FunctionalEffect) IsValid() bool {
	switch fe {
	case NO_FUNCTION, DECREASED_FUNCTION, NORMAL_FUNCTION, INCREASED_FUNCTION, TAG_VARIANT:
		return true
	default:
		return false
	}
}

// String returns the string representation of the functional effect.
func (fe FunctionalEffect) String() string {
	return string(fe)
}

// Priority returns the slot-filling priority of the effect when ordering
// detected variants for diplotype construction. No-function variants always
// sort ahead of every other effect class; ties keep detection order.
func (fe FunctionalEffect) Priority() int {
	if fe == NO_FUNCTION {
		return 0
	}
	return 1
}

// IsValid validates the classification.
// Only valid classifications may be surfaced in clinical guidance.
func (c Classification) IsValid() bool {
	switch c {
	case STANDARD, CAUTION, AVOID:
		return true
	default:
		return false
	}
}

// String returns the string representation of the classification.
func (c Classification) String() string {
	return string(c)
}

// RequiresClinicalAttention determines if the classification warrants
// clinician review before prescribing. Conservative for unknown values.
func (c Classification) RequiresClinicalAttention() bool {
	switch c {
	case STANDARD:
		return false
	case CAUTION, AVOID:
		return true
	default:
		return true
	}
}

// LogFields returns structured logging fields for audit trails.
// Dosing guidance is clinically sensitive; every surfaced classification
// is logged with these fields for traceability.
func (c Classification) LogFields() map[string]any {
	return map[string]any{
		"classification":      string(c),
		"is_valid":            c.IsValid(),
		"requires_attention":  c.RequiresClinicalAttention(),
		"classification_rank": c.rank(),
	}
}

// rank orders classifications by severity for logging and display.
func (c Classification) rank() int {
	switch c {
	case STANDARD:
		return 0
	case CAUTION:
		return 1
	case AVOID:
		return 2
	default:
		return -1
	}
}

// IsValid validates the activity level.
func (a ActivityLevel) IsValid() bool {
	switch a {
	case ACTIVITY_NONE, ACTIVITY_LOW, ACTIVITY_DECREASED, ACTIVITY_NORMAL, ACTIVITY_INCREASED:
		return true
	default:
		return false
	}
}

// String returns the string representation of the activity level.
func (a ActivityLevel) String() string {
	return string(a)
}

// String returns the string representation of the phenotype key.
func (p PhenotypeKey) String() string {
	return string(p)
}

// String returns the string representation of the dose tier.
func (t DoseTier) String() string {
	return string(t)
}

// rank orders dose tiers by severity. Used by Escalate.
func (t DoseTier) rank() int {
	switch t {
	case TIER_STANDARD:
		return 0
	case TIER_REDUCED:
		return 1
	case TIER_SIGNIFICANTLY_REDUCED:
		return 2
	default:
		return -1
	}
}

// Escalate returns the more severe of the two tiers. Multi-gene combination
// rules are escalation-only: a tier already raised by one gene's contribution
// is never lowered by another's.
func (t DoseTier) Escalate(other DoseTier) DoseTier {
	if other.rank() > t.rank() {
		return other
	}
	return t
}
