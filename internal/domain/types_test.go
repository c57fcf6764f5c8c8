package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTagIsValid(t *testing.T) {
	assert.True(t, FORMAT_23ANDME.IsValid())
	assert.True(t, FORMAT_ANCESTRY.IsValid())
	assert.True(t, FORMAT_GENERIC.IsValid())
	assert.True(t, FORMAT_UNKNOWN.IsValid())
	assert.False(t, FormatTag("vcf").IsValid())
}

func TestFunctionalEffectPriority(t *testing.T) {
	assert.Equal(t, 0, NO_FUNCTION.Priority())
	assert.Equal(t, 1, DECREASED_FUNCTION.Priority())
	assert.Equal(t, 1, INCREASED_FUNCTION.Priority())
	assert.Equal(t, 1, TAG_VARIANT.Priority())
}

func TestClassification(t *testing.T) {
	assert.True(t, STANDARD.IsValid())
	assert.True(t, CAUTION.IsValid())
	assert.True(t, AVOID.IsValid())
	assert.False(t, Classification("unknown").IsValid())

	assert.False(t, STANDARD.RequiresClinicalAttention())
	assert.True(t, CAUTION.RequiresClinicalAttention())
	assert.True(t, AVOID.RequiresClinicalAttention())
	assert.True(t, Classification("garbage").RequiresClinicalAttention(),
		"unknown classifications are treated conservatively")

	fields := AVOID.LogFields()
	assert.Equal(t, "avoid", fields["classification"])
	assert.Equal(t, 2, fields["classification_rank"])
}

func TestDoseTierEscalate(t *testing.T) {
	assert.Equal(t, TIER_REDUCED, TIER_STANDARD.Escalate(TIER_REDUCED))
	assert.Equal(t, TIER_REDUCED, TIER_REDUCED.Escalate(TIER_STANDARD),
		"escalation never downgrades")
	assert.Equal(t, TIER_SIGNIFICANTLY_REDUCED, TIER_REDUCED.Escalate(TIER_SIGNIFICANTLY_REDUCED))
	assert.Equal(t, TIER_SIGNIFICANTLY_REDUCED, TIER_SIGNIFICANTLY_REDUCED.Escalate(TIER_STANDARD))
}

func TestTrackedVariantValidate(t *testing.T) {
	valid := TrackedVariant{RSID: "rs12345", Gene: "CYP2C19", Effect: NO_FUNCTION}
	assert.NoError(t, valid.Validate())

	noPrefix := TrackedVariant{RSID: "12345", Gene: "CYP2C19", Effect: NO_FUNCTION}
	assert.Error(t, noPrefix.Validate())

	noGene := TrackedVariant{RSID: "rs12345", Effect: NO_FUNCTION}
	assert.Error(t, noGene.Validate())

	badEffect := TrackedVariant{RSID: "rs12345", Gene: "CYP2C19", Effect: FunctionalEffect("bogus")}
	assert.ErrorIs(t, badEffect.Validate(), ErrInvalidEffect)
}

func TestGuidelineEntryValidate(t *testing.T) {
	valid := GuidelineEntry{
		DrugID: "drug",
		Genes:  []string{"CYP2C19"},
		Recommendations: map[PhenotypeKey]Recommendation{
			NORMAL_METABOLIZER: {Text: "standard", Classification: STANDARD},
		},
	}
	assert.NoError(t, valid.Validate())

	badClass := valid
	badClass.Recommendations = map[PhenotypeKey]Recommendation{
		NORMAL_METABOLIZER: {Text: "x", Classification: Classification("bad")},
	}
	assert.ErrorIs(t, badClass.Validate(), ErrInvalidClassification)

	noGenes := valid
	noGenes.Genes = nil
	assert.Error(t, noGenes.Validate())
}

func TestGuidelineEntryGeneLabel(t *testing.T) {
	single := GuidelineEntry{Genes: []string{"CYP2C19"}}
	assert.Equal(t, "CYP2C19", single.GeneLabel())
	assert.False(t, single.MultiGene())

	multi := GuidelineEntry{Genes: []string{"CYP2C9", "VKORC1"}}
	assert.Equal(t, "CYP2C9 + VKORC1", multi.GeneLabel())
	assert.True(t, multi.MultiGene())
}

func TestGeneProfileGenes(t *testing.T) {
	profile := GeneProfile{
		"TPMT":    &GeneCall{Gene: "TPMT"},
		"CYP2C19": &GeneCall{Gene: "CYP2C19"},
		"DPYD":    &GeneCall{Gene: "DPYD"},
	}
	assert.Equal(t, []string{"CYP2C19", "DPYD", "TPMT"}, profile.Genes())
	assert.Empty(t, GeneProfile{}.Genes())
}
