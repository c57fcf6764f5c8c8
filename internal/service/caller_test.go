package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmxd-server/internal/domain"
)

func genotypes(pairs map[string]string) map[string]domain.ObservedGenotype {
	out := make(map[string]domain.ObservedGenotype, len(pairs))
	for rsid, gt := range pairs {
		out[rsid] = domain.ObservedGenotype{RSID: rsid, Genotype: gt}
	}
	return out
}

func TestCallStarAlleles_CYP2C19(t *testing.T) {
	caller := NewCallerService(testLogger())

	tests := []struct {
		name      string
		input     map[string]string
		diplotype string
	}{
		{
			name:      "no variants defaults to reference",
			input:     map[string]string{},
			diplotype: "*1/*1",
		},
		{
			name:      "heterozygous star2",
			input:     map[string]string{"rs4244285": "AG"},
			diplotype: "*1/*2",
		},
		{
			name:      "homozygous star2",
			input:     map[string]string{"rs4244285": "AA"},
			diplotype: "*2/*2",
		},
		{
			name:      "compound het star2 star17",
			input:     map[string]string{"rs4244285": "AG", "rs12248560": "CT"},
			diplotype: "*17/*2",
		},
		{
			name:      "heterozygous star17 only",
			input:     map[string]string{"rs12248560": "CT"},
			diplotype: "*1/*17",
		},
		{
			name:      "homozygous star17",
			input:     map[string]string{"rs12248560": "TT"},
			diplotype: "*17/*17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, ok := caller.CallStarAlleles("CYP2C19", genotypes(tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.diplotype, call.Diplotype)
		})
	}
}

func TestCallStarAlleles_NoFunctionFillsSlotsFirst(t *testing.T) {
	caller := NewCallerService(testLogger())

	// CYP2D6 with a homozygous no-function *4 plus a heterozygous
	// decreased-function *10: the *4 copies must claim both slots, so the
	// *10 signal (which rides on the same haplotypes) is not double counted.
	call, ok := caller.CallStarAlleles("CYP2D6", genotypes(map[string]string{
		"rs3892097": "TT",
		"rs1065852": "CT",
	}))
	require.True(t, ok)
	assert.Equal(t, "*4/*4", call.Diplotype)
}

func TestCallStarAlleles_DeletionVariant(t *testing.T) {
	caller := NewCallerService(testLogger())

	call, ok := caller.CallStarAlleles("CYP2D6", genotypes(map[string]string{
		"rs5030655": "DI",
	}))
	require.True(t, ok)
	assert.Equal(t, "*1/*6", call.Diplotype)

	call, ok = caller.CallStarAlleles("CYP2D6", genotypes(map[string]string{
		"rs5030655": "DD",
	}))
	require.True(t, ok)
	assert.Equal(t, "*6/*6", call.Diplotype)
}

func TestCallStarAlleles_GenotypeOnlyGenes(t *testing.T) {
	caller := NewCallerService(testLogger())

	call, ok := caller.CallStarAlleles("VKORC1", genotypes(map[string]string{
		"rs9923231": "ag",
	}))
	require.True(t, ok)
	assert.Equal(t, "AG", call.Diplotype, "genotype-only calls are uppercased verbatim")

	// Missing SNP means no call at all, not a reference default.
	_, ok = caller.CallStarAlleles("SLCO1B1", genotypes(map[string]string{}))
	assert.False(t, ok)
}

func TestCallStarAlleles_CollapsedTPMT(t *testing.T) {
	caller := NewCallerService(testLogger())

	tests := []struct {
		name      string
		input     map[string]string
		diplotype string
	}{
		{"reference", map[string]string{}, "*1/*1"},
		{"single het marker", map[string]string{"rs1142345": "TC"}, "*1/*3"},
		{"homozygous marker", map[string]string{"rs1142345": "CC"}, "*3/*3"},
		{
			"compound het collapses to homozygous",
			map[string]string{"rs1800460": "CT", "rs1142345": "TC"},
			"*3/*3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, ok := caller.CallStarAlleles("TPMT", genotypes(tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.diplotype, call.Diplotype)
		})
	}
}

func TestCallStarAlleles_UnknownGene(t *testing.T) {
	caller := NewCallerService(testLogger())
	_, ok := caller.CallStarAlleles("CYP3A5", genotypes(nil))
	assert.False(t, ok)
}

func TestCallPhenotype(t *testing.T) {
	caller := NewCallerService(testLogger())

	tests := []struct {
		gene      string
		diplotype string
		key       domain.PhenotypeKey
	}{
		{"CYP2C19", "*1/*2", domain.INTERMEDIATE_METABOLIZER},
		{"CYP2C19", "*2/*1", domain.INTERMEDIATE_METABOLIZER}, // reversed ordering
		{"CYP2C19", "*17/*17", domain.ULTRARAPID_METABOLIZER},
		{"CYP2C19", "*2/*3", domain.POOR_METABOLIZER},
		{"CYP2D6", "*4/*4", domain.POOR_METABOLIZER},
		{"CYP2D6", "*10/*41", domain.INTERMEDIATE_METABOLIZER},
		{"CYP2C9", "*1/*3", domain.INTERMEDIATE_METABOLIZER},
		{"VKORC1", "AA", domain.HIGH_WARFARIN_SENSITIVITY},
		{"VKORC1", "GA", domain.MODERATE_WARFARIN_SENSITIVITY}, // reversed genotype
		{"SLCO1B1", "CC", domain.POOR_METABOLIZER},
		{"SLCO1B1", "TC", domain.INTERMEDIATE_METABOLIZER},
		{"TPMT", "*3/*3", domain.POOR_METABOLIZER},
		{"DPYD", "*1/c.2846A>T", domain.INTERMEDIATE_METABOLIZER},
		{"UGT1A1", "*80/*80", domain.POOR_METABOLIZER},
	}

	for _, tt := range tests {
		t.Run(tt.gene+" "+tt.diplotype, func(t *testing.T) {
			call := caller.CallPhenotype(tt.gene, tt.diplotype)
			assert.Equal(t, tt.key, call.Key)
			assert.False(t, call.Inferred)
		})
	}
}

func TestCallPhenotype_CaseInsensitive(t *testing.T) {
	caller := NewCallerService(testLogger())
	call := caller.CallPhenotype("VKORC1", "aa")
	assert.Equal(t, domain.HIGH_WARFARIN_SENSITIVITY, call.Key)
}

func TestCallPhenotype_InferredDefault(t *testing.T) {
	caller := NewCallerService(testLogger())

	call := caller.CallPhenotype("CYP2C19", "*9/*9")
	assert.Equal(t, domain.NORMAL_METABOLIZER, call.Key)
	assert.True(t, call.Inferred, "unmatched diplotypes default to inferred normal")
	assert.NotEmpty(t, call.Note)

	call = caller.CallPhenotype("NOT_A_GENE", "*1/*1")
	assert.Equal(t, domain.NORMAL_METABOLIZER, call.Key)
	assert.True(t, call.Inferred)
}

func TestBuildProfile(t *testing.T) {
	caller := NewCallerService(testLogger())

	profile := caller.BuildProfile(genotypes(map[string]string{
		"rs4244285": "AG", // CYP2C19 *1/*2
		"rs3892097": "TT", // CYP2D6 *4/*4
		"rs9923231": "AA", // VKORC1 high sensitivity
	}))

	// Star-allele genes always appear; reference-only inputs call *1/*1.
	require.Contains(t, profile, "CYP2C19")
	require.Contains(t, profile, "CYP2D6")
	require.Contains(t, profile, "CYP2C9")
	require.Contains(t, profile, "DPYD")
	require.Contains(t, profile, "TPMT")
	require.Contains(t, profile, "UGT1A1")

	assert.Equal(t, "*1/*2", profile["CYP2C19"].Diplotype)
	assert.Equal(t, domain.INTERMEDIATE_METABOLIZER, profile["CYP2C19"].Phenotype.Key)
	assert.Equal(t, "*4/*4", profile["CYP2D6"].Diplotype)
	assert.Equal(t, domain.POOR_METABOLIZER, profile["CYP2D6"].Phenotype.Key)

	assert.Equal(t, "*1/*1", profile["CYP2C9"].Diplotype)
	assert.Equal(t, domain.NORMAL_METABOLIZER, profile["CYP2C9"].Phenotype.Key)
	assert.False(t, profile["CYP2C9"].Phenotype.Inferred,
		"*1/*1 matches an explicit normal rule, not the inferred default")

	// Genotype-only genes without their SNP are absent, not defaulted.
	require.Contains(t, profile, "VKORC1")
	assert.Equal(t, domain.HIGH_WARFARIN_SENSITIVITY, profile["VKORC1"].Phenotype.Key)
	assert.NotContains(t, profile, "SLCO1B1")
}

func TestBuildProfile_OrderIndependence(t *testing.T) {
	caller := NewCallerService(testLogger())

	a := caller.BuildProfile(genotypes(map[string]string{
		"rs4244285": "GA", "rs12248560": "TC",
	}))
	b := caller.BuildProfile(genotypes(map[string]string{
		"rs12248560": "CT", "rs4244285": "AG",
	}))

	assert.Equal(t, a["CYP2C19"].Diplotype, b["CYP2C19"].Diplotype)
	assert.Equal(t, "*17/*2", a["CYP2C19"].Diplotype)
}
