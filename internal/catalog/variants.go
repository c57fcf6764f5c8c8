// Package catalog holds the static reference data driving the PGx pipeline:
// the tracked SNP panel, the per-gene allele and phenotype rule tables and
// the CPIC-style drug guideline table. All catalog data is defined at process
// start and never mutated.
package catalog

import "github.com/pharmxd-server/internal/domain"

// trackedVariants is the fixed pharmacogene SNP panel. The panel covers the
// consumer-array-detectable markers of eight core genes; gene duplications
// (e.g. CYP2D6 ultrarapid copy-number alleles) are not detectable from
// array-format input and are deliberately absent.
var trackedVariants = []domain.TrackedVariant{
	// CYP2C19 (clopidogrel, PPIs, SSRIs)
	{RSID: "rs4244285", Gene: "CYP2C19", StarAllele: "*2", Effect: domain.NO_FUNCTION, Chromosome: "10", Position: 94781859},
	{RSID: "rs4986893", Gene: "CYP2C19", StarAllele: "*3", Effect: domain.NO_FUNCTION, Chromosome: "10", Position: 94780653},
	{RSID: "rs28399504", Gene: "CYP2C19", StarAllele: "*4", Effect: domain.NO_FUNCTION, Chromosome: "10", Position: 94762706},
	{RSID: "rs12248560", Gene: "CYP2C19", StarAllele: "*17", Effect: domain.INCREASED_FUNCTION, Chromosome: "10", Position: 94761900},

	// CYP2D6 (codeine, tramadol, tricyclics)
	{RSID: "rs3892097", Gene: "CYP2D6", StarAllele: "*4", Effect: domain.NO_FUNCTION, Chromosome: "22", Position: 42128945},
	{RSID: "rs5030655", Gene: "CYP2D6", StarAllele: "*6", Effect: domain.NO_FUNCTION, Chromosome: "22", Position: 42129084},
	{RSID: "rs1065852", Gene: "CYP2D6", StarAllele: "*10", Effect: domain.DECREASED_FUNCTION, Chromosome: "22", Position: 42130692},
	{RSID: "rs28371725", Gene: "CYP2D6", StarAllele: "*41", Effect: domain.DECREASED_FUNCTION, Chromosome: "22", Position: 42127941},

	// CYP2C9 (warfarin, phenytoin, celecoxib)
	{RSID: "rs1799853", Gene: "CYP2C9", StarAllele: "*2", Effect: domain.DECREASED_FUNCTION, Chromosome: "10", Position: 94942290},
	{RSID: "rs1057910", Gene: "CYP2C9", StarAllele: "*3", Effect: domain.DECREASED_FUNCTION, Chromosome: "10", Position: 94981296},

	// VKORC1 (warfarin target; genotype-only)
	{RSID: "rs9923231", Gene: "VKORC1", StarAllele: "-1639G>A", Effect: domain.DECREASED_FUNCTION, Chromosome: "16", Position: 31096368},

	// SLCO1B1 (statin transporter; genotype-only)
	{RSID: "rs4149056", Gene: "SLCO1B1", StarAllele: "*5", Effect: domain.DECREASED_FUNCTION, Chromosome: "12", Position: 21178615},

	// DPYD (fluoropyrimidines)
	{RSID: "rs3918290", Gene: "DPYD", StarAllele: "*2A", Effect: domain.NO_FUNCTION, Chromosome: "1", Position: 97450058},
	{RSID: "rs55886062", Gene: "DPYD", StarAllele: "*13", Effect: domain.NO_FUNCTION, Chromosome: "1", Position: 97515865},
	{RSID: "rs67376798", Gene: "DPYD", StarAllele: "c.2846A>T", Effect: domain.DECREASED_FUNCTION, Chromosome: "1", Position: 97305364},

	// TPMT (thiopurines)
	{RSID: "rs1800462", Gene: "TPMT", StarAllele: "*2", Effect: domain.NO_FUNCTION, Chromosome: "6", Position: 18143724},
	{RSID: "rs1800460", Gene: "TPMT", StarAllele: "*3B", Effect: domain.NO_FUNCTION, Chromosome: "6", Position: 18139228},
	{RSID: "rs1142345", Gene: "TPMT", StarAllele: "*3C", Effect: domain.NO_FUNCTION, Chromosome: "6", Position: 18130918},

	// UGT1A1 (irinotecan, atazanavir). rs887829 tags the *28 TA-repeat,
	// which arrays cannot genotype directly.
	{RSID: "rs887829", Gene: "UGT1A1", StarAllele: "*80", Effect: domain.TAG_VARIANT, Chromosome: "2", Position: 233757013},
}

// variantsByRSID is built once at init from trackedVariants.
var variantsByRSID map[string]domain.TrackedVariant

func init() {
	variantsByRSID = make(map[string]domain.TrackedVariant, len(trackedVariants))
	for _, tv := range trackedVariants {
		variantsByRSID[tv.RSID] = tv
	}
}

// TrackedVariants returns the full SNP panel in catalog order.
func TrackedVariants() []domain.TrackedVariant {
	out := make([]domain.TrackedVariant, len(trackedVariants))
	copy(out, trackedVariants)
	return out
}

// VariantsByRSID returns the panel keyed by reference-SNP identifier.
// The returned map is shared and must not be mutated.
func VariantsByRSID() map[string]domain.TrackedVariant {
	return variantsByRSID
}

// IsTracked reports whether an rsid belongs to the panel.
func IsTracked(rsid string) bool {
	_, ok := variantsByRSID[rsid]
	return ok
}
