package catalog

import "github.com/pharmxd-server/internal/domain"

// DeletionToken marks a variant whose alternate allele is a deletion rather
// than a literal base. Arrays report deleted copies with a "D" character
// ("DD" homozygous, "DI" heterozygous), so copy counting matches on 'D'.
const DeletionToken = "DEL"

// VariantRule defines how one tracked SNP maps to a star allele for diplotype
// calling: which base (or the deletion sentinel) counts as the alternate
// allele, and what the allele's functional effect is.
type VariantRule struct {
	RSID       string
	StarAllele string
	AltToken   string
	Effect     domain.FunctionalEffect
}

// PhenotypeRule maps a set of diplotype strings to one phenotype category.
// Conditions are stored order-normalized (lexicographically sorted pair) but
// the caller accepts either ordering. Condition sets across a gene's rules
// are mutually exclusive; first match wins.
type PhenotypeRule struct {
	Key         domain.PhenotypeKey
	Diplotypes  []string
	Description string
	Activity    domain.ActivityLevel
}

// GeneRules bundles everything the caller needs for one gene.
//
// GenotypeOnly genes carry their phenotype directly on the diploid genotype
// of a single tracked SNP; no star-allele inference is performed.
//
// Collapsed genes use a simplified binary scheme: any detected no-function
// marker collapses into one allele label (CollapsedAllele) opposite the
// reference. Used for genes with too few array-detectable markers to justify
// full allele-pair construction.
type GeneRules struct {
	Gene            string
	ReferenceAllele string
	GenotypeOnly    bool
	Collapsed       bool
	CollapsedAllele string
	Variants        []VariantRule
	Phenotypes      []PhenotypeRule
}

// geneRules is ordered; profile construction iterates genes in this order.
var geneRules = []GeneRules{
	{
		Gene:            "CYP2C19",
		ReferenceAllele: "*1",
		Variants: []VariantRule{
			{RSID: "rs4244285", StarAllele: "*2", AltToken: "A", Effect: domain.NO_FUNCTION},
			{RSID: "rs4986893", StarAllele: "*3", AltToken: "A", Effect: domain.NO_FUNCTION},
			{RSID: "rs28399504", StarAllele: "*4", AltToken: "G", Effect: domain.NO_FUNCTION},
			{RSID: "rs12248560", StarAllele: "*17", AltToken: "T", Effect: domain.INCREASED_FUNCTION},
		},
		Phenotypes: []PhenotypeRule{
			{
				Key:         domain.ULTRARAPID_METABOLIZER,
				Diplotypes:  []string{"*1/*17", "*17/*17"},
				Description: "Ultrarapid metabolizer",
				Activity:    domain.ACTIVITY_INCREASED,
			},
			{
				Key:         domain.NORMAL_METABOLIZER,
				Diplotypes:  []string{"*1/*1"},
				Description: "Normal metabolizer",
				Activity:    domain.ACTIVITY_NORMAL,
			},
			{
				Key:         domain.INTERMEDIATE_METABOLIZER,
				Diplotypes:  []string{"*1/*2", "*1/*3", "*1/*4", "*17/*2", "*17/*3", "*17/*4"},
				Description: "Intermediate metabolizer",
				Activity:    domain.ACTIVITY_DECREASED,
			},
			{
				Key:         domain.POOR_METABOLIZER,
				Diplotypes:  []string{"*2/*2", "*2/*3", "*2/*4", "*3/*3", "*3/*4", "*4/*4"},
				Description: "Poor metabolizer",
				Activity:    domain.ACTIVITY_LOW,
			},
		},
	},
	{
		Gene:            "CYP2D6",
		ReferenceAllele: "*1",
		Variants: []VariantRule{
			{RSID: "rs3892097", StarAllele: "*4", AltToken: "T", Effect: domain.NO_FUNCTION},
			{RSID: "rs5030655", StarAllele: "*6", AltToken: DeletionToken, Effect: domain.NO_FUNCTION},
			{RSID: "rs1065852", StarAllele: "*10", AltToken: "T", Effect: domain.DECREASED_FUNCTION},
			{RSID: "rs28371725", StarAllele: "*41", AltToken: "T", Effect: domain.DECREASED_FUNCTION},
		},
		Phenotypes: []PhenotypeRule{
			{
				Key:         domain.NORMAL_METABOLIZER,
				Diplotypes:  []string{"*1/*1"},
				Description: "Normal metabolizer",
				Activity:    domain.ACTIVITY_NORMAL,
			},
			{
				Key: domain.INTERMEDIATE_METABOLIZER,
				Diplotypes: []string{
					"*1/*4", "*1/*6", "*1/*10", "*1/*41",
					"*10/*10", "*10/*41", "*41/*41",
					"*10/*4", "*10/*6", "*4/*41", "*41/*6",
				},
				Description: "Intermediate metabolizer",
				Activity:    domain.ACTIVITY_DECREASED,
			},
			{
				Key:         domain.POOR_METABOLIZER,
				Diplotypes:  []string{"*4/*4", "*4/*6", "*6/*6"},
				Description: "Poor metabolizer",
				Activity:    domain.ACTIVITY_LOW,
			},
		},
	},
	{
		Gene:            "CYP2C9",
		ReferenceAllele: "*1",
		Variants: []VariantRule{
			{RSID: "rs1799853", StarAllele: "*2", AltToken: "T", Effect: domain.DECREASED_FUNCTION},
			{RSID: "rs1057910", StarAllele: "*3", AltToken: "C", Effect: domain.DECREASED_FUNCTION},
		},
		Phenotypes: []PhenotypeRule{
			{
				Key:         domain.NORMAL_METABOLIZER,
				Diplotypes:  []string{"*1/*1"},
				Description: "Normal metabolizer",
				Activity:    domain.ACTIVITY_NORMAL,
			},
			{
				Key:         domain.INTERMEDIATE_METABOLIZER,
				Diplotypes:  []string{"*1/*2", "*1/*3"},
				Description: "Intermediate metabolizer",
				Activity:    domain.ACTIVITY_DECREASED,
			},
			{
				Key:         domain.POOR_METABOLIZER,
				Diplotypes:  []string{"*2/*2", "*2/*3", "*3/*3"},
				Description: "Poor metabolizer",
				Activity:    domain.ACTIVITY_LOW,
			},
		},
	},
	{
		Gene:            "VKORC1",
		ReferenceAllele: "G",
		GenotypeOnly:    true,
		Variants: []VariantRule{
			{RSID: "rs9923231", StarAllele: "-1639G>A", AltToken: "A", Effect: domain.DECREASED_FUNCTION},
		},
		Phenotypes: []PhenotypeRule{
			{
				Key:         domain.LOW_WARFARIN_SENSITIVITY,
				Diplotypes:  []string{"GG"},
				Description: "Low warfarin sensitivity (normal VKORC1 expression)",
				Activity:    domain.ACTIVITY_NORMAL,
			},
			{
				Key:         domain.MODERATE_WARFARIN_SENSITIVITY,
				Diplotypes:  []string{"AG"},
				Description: "Moderate warfarin sensitivity (reduced VKORC1 expression)",
				Activity:    domain.ACTIVITY_DECREASED,
			},
			{
				Key:         domain.HIGH_WARFARIN_SENSITIVITY,
				Diplotypes:  []string{"AA"},
				Description: "High warfarin sensitivity (low VKORC1 expression)",
				Activity:    domain.ACTIVITY_LOW,
			},
		},
	},
	{
		Gene:            "SLCO1B1",
		ReferenceAllele: "T",
		GenotypeOnly:    true,
		Variants: []VariantRule{
			{RSID: "rs4149056", StarAllele: "*5", AltToken: "C", Effect: domain.DECREASED_FUNCTION},
		},
		Phenotypes: []PhenotypeRule{
			{
				Key:         domain.NORMAL_METABOLIZER,
				Diplotypes:  []string{"TT"},
				Description: "Normal transporter function",
				Activity:    domain.ACTIVITY_NORMAL,
			},
			{
				Key:         domain.INTERMEDIATE_METABOLIZER,
				Diplotypes:  []string{"CT"},
				Description: "Intermediate transporter function",
				Activity:    domain.ACTIVITY_DECREASED,
			},
			{
				Key:         domain.POOR_METABOLIZER,
				Diplotypes:  []string{"CC"},
				Description: "Poor transporter function",
				Activity:    domain.ACTIVITY_LOW,
			},
		},
	},
	{
		Gene:            "DPYD",
		ReferenceAllele: "*1",
		Variants: []VariantRule{
			{RSID: "rs3918290", StarAllele: "*2A", AltToken: "A", Effect: domain.NO_FUNCTION},
			{RSID: "rs55886062", StarAllele: "*13", AltToken: "C", Effect: domain.NO_FUNCTION},
			{RSID: "rs67376798", StarAllele: "c.2846A>T", AltToken: "A", Effect: domain.DECREASED_FUNCTION},
		},
		Phenotypes: []PhenotypeRule{
			{
				Key:         domain.NORMAL_METABOLIZER,
				Diplotypes:  []string{"*1/*1"},
				Description: "Normal DPD activity",
				Activity:    domain.ACTIVITY_NORMAL,
			},
			{
				Key: domain.INTERMEDIATE_METABOLIZER,
				Diplotypes: []string{
					"*1/*2A", "*1/*13", "*1/c.2846A>T",
					"c.2846A>T/c.2846A>T",
				},
				Description: "Partial DPD deficiency",
				Activity:    domain.ACTIVITY_DECREASED,
			},
			{
				Key: domain.POOR_METABOLIZER,
				Diplotypes: []string{
					"*2A/*2A", "*13/*13", "*13/*2A",
					"*13/c.2846A>T", "*2A/c.2846A>T",
				},
				Description: "Complete DPD deficiency",
				Activity:    domain.ACTIVITY_NONE,
			},
		},
	},
	{
		// TPMT uses the simplified binary scheme: the three array-detectable
		// no-function markers (*2, *3B, *3C) collapse into one "*3" label.
		// Compound heterozygotes are indistinguishable from *3 homozygotes
		// at this marker resolution and are called the same way.
		Gene:            "TPMT",
		ReferenceAllele: "*1",
		Collapsed:       true,
		CollapsedAllele: "*3",
		Variants: []VariantRule{
			{RSID: "rs1800462", StarAllele: "*2", AltToken: "G", Effect: domain.NO_FUNCTION},
			{RSID: "rs1800460", StarAllele: "*3B", AltToken: "T", Effect: domain.NO_FUNCTION},
			{RSID: "rs1142345", StarAllele: "*3C", AltToken: "C", Effect: domain.NO_FUNCTION},
		},
		Phenotypes: []PhenotypeRule{
			{
				Key:         domain.NORMAL_METABOLIZER,
				Diplotypes:  []string{"*1/*1"},
				Description: "Normal TPMT activity",
				Activity:    domain.ACTIVITY_NORMAL,
			},
			{
				Key:         domain.INTERMEDIATE_METABOLIZER,
				Diplotypes:  []string{"*1/*3"},
				Description: "Intermediate TPMT activity",
				Activity:    domain.ACTIVITY_DECREASED,
			},
			{
				Key:         domain.POOR_METABOLIZER,
				Diplotypes:  []string{"*3/*3"},
				Description: "Low or absent TPMT activity",
				Activity:    domain.ACTIVITY_NONE,
			},
		},
	},
	{
		Gene:            "UGT1A1",
		ReferenceAllele: "*1",
		Variants: []VariantRule{
			{RSID: "rs887829", StarAllele: "*80", AltToken: "T", Effect: domain.TAG_VARIANT},
		},
		Phenotypes: []PhenotypeRule{
			{
				Key:         domain.NORMAL_METABOLIZER,
				Diplotypes:  []string{"*1/*1"},
				Description: "Normal UGT1A1 activity",
				Activity:    domain.ACTIVITY_NORMAL,
			},
			{
				Key:         domain.INTERMEDIATE_METABOLIZER,
				Diplotypes:  []string{"*1/*80"},
				Description: "Intermediate UGT1A1 activity",
				Activity:    domain.ACTIVITY_DECREASED,
			},
			{
				Key:         domain.POOR_METABOLIZER,
				Diplotypes:  []string{"*80/*80"},
				Description: "Reduced UGT1A1 activity",
				Activity:    domain.ACTIVITY_LOW,
			},
		},
	},
}

// rulesByGene is built once at init for direct lookup.
var rulesByGene map[string]*GeneRules

func init() {
	rulesByGene = make(map[string]*GeneRules, len(geneRules))
	for i := range geneRules {
		rulesByGene[geneRules[i].Gene] = &geneRules[i]
	}
}

// GeneRuleSet returns the ordered per-gene rule tables.
func GeneRuleSet() []GeneRules {
	return geneRules
}

// RulesForGene returns the rule table for one gene.
func RulesForGene(gene string) (*GeneRules, bool) {
	r, ok := rulesByGene[gene]
	return r, ok
}

// keyTranslations maps a gene's internal phenotype vocabulary to the
// vocabulary its guidelines key on. SLCO1B1 phenotypes are called with
// metabolizer keys but statin guidelines use transporter-function keys.
var keyTranslations = map[string]map[domain.PhenotypeKey]domain.PhenotypeKey{
	"SLCO1B1": {
		domain.NORMAL_METABOLIZER:       domain.NORMAL_FUNCTION_KEY,
		domain.INTERMEDIATE_METABOLIZER: domain.INTERMEDIATE_FUNCTION_KEY,
		domain.POOR_METABOLIZER:         domain.POOR_FUNCTION_KEY,
	},
}

// TranslateKey applies the gene-specific vocabulary translation, if any.
// The second return reports whether a translation was applied.
func TranslateKey(gene string, key domain.PhenotypeKey) (domain.PhenotypeKey, bool) {
	table, ok := keyTranslations[gene]
	if !ok {
		return key, false
	}
	translated, ok := table[key]
	if !ok {
		return key, false
	}
	return translated, true
}
