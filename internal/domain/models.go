package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// TrackedVariant describes one SNP of the fixed pharmacogene panel: the
// reference-SNP identifier, the gene it belongs to, the star allele it marks
// and the functional effect of that allele. Catalog entries are immutable
// after process start.
type TrackedVariant struct {
	RSID       string           `json:"rsid" validate:"required"`
	Gene       string           `json:"gene" validate:"required"`
	StarAllele string           `json:"star_allele"`
	Effect     FunctionalEffect `json:"effect"`
	Chromosome string           `json:"chromosome"`
	Position   int64            `json:"position"`
}

// Validate ensures a catalog entry meets panel requirements.
func (tv *TrackedVariant) Validate() error {
	if !strings.HasPrefix(tv.RSID, "rs") {
		return fmt.Errorf("tracked variant validation: %w",
			fmt.Errorf("reference id %q must use the rs-prefixed form", tv.RSID))
	}
	if tv.Gene == "" {
		return fmt.Errorf("tracked variant validation: %w", errors.New("gene is required"))
	}
	if !tv.Effect.IsValid() {
		return fmt.Errorf("tracked variant validation: %w", ErrInvalidEffect)
	}
	return nil
}

// ObservedGenotype is one genotyped SNP extracted from an uploaded file.
// The genotype string is an unordered base pair ("AG") or a deletion-aware
// token pair for indel assays. Instances live only as long as the session
// that produced them.
type ObservedGenotype struct {
	RSID       string `json:"rsid"`
	Chromosome string `json:"chromosome"`
	Position   string `json:"position"`
	Genotype   string `json:"genotype"`
}

// ExtractionResult is the output of the genotype extractor: the detected
// file format, how many SNPs the file contained in total and the subset
// restricted to the tracked pharmacogene panel.
//
// Invariant: PGxCount == len(PGxGenotypes) and every key in PGxGenotypes is a
// key in the tracked variant catalog.
type ExtractionResult struct {
	DetectedFormat FormatTag                   `json:"detected_format"`
	TotalObserved  int                         `json:"total_snps"`
	PGxGenotypes   map[string]ObservedGenotype `json:"pgx_genotypes"`
	PGxCount       int                         `json:"pgx_count"`
}

// DetectedVariant records one panel variant observed in the sample with the
// number of alternate-allele copies carried (1 heterozygous, 2 homozygous).
type DetectedVariant struct {
	RSID       string `json:"rsid"`
	Copies     int    `json:"copies"`
	StarAllele string `json:"star_allele"`
}

// GeneDiplotypeCall is the allele-level call for one gene: the canonical
// diplotype string plus the variants that drove it. For star-allele genes the
// diplotype is two allele labels joined by "/", order-normalized; for
// genotype-only genes it is the raw uppercased genotype of the single
// tracked SNP.
type GeneDiplotypeCall struct {
	Gene             string            `json:"gene"`
	Diplotype        string            `json:"diplotype"`
	DetectedVariants []DetectedVariant `json:"detected_variants,omitempty"`
}

// PhenotypeCall is the metabolizer phenotype derived from a diplotype.
// Inferred marks the normal-by-default path taken when no phenotype rule
// matched the diplotype: it is a policy default, not an evidence-backed call,
// and callers that need audit-grade provenance must treat it distinctly.
type PhenotypeCall struct {
	Key         PhenotypeKey  `json:"phenotype"`
	Description string        `json:"description"`
	Activity    ActivityLevel `json:"activity"`
	Inferred    bool          `json:"inferred,omitempty"`
	Note        string        `json:"note,omitempty"`
}

// GeneCall merges the diplotype and phenotype calls for one gene. It is the
// per-gene unit of a GeneProfile.
type GeneCall struct {
	Gene             string            `json:"gene"`
	Diplotype        string            `json:"diplotype"`
	DetectedVariants []DetectedVariant `json:"detected_variants,omitempty"`
	Phenotype        PhenotypeCall     `json:"phenotype_call"`
}

// GeneProfile maps gene symbol to its merged call. A gene absent from the map
// means "insufficient data" and is distinct from an explicit normal call.
type GeneProfile map[string]*GeneCall

// Genes returns the profile's gene symbols in sorted order.
func (p GeneProfile) Genes() []string {
	genes := make([]string, 0, len(p))
	for g := range p {
		genes = append(genes, g)
	}
	sort.Strings(genes)
	return genes
}

// Recommendation is one phenotype-specific dosing action from a guideline.
type Recommendation struct {
	Text           string         `json:"recommendation"`
	Classification Classification `json:"classification"`
	Strength       string         `json:"strength,omitempty"`
	Implications   string         `json:"implications,omitempty"`
	Icon           string         `json:"icon,omitempty"`
}

// GuidelineEntry is one CPIC-style drug guideline: the drug's identity, the
// gene or genes it keys on and a recommendation per phenotype key. Static,
// read-only catalog data.
type GuidelineEntry struct {
	DrugID          string                          `json:"drug_id"`
	Name            string                          `json:"name"`
	BrandNames      []string                        `json:"brand_names,omitempty"`
	DrugClass       string                          `json:"drug_class"`
	Genes           []string                        `json:"genes"`
	Recommendations map[PhenotypeKey]Recommendation `json:"recommendations"`
	ReferenceURL    string                          `json:"reference_url,omitempty"`
	FDALabel        string                          `json:"fda_label,omitempty"`
}

// MultiGene reports whether the guideline combines more than one gene.
func (g *GuidelineEntry) MultiGene() bool {
	return len(g.Genes) > 1
}

// GeneLabel returns the display label for the guideline's gene(s).
func (g *GuidelineEntry) GeneLabel() string {
	return strings.Join(g.Genes, " + ")
}

// Validate ensures a guideline entry is usable by the matcher.
func (g *GuidelineEntry) Validate() error {
	if g.DrugID == "" {
		return fmt.Errorf("guideline validation: %w", errors.New("drug id is required"))
	}
	if len(g.Genes) == 0 {
		return fmt.Errorf("guideline validation: %w", errors.New("at least one gene is required"))
	}
	if len(g.Recommendations) == 0 {
		return fmt.Errorf("guideline validation: %w", errors.New("at least one recommendation is required"))
	}
	for key, rec := range g.Recommendations {
		if !rec.Classification.IsValid() {
			return fmt.Errorf("guideline validation for %s key %s: %w", g.DrugID, key, ErrInvalidClassification)
		}
	}
	return nil
}

// RecommendationResult is the outcome of matching one drug against a gene
// profile. NoData marks the sentinel case where the guideline exists but the
// profile lacks the needed gene(s); it is not an error and not the same as an
// unknown drug.
type RecommendationResult struct {
	Guideline            *GuidelineEntry `json:"guideline"`
	NoData               bool            `json:"no_data,omitempty"`
	MissingGenes         []string        `json:"missing_genes,omitempty"`
	GeneLabel            string          `json:"gene_label"`
	PhenotypeDescription string          `json:"phenotype_description,omitempty"`
	Diplotype            string          `json:"diplotype,omitempty"`
	Recommendation       Recommendation  `json:"chosen_recommendation,omitempty"`
	InferredPhenotype    bool            `json:"inferred_phenotype,omitempty"`
	FDALabel             string          `json:"fda_label,omitempty"`
}

// DrugSummary is one drug-search hit.
type DrugSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Gene string `json:"gene"`
}
