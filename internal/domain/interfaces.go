package domain

// GenotypeExtractor detects the raw file format and extracts the tracked
// pharmacogene SNP subset. Malformed-but-readable input never errors; it
// degrades to an empty ExtractionResult.
type GenotypeExtractor interface {
	DetectFormat(rawText string) FormatTag
	Extract(rawText string) *ExtractionResult
}

// DiplotypeCaller converts extracted genotypes into per-gene diplotype and
// phenotype calls.
type DiplotypeCaller interface {
	// CallStarAlleles resolves the diplotype for one gene. The second return
	// is false when the gene has no resolvable call (genotype-only gene whose
	// tracked SNP is absent from the input).
	CallStarAlleles(gene string, pgxGenotypes map[string]ObservedGenotype) (*GeneDiplotypeCall, bool)

	// CallPhenotype maps a diplotype to its phenotype category. Order of the
	// allele pair is irrelevant; unmatched diplotypes default to an inferred
	// normal call, never an error.
	CallPhenotype(gene, diplotype string) PhenotypeCall

	// BuildProfile produces the full gene profile for a sample. Genes without
	// informative data are absent from the result.
	BuildProfile(pgxGenotypes map[string]ObservedGenotype) GeneProfile
}

// GuidelineMatcher resolves drug queries against a gene profile.
type GuidelineMatcher interface {
	// SearchDrugs returns drugs whose name or brand names contain the query,
	// case-insensitively. Blank queries return an empty list.
	SearchDrugs(query string) []DrugSummary

	// GetRecommendation matches one drug against the profile. Unknown drugs
	// return ErrDrugNotFound; a known drug whose gene is missing from the
	// profile returns a no-data result with a nil error.
	GetRecommendation(drugID string, profile GeneProfile) (*RecommendationResult, error)
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	Validate() error
}
