package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pharmxd-server/internal/catalog"
	"github.com/pharmxd-server/internal/domain"
)

// MatcherService implements domain.GuidelineMatcher against the guideline
// catalog. The guideline map is injectable for testing; production code uses
// the built-in catalog.
type MatcherService struct {
	logger     *logrus.Logger
	guidelines map[string]*domain.GuidelineEntry
}

// NewMatcherService creates a matcher backed by the built-in guideline
// catalog.
func NewMatcherService(logger *logrus.Logger) *MatcherService {
	return NewMatcherServiceWithGuidelines(logger, catalog.Guidelines())
}

// NewMatcherServiceWithGuidelines creates a matcher over an explicit
// guideline table.
func NewMatcherServiceWithGuidelines(logger *logrus.Logger, guidelines map[string]*domain.GuidelineEntry) *MatcherService {
	return &MatcherService{logger: logger, guidelines: guidelines}
}

// SearchDrugs returns drugs whose name or brand names contain the query,
// case-insensitively, sorted by drug name. Blank queries return an empty
// list rather than the whole catalog.
func (m *MatcherService) SearchDrugs(query string) []domain.DrugSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]domain.DrugSummary, 0)
	if q == "" {
		return results
	}

	for _, g := range m.guidelines {
		if !matchesDrug(g, q) {
			continue
		}
		results = append(results, domain.DrugSummary{
			ID:   g.DrugID,
			Name: g.Name,
			Gene: g.GeneLabel(),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results
}

func matchesDrug(g *domain.GuidelineEntry, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(g.Name), loweredQuery) {
		return true
	}
	for _, brand := range g.BrandNames {
		if strings.Contains(strings.ToLower(brand), loweredQuery) {
			return true
		}
	}
	return false
}

// GetRecommendation matches one drug against the gene profile. Unknown drug
// ids return ErrDrugNotFound. A known drug whose required gene(s) are absent
// from the profile returns a no-data result with a nil error; the distinction
// matters to callers, which treat the former as a client mistake and the
// latter as a valid "your file lacks this marker" answer.
func (m *MatcherService) GetRecommendation(drugID string, profile domain.GeneProfile) (*domain.RecommendationResult, error) {
	id := strings.ToLower(strings.TrimSpace(drugID))
	guideline, ok := m.guidelines[id]
	if !ok {
		return nil, fmt.Errorf("drug %q: %w", drugID, domain.ErrDrugNotFound)
	}

	calls := make([]*domain.GeneCall, 0, len(guideline.Genes))
	var missing []string
	for _, gene := range guideline.Genes {
		call, present := profile[gene]
		if !present {
			missing = append(missing, gene)
			continue
		}
		calls = append(calls, call)
	}
	if len(missing) > 0 {
		m.logger.WithFields(logrus.Fields{
			"drug_id":       id,
			"missing_genes": missing,
		}).Info("Guideline gene data absent from profile")
		return &domain.RecommendationResult{
			Guideline:    guideline,
			NoData:       true,
			MissingGenes: missing,
			GeneLabel:    guideline.GeneLabel(),
			FDALabel:     guideline.FDALabel,
		}, nil
	}

	result := &domain.RecommendationResult{
		Guideline: guideline,
		GeneLabel: guideline.GeneLabel(),
		FDALabel:  guideline.FDALabel,
	}

	var key domain.PhenotypeKey
	if guideline.MultiGene() {
		key = m.combineMultiGene(guideline, calls)
		result.PhenotypeDescription = combinedDescription(calls)
		result.Diplotype = combinedDiplotype(calls)
	} else {
		call := calls[0]
		key = m.resolveKey(guideline, call)
		result.PhenotypeDescription = call.Phenotype.Description
		result.Diplotype = call.Diplotype
	}

	for _, call := range calls {
		if call.Phenotype.Inferred {
			result.InferredPhenotype = true
		}
	}

	rec, ok := guideline.Recommendations[key]
	if !ok {
		// resolveKey/combineMultiGene always land on a key the guideline
		// defines; this path means the catalog itself is inconsistent.
		return nil, fmt.Errorf("guideline %s has no recommendation for phenotype %s", id, key)
	}
	result.Recommendation = rec

	m.logger.WithFields(logrus.Fields{
		"drug_id":   id,
		"gene":      result.GeneLabel,
		"phenotype": key.String(),
		"inferred":  result.InferredPhenotype,
	}).WithFields(rec.Classification.LogFields()).Info("Resolved dosing recommendation")

	return result, nil
}

// resolveKey finds the recommendation key for a single-gene guideline. The
// chain never fails for a well-formed catalog: direct key, gene-specific
// vocabulary translation, phenotype-description word match, then the
// guideline's normal/standard entry as the final fallback.
func (m *MatcherService) resolveKey(guideline *domain.GuidelineEntry, call *domain.GeneCall) domain.PhenotypeKey {
	key := call.Phenotype.Key
	if _, ok := guideline.Recommendations[key]; ok {
		return key
	}

	if translated, ok := catalog.TranslateKey(call.Gene, key); ok {
		if _, defined := guideline.Recommendations[translated]; defined {
			return translated
		}
	}

	// Word match: a guideline key like "poor_metabolizer" matches any
	// phenotype description containing "poor metabolizer".
	desc := strings.ToLower(call.Phenotype.Description)
	for _, candidate := range sortedKeys(guideline.Recommendations) {
		words := strings.ReplaceAll(string(candidate), "_", " ")
		if strings.Contains(desc, words) {
			return candidate
		}
	}

	m.logger.WithFields(logrus.Fields{
		"drug_id":   guideline.DrugID,
		"gene":      call.Gene,
		"phenotype": key.String(),
	}).Warn("Phenotype key not covered by guideline; falling back to normal entry")

	if _, ok := guideline.Recommendations[domain.NORMAL_METABOLIZER]; ok {
		return domain.NORMAL_METABOLIZER
	}
	if _, ok := guideline.Recommendations[domain.NORMAL_FUNCTION_KEY]; ok {
		return domain.NORMAL_FUNCTION_KEY
	}
	for _, candidate := range sortedKeys(guideline.Recommendations) {
		if guideline.Recommendations[candidate].Classification == domain.STANDARD {
			return candidate
		}
	}
	return sortedKeys(guideline.Recommendations)[0]
}

// combineMultiGene folds the per-gene phenotypes of a multi-gene guideline
// into one dose tier. Tiers only escalate: the metabolizer gene sets the
// floor, target-gene sensitivity raises it, and a poor metabolizer combined
// with high target sensitivity lands on the most severe tier.
func (m *MatcherService) combineMultiGene(guideline *domain.GuidelineEntry, calls []*domain.GeneCall) domain.PhenotypeKey {
	tier := domain.TIER_STANDARD
	var metabolizerImpaired, highSensitivity bool

	for _, call := range calls {
		switch call.Phenotype.Key {
		case domain.INTERMEDIATE_METABOLIZER:
			tier = tier.Escalate(domain.TIER_REDUCED)
			metabolizerImpaired = true
		case domain.POOR_METABOLIZER:
			tier = tier.Escalate(domain.TIER_SIGNIFICANTLY_REDUCED)
			metabolizerImpaired = true
		case domain.MODERATE_WARFARIN_SENSITIVITY:
			tier = tier.Escalate(domain.TIER_REDUCED)
		case domain.HIGH_WARFARIN_SENSITIVITY:
			tier = tier.Escalate(domain.TIER_REDUCED)
			highSensitivity = true
		}
	}
	if metabolizerImpaired && highSensitivity {
		tier = tier.Escalate(domain.TIER_SIGNIFICANTLY_REDUCED)
	}

	key := domain.PhenotypeKey(tier)
	if _, ok := guideline.Recommendations[key]; ok {
		return key
	}
	return sortedKeys(guideline.Recommendations)[0]
}

// combinedDescription renders the per-gene phenotypes of a multi-gene match:
// "CYP2C9: *1/*3 (Intermediate metabolizer); VKORC1: AA (High warfarin sensitivity)".
func combinedDescription(calls []*domain.GeneCall) string {
	parts := make([]string, 0, len(calls))
	for _, call := range calls {
		parts = append(parts, fmt.Sprintf("%s: %s (%s)", call.Gene, call.Diplotype, call.Phenotype.Description))
	}
	return strings.Join(parts, "; ")
}

func combinedDiplotype(calls []*domain.GeneCall) string {
	parts := make([]string, 0, len(calls))
	for _, call := range calls {
		parts = append(parts, fmt.Sprintf("%s %s", call.Gene, call.Diplotype))
	}
	return strings.Join(parts, "; ")
}

// sortedKeys returns the recommendation keys in deterministic order so that
// fallback resolution does not depend on map iteration.
func sortedKeys(recs map[domain.PhenotypeKey]domain.Recommendation) []domain.PhenotypeKey {
	keys := make([]domain.PhenotypeKey, 0, len(recs))
	for k := range recs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
