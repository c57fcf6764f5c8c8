package service

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pharmxd-server/internal/catalog"
	"github.com/pharmxd-server/internal/domain"
)

// CallerService implements domain.DiplotypeCaller over the gene rule catalog.
// It is stateless and safe for concurrent use.
type CallerService struct {
	logger *logrus.Logger
}

// NewCallerService creates a new diplotype/phenotype caller.
func NewCallerService(logger *logrus.Logger) *CallerService {
	return &CallerService{logger: logger}
}

// countCopies counts how many copies of the alternate allele the genotype
// string carries (0, 1 or 2). Deletion variants match the 'D' character
// arrays use for deleted copies instead of a literal base.
func countCopies(genotype, altToken string) int {
	gt := strings.ToUpper(genotype)
	var n int
	if altToken == catalog.DeletionToken {
		n = strings.Count(gt, "D")
	} else {
		n = strings.Count(gt, strings.ToUpper(altToken))
	}
	if n > 2 {
		n = 2
	}
	return n
}

// CallStarAlleles resolves the diplotype for one gene from the extracted
// genotype map. The boolean return is false when the gene is genotype-only
// and its tracked SNP is absent, or when the gene is not in the rule catalog;
// such genes are omitted from the profile entirely.
func (c *CallerService) CallStarAlleles(gene string, pgxGenotypes map[string]domain.ObservedGenotype) (*domain.GeneDiplotypeCall, bool) {
	rules, ok := catalog.RulesForGene(gene)
	if !ok {
		return nil, false
	}

	// Collect detected variants in catalog order.
	var detected []domain.DetectedVariant
	var effects []domain.FunctionalEffect
	for _, vr := range rules.Variants {
		og, present := pgxGenotypes[vr.RSID]
		if !present {
			continue
		}
		copies := countCopies(og.Genotype, vr.AltToken)
		if copies == 0 {
			continue
		}
		detected = append(detected, domain.DetectedVariant{
			RSID:       vr.RSID,
			Copies:     copies,
			StarAllele: vr.StarAllele,
		})
		effects = append(effects, vr.Effect)
	}

	if rules.GenotypeOnly {
		og, present := pgxGenotypes[rules.Variants[0].RSID]
		if !present {
			return nil, false
		}
		return &domain.GeneDiplotypeCall{
			Gene:             gene,
			Diplotype:        strings.ToUpper(og.Genotype),
			DetectedVariants: detected,
		}, true
	}

	call := &domain.GeneDiplotypeCall{Gene: gene, DetectedVariants: detected}

	switch {
	case len(detected) == 0:
		call.Diplotype = joinSorted(rules.ReferenceAllele, rules.ReferenceAllele)

	case rules.Collapsed:
		// Binary scheme: any marker copies collapse into one variant allele
		// label. Two copies in total (homozygous or compound het across
		// markers) call the collapsed allele homozygous.
		total := 0
		for _, dv := range detected {
			total += dv.Copies
		}
		if total >= 2 {
			call.Diplotype = joinSorted(rules.CollapsedAllele, rules.CollapsedAllele)
		} else {
			call.Diplotype = joinSorted(rules.ReferenceAllele, rules.CollapsedAllele)
		}

	default:
		call.Diplotype = buildAllelePair(detected, effects, rules.ReferenceAllele)
	}

	return call, true
}

// buildAllelePair fills the two diplotype slots by walking the detected
// variants with no-function effects prioritized first (stable order
// otherwise). A homozygous variant fills both slots; a heterozygous variant
// fills the next open slot; leftover slots take the reference allele.
func buildAllelePair(detected []domain.DetectedVariant, effects []domain.FunctionalEffect, reference string) string {
	type rankedVariant struct {
		dv       domain.DetectedVariant
		priority int
	}
	ranked := make([]rankedVariant, len(detected))
	for i, dv := range detected {
		ranked[i] = rankedVariant{dv: dv, priority: effects[i].Priority()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].priority < ranked[j].priority
	})

	var slots []string
	for _, rv := range ranked {
		if len(slots) >= 2 {
			break
		}
		if rv.dv.Copies >= 2 {
			slots = append(slots, rv.dv.StarAllele)
			if len(slots) < 2 {
				slots = append(slots, rv.dv.StarAllele)
			}
			continue
		}
		slots = append(slots, rv.dv.StarAllele)
	}
	for len(slots) < 2 {
		slots = append(slots, reference)
	}

	return joinSorted(slots[0], slots[1])
}

// joinSorted joins two allele labels in lexicographic order so that the
// reported diplotype is independent of detection order.
func joinSorted(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "/" + b
}

// reverseDiplotype returns the opposite ordering of a diplotype string:
// allele pairs swap around the "/", raw two-character genotypes swap bases.
func reverseDiplotype(diplotype string) string {
	if i := strings.IndexByte(diplotype, '/'); i >= 0 {
		return diplotype[i+1:] + "/" + diplotype[:i]
	}
	if len(diplotype) == 2 {
		return diplotype[1:] + diplotype[:1]
	}
	return diplotype
}

// CallPhenotype maps a diplotype to its phenotype category for one gene.
// Matching is case-insensitive and accepts either allele ordering. When no
// rule matches, the call defaults to normal (inferred): un-genotyped and
// reference-only individuals are presumed normal by policy. The Inferred
// flag distinguishes this default from an evidence-backed normal call.
func (c *CallerService) CallPhenotype(gene, diplotype string) domain.PhenotypeCall {
	rules, ok := catalog.RulesForGene(gene)
	if ok {
		reversed := reverseDiplotype(diplotype)
		for _, pr := range rules.Phenotypes {
			for _, cond := range pr.Diplotypes {
				if strings.EqualFold(cond, diplotype) || strings.EqualFold(cond, reversed) {
					return domain.PhenotypeCall{
						Key:         pr.Key,
						Description: pr.Description,
						Activity:    pr.Activity,
					}
				}
			}
		}
	}

	// Known design tension: this default can mask true "no evidence" cases
	// behind a clinical-sounding normal call. The Inferred flag and log line
	// exist so callers can surface a warning instead of silently trusting it.
	c.logger.WithFields(logrus.Fields{
		"gene":      gene,
		"diplotype": diplotype,
	}).Warn("No phenotype rule matched; defaulting to inferred normal")

	return domain.PhenotypeCall{
		Key:         domain.NORMAL_METABOLIZER,
		Description: "Normal (inferred)",
		Activity:    domain.ACTIVITY_NORMAL,
		Inferred:    true,
		Note:        "No phenotype rule matched this diplotype; normal function assumed by default.",
	}
}

// BuildProfile produces the complete gene profile for one sample. Every gene
// in the rule catalog is visited in catalog order; genes with no resolvable
// diplotype (genotype-only genes whose SNP is missing) are absent from the
// map rather than present with empty values.
func (c *CallerService) BuildProfile(pgxGenotypes map[string]domain.ObservedGenotype) domain.GeneProfile {
	profile := make(domain.GeneProfile)

	for _, rules := range catalog.GeneRuleSet() {
		call, ok := c.CallStarAlleles(rules.Gene, pgxGenotypes)
		if !ok {
			continue
		}
		phenotype := c.CallPhenotype(rules.Gene, call.Diplotype)
		profile[rules.Gene] = &domain.GeneCall{
			Gene:             rules.Gene,
			Diplotype:        call.Diplotype,
			DetectedVariants: call.DetectedVariants,
			Phenotype:        phenotype,
		}
	}

	c.logger.WithFields(logrus.Fields{
		"genes_called": len(profile),
		"gene_total":   len(catalog.GeneRuleSet()),
	}).Info("Completed gene profile construction")

	return profile
}
