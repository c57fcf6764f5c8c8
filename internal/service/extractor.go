// Package service implements the three PGx pipeline stages: genotype
// extraction, diplotype/phenotype calling and guideline matching, plus the
// session manager that owns per-sample state.
package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pharmxd-server/internal/catalog"
	"github.com/pharmxd-server/internal/domain"
)

// headerScanLimit bounds how many leading lines format detection inspects.
const headerScanLimit = 20

// noCall genotype sentinels emitted by 23andMe-style arrays.
func isNoCall(genotype string) bool {
	return genotype == "--" || genotype == "00"
}

// lineParser consumes one data line into the full-genotype map. Returns false
// when the line carried no usable record.
type lineParser func(line string, full map[string]domain.ObservedGenotype) bool

// formatHandler pairs a format tag with its header predicate and line parser.
// Detection walks the handlers in priority order so new formats can be added
// without touching existing entries.
type formatHandler struct {
	tag       domain.FormatTag
	headerHit func(line string) bool
	parse     lineParser
}

// ExtractorService implements domain.GenotypeExtractor over the tracked
// variant catalog. It is stateless and safe for concurrent use.
type ExtractorService struct {
	logger   *logrus.Logger
	handlers []formatHandler
	tracked  map[string]domain.TrackedVariant
}

// NewExtractorService creates a new genotype extractor.
func NewExtractorService(logger *logrus.Logger) *ExtractorService {
	e := &ExtractorService{
		logger:  logger,
		tracked: catalog.VariantsByRSID(),
	}
	e.handlers = []formatHandler{
		{
			tag:       domain.FORMAT_23ANDME,
			headerHit: func(line string) bool { return strings.HasPrefix(line, "# rsid") },
			parse:     parse23AndMeLine,
		},
		{
			tag: domain.FORMAT_ANCESTRY,
			headerHit: func(line string) bool {
				return strings.Contains(line, "RSID") && strings.Contains(line, "CHROMOSOME")
			},
			parse: parseAncestryLine,
		},
		{
			tag: domain.FORMAT_GENERIC,
			headerHit: func(line string) bool {
				return strings.Contains(line, "rsid") && strings.Contains(line, "chromosome")
			},
			parse: parseGenericLine,
		},
	}
	return e
}

// DetectFormat inspects up to the first 20 lines and returns the best-guess
// format tag. Header markers are checked first in priority order; when no
// header matches, column-count heuristics on data lines decide. This is a
// best-effort sniff, not a strict grammar: anything unrecognized falls
// through to FORMAT_UNKNOWN, which the caller routes to the generic parser.
func (e *ExtractorService) DetectFormat(rawText string) domain.FormatTag {
	lines := splitLines(rawText)
	if len(lines) > headerScanLimit {
		lines = lines[:headerScanLimit]
	}

	for _, line := range lines {
		for _, h := range e.handlers {
			if h.headerHit(line) {
				return h.tag
			}
		}
	}

	// No header marker: guess from data line shape.
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if fields := strings.Split(line, "\t"); len(fields) >= 4 && strings.HasPrefix(fields[0], "rs") {
			return domain.FORMAT_23ANDME
		}
		if fields := strings.Split(line, ","); len(fields) >= 4 && strings.HasPrefix(fields[0], "rs") {
			return domain.FORMAT_ANCESTRY
		}
	}

	return domain.FORMAT_UNKNOWN
}

// Extract parses the raw file text and returns the tracked-panel subset of
// its genotypes. Empty or fully malformed input yields a valid result with
// zero counts; it is never an error. Reading the file bytes is the caller's
// responsibility and the only fatal failure mode of the pipeline.
func (e *ExtractorService) Extract(rawText string) *domain.ExtractionResult {
	format := e.DetectFormat(rawText)

	parse := parseGenericLine
	for _, h := range e.handlers {
		if h.tag == format {
			parse = h.parse
			break
		}
	}

	full := make(map[string]domain.ObservedGenotype)
	for _, line := range splitLines(rawText) {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parse(line, full)
	}

	pgx := make(map[string]domain.ObservedGenotype)
	for rsid, og := range full {
		if _, ok := e.tracked[rsid]; ok {
			pgx[rsid] = og
		}
	}

	result := &domain.ExtractionResult{
		DetectedFormat: format,
		TotalObserved:  len(full),
		PGxGenotypes:   pgx,
		PGxCount:       len(pgx),
	}

	e.logger.WithFields(logrus.Fields{
		"detected_format": format.String(),
		"total_snps":      result.TotalObserved,
		"pgx_count":       result.PGxCount,
	}).Info("Completed genotype extraction")

	return result
}

// parse23AndMeLine parses one 23andMe data line:
// rsid<TAB>chromosome<TAB>position<TAB>genotype, exactly four fields.
func parse23AndMeLine(line string, full map[string]domain.ObservedGenotype) bool {
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		return false
	}
	rsid, chrom, pos, genotype := fields[0], fields[1], fields[2], fields[3]
	if rsid == "" || chrom == "" || pos == "" || genotype == "" {
		return false
	}
	if isNoCall(genotype) {
		return false
	}
	full[rsid] = domain.ObservedGenotype{RSID: rsid, Chromosome: chrom, Position: pos, Genotype: genotype}
	return true
}

// parseAncestryLine parses one AncestryDNA data line:
// rsid, chromosome, position, allele1, allele2 (tab or comma delimited).
// The header row and rows with a "0" no-call allele are skipped.
func parseAncestryLine(line string, full map[string]domain.ObservedGenotype) bool {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == '\t' || r == ',' })
	if len(fields) < 5 {
		return false
	}
	rsid, chrom, pos, a1, a2 := fields[0], fields[1], fields[2], fields[3], fields[4]
	if strings.EqualFold(rsid, "rsid") {
		return false // header row
	}
	if rsid == "" || a1 == "0" || a2 == "0" {
		return false
	}
	full[rsid] = domain.ObservedGenotype{RSID: rsid, Chromosome: chrom, Position: pos, Genotype: a1 + a2}
	return true
}

// parseGenericLine is the fallback parser: tab split first, then comma,
// requiring at least four fields with an rs-prefixed first field. Same
// no-call rule as 23andMe.
func parseGenericLine(line string, full map[string]domain.ObservedGenotype) bool {
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		fields = strings.Split(line, ",")
	}
	if len(fields) < 4 {
		return false
	}
	rsid, chrom, pos, genotype := fields[0], fields[1], fields[2], fields[3]
	if !strings.HasPrefix(rsid, "rs") || strings.EqualFold(rsid, "rsid") {
		return false
	}
	if genotype == "" || isNoCall(genotype) {
		return false
	}
	full[rsid] = domain.ObservedGenotype{RSID: rsid, Chromosome: chrom, Position: pos, Genotype: genotype}
	return true
}

// splitLines splits raw text into trimmed lines, tolerating CRLF endings.
func splitLines(rawText string) []string {
	lines := strings.Split(rawText, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
