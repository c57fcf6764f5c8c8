// Package main provides the command-line front end for the PharmXD pipeline:
// extract a raw genotype export, build the gene profile and print dosing
// guidance for the requested drugs, all without a running server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pharmxd-server/internal/catalog"
	"github.com/pharmxd-server/internal/domain"
	"github.com/pharmxd-server/internal/service"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to a raw genotype export (23andMe, AncestryDNA or generic TSV/CSV)")
		demo     = flag.Bool("demo", false, "use the built-in synthetic demo sample instead of a file")
		drugs    = flag.String("drugs", "", "comma-separated drug names or ids to evaluate (default: all cataloged drugs)")
		search   = flag.String("search", "", "search the drug catalog by name or brand name and exit")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{})
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	matcher := service.NewMatcherService(logger)

	if *search != "" {
		printSearch(matcher, *search)
		return
	}

	rawText, err := loadInput(*filePath, *demo)
	if err != nil {
		log.Fatalf("pharmxd: %v", err)
	}

	extractor := service.NewExtractorService(logger)
	caller := service.NewCallerService(logger)

	extraction := extractor.Extract(rawText)
	profile := caller.BuildProfile(extraction.PGxGenotypes)

	printExtraction(extraction)
	printProfile(profile)
	printRecommendations(matcher, profile, *drugs)
}

// loadInput resolves the raw text to analyze. A missing or unreadable file is
// the only fatal input error in the pipeline; malformed content degrades to
// an empty extraction instead.
func loadInput(filePath string, demo bool) (string, error) {
	if demo {
		return catalog.DemoSample(), nil
	}
	if filePath == "" {
		return "", fmt.Errorf("no input: pass -file <path> or -demo")
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableSource, err)
	}
	return string(data), nil
}

func printSearch(matcher *service.MatcherService, query string) {
	results := matcher.SearchDrugs(query)
	if len(results) == 0 {
		fmt.Printf("No drugs match %q\n", query)
		return
	}
	for _, r := range results {
		fmt.Printf("%-16s %-16s %s\n", r.ID, r.Name, r.Gene)
	}
}

func printExtraction(extraction *domain.ExtractionResult) {
	fmt.Printf("Detected format:  %s\n", extraction.DetectedFormat)
	fmt.Printf("Total SNPs read:  %d\n", extraction.TotalObserved)
	fmt.Printf("Panel SNPs found: %d\n\n", extraction.PGxCount)
}

func printProfile(profile domain.GeneProfile) {
	fmt.Println("Gene profile:")
	if len(profile) == 0 {
		fmt.Println("  (no pharmacogene data found)")
		return
	}
	for _, gene := range profile.Genes() {
		call := profile[gene]
		marker := ""
		if call.Phenotype.Inferred {
			marker = " (inferred)"
		}
		fmt.Printf("  %-8s %-14s %s%s\n", gene, call.Diplotype, call.Phenotype.Description, marker)
	}
	fmt.Println()
}

func printRecommendations(matcher *service.MatcherService, profile domain.GeneProfile, drugsFlag string) {
	var ids []string
	if drugsFlag == "" {
		for _, g := range catalog.GuidelineList() {
			ids = append(ids, g.DrugID)
		}
	} else {
		for _, raw := range strings.Split(drugsFlag, ",") {
			ids = append(ids, strings.TrimSpace(raw))
		}
	}

	fmt.Println("Dosing guidance:")
	for _, id := range ids {
		if id == "" {
			continue
		}
		result, err := matcher.GetRecommendation(id, profile)
		if err != nil {
			fmt.Printf("  %-16s %v\n", id, err)
			continue
		}
		printRecommendation(id, result)
	}
}

func printRecommendation(id string, result *domain.RecommendationResult) {
	if result.NoData {
		fmt.Printf("  %-16s [no data] profile lacks %s\n", id, strings.Join(result.MissingGenes, ", "))
		return
	}
	marker := ""
	if result.InferredPhenotype {
		marker = " (phenotype inferred)"
	}
	fmt.Printf("  %-16s [%s] %s: %s%s\n",
		id,
		strings.ToUpper(result.Recommendation.Classification.String()),
		result.PhenotypeDescription,
		result.Recommendation.Text,
		marker,
	)
}
