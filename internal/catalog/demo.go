package catalog

import (
	"fmt"
	"strings"
)

// demoGenotypes is a synthetic but clinically interesting sample: a CYP2C19
// intermediate metabolizer, a CYP2D6 poor metabolizer, warfarin-sensitive
// CYP2C9/VKORC1 status and an SLCO1B1 heterozygote. Values for panel SNPs
// not listed here default to the reference genotype.
var demoGenotypes = map[string]string{
	"rs4244285": "AG", // CYP2C19 *1/*2
	"rs3892097": "TT", // CYP2D6 *4/*4
	"rs1057910": "AC", // CYP2C9 *1/*3
	"rs9923231": "AG", // VKORC1 heterozygous sensitive
	"rs4149056": "TC", // SLCO1B1 *1/*5
	"rs1142345": "TC", // TPMT *1/*3
	"rs887829":  "CT", // UGT1A1 *1/*80
}

// referenceGenotypes gives the homozygous-reference genotype per panel SNP
// for demo generation. Reference bases mirror the alt tokens in the gene
// rule catalog.
var referenceGenotypes = map[string]string{
	"rs4244285":  "GG",
	"rs4986893":  "GG",
	"rs28399504": "AA",
	"rs12248560": "CC",
	"rs3892097":  "CC",
	"rs5030655":  "TT",
	"rs1065852":  "CC",
	"rs28371725": "CC",
	"rs1799853":  "CC",
	"rs1057910":  "AA",
	"rs9923231":  "GG",
	"rs4149056":  "TT",
	"rs3918290":  "GG",
	"rs55886062": "AA",
	"rs67376798": "TT",
	"rs1800462":  "CC",
	"rs1800460":  "CC",
	"rs1142345":  "TT",
	"rs887829":   "CC",
}

// DemoSample renders the built-in demo sample as 23andMe-format raw text.
// It exercises every panel SNP, so it doubles as a parser fixture in tests.
func DemoSample() string {
	var b strings.Builder
	b.WriteString("# This data file generated for demonstration purposes.\n")
	b.WriteString("# Synthetic genotypes; not derived from any real individual.\n")
	b.WriteString("# rsid\tchromosome\tposition\tgenotype\n")
	for _, tv := range trackedVariants {
		gt, ok := demoGenotypes[tv.RSID]
		if !ok {
			gt = referenceGenotypes[tv.RSID]
		}
		fmt.Fprintf(&b, "%s\t%s\t%d\t%s\n", tv.RSID, tv.Chromosome, tv.Position, gt)
	}
	return b.String()
}
