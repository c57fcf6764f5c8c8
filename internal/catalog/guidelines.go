package catalog

import "github.com/pharmxd-server/internal/domain"

// guidelineEntries is the CPIC-style drug guideline table. FDA label excerpts
// are condensed from the pharmacogenomics sections of the corresponding
// DailyMed structured product labels.
var guidelineEntries = []domain.GuidelineEntry{
	{
		DrugID:     "clopidogrel",
		Name:       "Clopidogrel",
		BrandNames: []string{"Plavix"},
		DrugClass:  "Antiplatelet agent",
		Genes:      []string{"CYP2C19"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Standard dosing. Platelet inhibition may be enhanced.",
				Classification: domain.STANDARD,
				Strength:       "strong",
				Implications:   "Increased formation of the active metabolite.",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
				Implications:   "Normal platelet inhibition expected.",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Consider an alternative antiplatelet agent (prasugrel or ticagrelor) if no contraindication.",
				Classification: domain.CAUTION,
				Strength:       "strong",
				Implications:   "Reduced active metabolite formation; diminished antiplatelet effect and higher residual platelet reactivity.",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Avoid standard-dose clopidogrel. Use prasugrel or ticagrelor if no contraindication.",
				Classification: domain.AVOID,
				Strength:       "strong",
				Implications:   "Markedly reduced active metabolite; increased risk of major adverse cardiovascular events after PCI.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-clopidogrel-and-cyp2c19/",
		FDALabel:     "Boxed warning: effectiveness of Plavix depends on conversion to an active metabolite by CYP2C19. Tests are available to identify patients who are CYP2C19 poor metabolizers; consider use of another platelet P2Y12 inhibitor in such patients.",
	},
	{
		DrugID:     "omeprazole",
		Name:       "Omeprazole",
		BrandNames: []string{"Prilosec", "Losec"},
		DrugClass:  "Proton pump inhibitor",
		Genes:      []string{"CYP2C19"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Consider a dose increase of 100-200% for H. pylori eradication and erosive esophagitis.",
				Classification: domain.CAUTION,
				Strength:       "optional",
				Implications:   "Faster clearance may lead to sub-therapeutic acid suppression.",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Standard dosing. Monitor for efficacy.",
				Classification: domain.STANDARD,
				Strength:       "optional",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Standard dosing; consider a 50% dose reduction for long-term maintenance therapy.",
				Classification: domain.CAUTION,
				Strength:       "optional",
				Implications:   "Higher systemic exposure; greater acid suppression per dose.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/cpic-guideline-for-proton-pump-inhibitors-and-cyp2c19/",
	},
	{
		DrugID:     "pantoprazole",
		Name:       "Pantoprazole",
		BrandNames: []string{"Protonix"},
		DrugClass:  "Proton pump inhibitor",
		Genes:      []string{"CYP2C19"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Consider increasing the dose by 100-200% if therapeutic failure is observed.",
				Classification: domain.CAUTION,
				Strength:       "optional",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Standard dosing.",
				Classification: domain.STANDARD,
				Strength:       "optional",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Standard dosing; consider dose reduction for chronic therapy.",
				Classification: domain.CAUTION,
				Strength:       "optional",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/cpic-guideline-for-proton-pump-inhibitors-and-cyp2c19/",
	},
	{
		DrugID:     "citalopram",
		Name:       "Citalopram",
		BrandNames: []string{"Celexa", "Cipramil"},
		DrugClass:  "SSRI antidepressant",
		Genes:      []string{"CYP2C19"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Consider an alternative SSRI not predominantly metabolized by CYP2C19 if response is inadequate.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
				Implications:   "Lower plasma concentrations; increased risk of therapeutic failure.",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Standard dosing.",
				Classification: domain.STANDARD,
				Strength:       "moderate",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Reduce starting dose by 50% or select an alternative SSRI. Do not exceed 20 mg/day.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
				Implications:   "Higher plasma concentrations; dose-dependent QT prolongation risk.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-selective-serotonin-reuptake-inhibitors-and-cyp2d6-and-cyp2c19/",
		FDALabel:     "Celexa: 20 mg/day is the maximum recommended dose for CYP2C19 poor metabolizers due to the risk of QT prolongation.",
	},
	{
		DrugID:     "escitalopram",
		Name:       "Escitalopram",
		BrandNames: []string{"Lexapro", "Cipralex"},
		DrugClass:  "SSRI antidepressant",
		Genes:      []string{"CYP2C19"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Consider an alternative SSRI if response is inadequate at standard doses.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Standard dosing.",
				Classification: domain.STANDARD,
				Strength:       "moderate",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Consider a 50% reduction of the starting dose or an alternative SSRI.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-selective-serotonin-reuptake-inhibitors-and-cyp2d6-and-cyp2c19/",
	},
	{
		DrugID:     "voriconazole",
		Name:       "Voriconazole",
		BrandNames: []string{"Vfend"},
		DrugClass:  "Triazole antifungal",
		Genes:      []string{"CYP2C19"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Select an alternative antifungal agent not dependent on CYP2C19.",
				Classification: domain.AVOID,
				Strength:       "moderate",
				Implications:   "Sub-therapeutic concentrations likely at standard dosing.",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Standard dosing with therapeutic drug monitoring.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Select an alternative agent, or use a lower dose with therapeutic drug monitoring.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
				Implications:   "Higher exposure; increased risk of hepatotoxicity and visual adverse events.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-voriconazole-and-cyp2c19/",
	},
	{
		DrugID:     "codeine",
		Name:       "Codeine",
		BrandNames: []string{"Tylenol #3", "Tylenol #4"},
		DrugClass:  "Opioid analgesic",
		Genes:      []string{"CYP2D6"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Avoid codeine. Rapid morphine formation creates a risk of life-threatening toxicity.",
				Classification: domain.AVOID,
				Strength:       "strong",
				Implications:   "Excessive morphine exposure; respiratory depression risk.",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Standard dosing; monitor closely for reduced analgesia.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
				Implications:   "Reduced morphine formation; analgesia may be inadequate.",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Avoid codeine. Use a non-tramadol alternative analgesic.",
				Classification: domain.AVOID,
				Strength:       "strong",
				Implications:   "Little or no conversion to morphine; analgesia very likely inadequate.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-codeine-and-cyp2d6/",
		FDALabel:     "Codeine contraindication: children younger than 12 years and post-tonsillectomy pediatric patients; deaths have occurred in ultrarapid CYP2D6 metabolizers.",
	},
	{
		DrugID:     "tramadol",
		Name:       "Tramadol",
		BrandNames: []string{"Ultram", "ConZip"},
		DrugClass:  "Opioid analgesic",
		Genes:      []string{"CYP2D6"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Avoid tramadol due to potential for toxicity from rapid O-desmethyltramadol formation.",
				Classification: domain.AVOID,
				Strength:       "strong",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Standard dosing; monitor for reduced analgesia.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Avoid tramadol. Select a non-codeine alternative analgesic.",
				Classification: domain.AVOID,
				Strength:       "strong",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/cpic-guideline-for-codeine-and-cyp2d6/",
	},
	{
		DrugID:     "amitriptyline",
		Name:       "Amitriptyline",
		BrandNames: []string{"Elavil"},
		DrugClass:  "Tricyclic antidepressant",
		Genes:      []string{"CYP2D6"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.ULTRARAPID_METABOLIZER: {
				Text:           "Avoid tricyclic use; if warranted, titrate with therapeutic drug monitoring.",
				Classification: domain.AVOID,
				Strength:       "strong",
			},
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Consider a 25% reduction of the starting dose with monitoring.",
				Classification: domain.CAUTION,
				Strength:       "optional",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Avoid amitriptyline; if warranted, reduce starting dose by 50% with therapeutic drug monitoring.",
				Classification: domain.AVOID,
				Strength:       "strong",
				Implications:   "Elevated tricyclic concentrations; increased anticholinergic and cardiac toxicity risk.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-tricyclic-antidepressants-and-cyp2d6-and-cyp2c19/",
	},
	{
		DrugID:     "warfarin",
		Name:       "Warfarin",
		BrandNames: []string{"Coumadin", "Jantoven"},
		DrugClass:  "Vitamin K antagonist anticoagulant",
		Genes:      []string{"CYP2C9", "VKORC1"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.PhenotypeKey(domain.TIER_STANDARD): {
				Text:           "Standard warfarin initiation per label with routine INR monitoring.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.PhenotypeKey(domain.TIER_REDUCED): {
				Text:           "Initiate at a reduced dose (consider 20-50% reduction) with close INR monitoring.",
				Classification: domain.CAUTION,
				Strength:       "strong",
				Implications:   "Reduced warfarin clearance or increased target sensitivity; over-anticoagulation risk at standard doses.",
			},
			domain.PhenotypeKey(domain.TIER_SIGNIFICANTLY_REDUCED): {
				Text:           "Initiate at a significantly reduced dose (consider 50-80% reduction) with intensive INR monitoring, or select an alternative anticoagulant.",
				Classification: domain.AVOID,
				Strength:       "strong",
				Implications:   "Combined metabolic and target sensitivity; high bleeding risk at standard initiation doses.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-warfarin-and-cyp2c9-and-vkorc1/",
		FDALabel:     "Coumadin dosing table: lower initiation doses are recommended for patients with CYP2C9 *1/*3, *2/*2, *2/*3 or *3/*3 genotypes and VKORC1 -1639 AG or AA genotypes.",
	},
	{
		DrugID:     "phenytoin",
		Name:       "Phenytoin",
		BrandNames: []string{"Dilantin", "Phenytek"},
		DrugClass:  "Hydantoin anticonvulsant",
		Genes:      []string{"CYP2C9"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Consider a 25% reduction of the maintenance dose with level monitoring.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Reduce maintenance dose by 50% and titrate by therapeutic drug monitoring.",
				Classification: domain.CAUTION,
				Strength:       "strong",
				Implications:   "Reduced clearance; concentration-dependent neurotoxicity risk.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-phenytoin-and-cyp2c9-and-hla-b/",
	},
	{
		DrugID:     "celecoxib",
		Name:       "Celecoxib",
		BrandNames: []string{"Celebrex"},
		DrugClass:  "COX-2 selective NSAID",
		Genes:      []string{"CYP2C9"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Initiate at the lowest recommended dose.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Initiate at 25-50% of the lowest recommended dose, or choose an NSAID not metabolized by CYP2C9.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
				Implications:   "Substantially elevated exposure; gastrointestinal and cardiovascular risk.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/cpic-guideline-for-nsaids-based-on-cyp2c9-genotype/",
		FDALabel:     "Celebrex: in patients known or suspected to be CYP2C9 poor metabolizers, initiate treatment at half the lowest recommended dose.",
	},
	{
		DrugID:     "simvastatin",
		Name:       "Simvastatin",
		BrandNames: []string{"Zocor", "FloLipid"},
		DrugClass:  "HMG-CoA reductase inhibitor",
		Genes:      []string{"SLCO1B1"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_FUNCTION_KEY: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_FUNCTION_KEY: {
				Text:           "Prescribe no more than 20 mg/day, or choose an alternative statin (rosuvastatin, pravastatin).",
				Classification: domain.CAUTION,
				Strength:       "strong",
				Implications:   "Elevated simvastatin acid exposure; increased myopathy risk.",
			},
			domain.POOR_FUNCTION_KEY: {
				Text:           "Avoid simvastatin. Use an alternative statin at a low starting dose with CK monitoring.",
				Classification: domain.AVOID,
				Strength:       "strong",
				Implications:   "Markedly elevated exposure; high risk of myopathy and rhabdomyolysis.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-simvastatin-and-slco1b1/",
	},
	{
		DrugID:     "atorvastatin",
		Name:       "Atorvastatin",
		BrandNames: []string{"Lipitor"},
		DrugClass:  "HMG-CoA reductase inhibitor",
		Genes:      []string{"SLCO1B1"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_FUNCTION_KEY: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_FUNCTION_KEY: {
				Text:           "Limit dose to 40 mg/day; if higher doses are needed, monitor for muscle symptoms.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
			domain.POOR_FUNCTION_KEY: {
				Text:           "Limit dose to 20 mg/day or select rosuvastatin; monitor for muscle symptoms.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/cpic-guideline-for-statins/",
	},
	{
		DrugID:     "fluorouracil",
		Name:       "Fluorouracil",
		BrandNames: []string{"Adrucil", "Efudex"},
		DrugClass:  "Fluoropyrimidine antineoplastic",
		Genes:      []string{"DPYD"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per protocol.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Reduce starting dose by 50%, then titrate by toxicity or therapeutic drug monitoring.",
				Classification: domain.CAUTION,
				Strength:       "strong",
				Implications:   "Partial DPD deficiency; severe toxicity risk at full doses.",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Avoid fluorouracil. Select an alternative non-fluoropyrimidine regimen.",
				Classification: domain.AVOID,
				Strength:       "strong",
				Implications:   "Complete DPD deficiency; potentially fatal toxicity.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-fluoropyrimidines-and-dpyd/",
		FDALabel:     "Adrucil warning: withhold or permanently discontinue fluorouracil in patients with evidence of acute early-onset or unusually severe toxicity, which may indicate near complete or total absence of DPD activity.",
	},
	{
		DrugID:     "capecitabine",
		Name:       "Capecitabine",
		BrandNames: []string{"Xeloda"},
		DrugClass:  "Fluoropyrimidine antineoplastic",
		Genes:      []string{"DPYD"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per protocol.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Reduce starting dose by 50%, then titrate by toxicity.",
				Classification: domain.CAUTION,
				Strength:       "strong",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Avoid capecitabine. Select an alternative regimen.",
				Classification: domain.AVOID,
				Strength:       "strong",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-fluoropyrimidines-and-dpyd/",
		FDALabel:     "Xeloda contraindication: patients with known complete absence of dihydropyrimidine dehydrogenase (DPD) activity.",
	},
	{
		DrugID:     "azathioprine",
		Name:       "Azathioprine",
		BrandNames: []string{"Imuran", "Azasan"},
		DrugClass:  "Thiopurine immunosuppressant",
		Genes:      []string{"TPMT"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per label.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Start at 30-80% of target dose and titrate by tolerance over 2-4 weeks.",
				Classification: domain.CAUTION,
				Strength:       "strong",
				Implications:   "Accumulation of thioguanine nucleotides; myelosuppression risk.",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Drastically reduce dose (10% of target, thrice-weekly) or select an alternative agent.",
				Classification: domain.AVOID,
				Strength:       "strong",
				Implications:   "Severe, potentially fatal myelosuppression at standard doses.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-thiopurines-and-tpmt/",
		FDALabel:     "Imuran: patients with low or absent TPMT activity are at increased risk of severe, life-threatening myelotoxicity; TPMT testing should be considered.",
	},
	{
		DrugID:     "mercaptopurine",
		Name:       "Mercaptopurine",
		BrandNames: []string{"Purinethol", "Purixan"},
		DrugClass:  "Thiopurine antineoplastic",
		Genes:      []string{"TPMT"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per protocol.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Start at 30-80% of target dose; adjust by myelosuppression and disease-specific guidance.",
				Classification: domain.CAUTION,
				Strength:       "strong",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Reduce dose to 10% of target and administer thrice weekly instead of daily.",
				Classification: domain.AVOID,
				Strength:       "strong",
			},
		},
		ReferenceURL: "https://cpicpgx.org/guidelines/guideline-for-thiopurines-and-tpmt/",
	},
	{
		DrugID:     "irinotecan",
		Name:       "Irinotecan",
		BrandNames: []string{"Camptosar", "Onivyde"},
		DrugClass:  "Topoisomerase I inhibitor",
		Genes:      []string{"UGT1A1"},
		Recommendations: map[domain.PhenotypeKey]domain.Recommendation{
			domain.NORMAL_METABOLIZER: {
				Text:           "Standard dosing per protocol.",
				Classification: domain.STANDARD,
				Strength:       "strong",
			},
			domain.INTERMEDIATE_METABOLIZER: {
				Text:           "Standard dosing; monitor closely for neutropenia.",
				Classification: domain.CAUTION,
				Strength:       "moderate",
			},
			domain.POOR_METABOLIZER: {
				Text:           "Reduce starting dose by at least one level; escalate only if tolerated.",
				Classification: domain.CAUTION,
				Strength:       "strong",
				Implications:   "Reduced SN-38 glucuronidation; severe neutropenia risk.",
			},
		},
		ReferenceURL: "https://cpicpgx.org/gene/ugt1a1/",
		FDALabel:     "Camptosar: individuals homozygous for the UGT1A1*28 allele are at increased risk for neutropenia; a reduced initial dose should be considered.",
	},
}

// guidelinesByDrugID is built once at init.
var guidelinesByDrugID map[string]*domain.GuidelineEntry

func init() {
	guidelinesByDrugID = make(map[string]*domain.GuidelineEntry, len(guidelineEntries))
	for i := range guidelineEntries {
		guidelinesByDrugID[guidelineEntries[i].DrugID] = &guidelineEntries[i]
	}
}

// Guidelines returns the guideline table keyed by drug id.
// The returned map is shared and must not be mutated.
func Guidelines() map[string]*domain.GuidelineEntry {
	return guidelinesByDrugID
}

// GuidelineList returns the guideline entries in catalog order.
func GuidelineList() []domain.GuidelineEntry {
	out := make([]domain.GuidelineEntry, len(guidelineEntries))
	copy(out, guidelineEntries)
	return out
}
