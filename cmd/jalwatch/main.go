// jalwatch is the offline report tool: it loads record files, runs the
// engines, and prints formatted summaries for panchayat administrators.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/invincible-jha/aumai-jaldrishti/internal/alerts"
	"github.com/invincible-jha/aumai-jaldrishti/internal/budget"
	"github.com/invincible-jha/aumai-jaldrishti/internal/coverage"
	"github.com/invincible-jha/aumai-jaldrishti/internal/groundwater"
	"github.com/invincible-jha/aumai-jaldrishti/internal/loader"
	"github.com/invincible-jha/aumai-jaldrishti/internal/quality"
	"github.com/invincible-jha/aumai-jaldrishti/internal/rainfall"
	"github.com/invincible-jha/aumai-jaldrishti/internal/sources"
)

const disclaimer = "Verify water quality data with local authorities before consumption decisions."

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "source":
		err = runSource(os.Args[2:])
	case "quality":
		err = runQuality(os.Args[2:])
	case "fhtc":
		err = runFHTC(os.Args[2:])
	case "groundwater":
		err = runGroundwater(os.Args[2:])
	case "rainfall":
		err = runRainfall(os.Args[2:])
	case "budget":
		err = runBudget(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: jalwatch <command> [flags]

commands:
  source       register and summarize water sources
  quality      grade water quality reports against BIS limits
  fhtc         report Jal Jeevan Mission tap-connection coverage
  groundwater  show groundwater history and trends for a panchayat
  rainfall     classify drought/flood risk for a panchayat and year
  budget       estimate water demand and supply gap`)
}

func runSource(args []string) error {
	fs := flag.NewFlagSet("source", flag.ExitOnError)
	input := fs.String("input", "", "water source JSON file")
	fs.Parse(args)
	if *input == "" {
		return fmt.Errorf("-input is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return err
	}
	list, err := loader.Sources(data)
	if err != nil {
		return err
	}

	registry := sources.NewRegistry()
	for _, s := range list {
		registry.Register(s)
		status := "Functional"
		if !s.IsFunctional {
			status = "Non-functional"
		}
		fmt.Printf("  [%s] %s (%s)\n", status, s.Name, s.SourceType)
		fmt.Printf("    Yield: %.0f LPD (%.0f%% capacity)\n", s.CurrentYield, s.YieldPct())
	}

	if len(list) > 0 {
		pid := list[0].PanchayatID
		fmt.Printf("\nTotal supply for %s: %.0f liters/day\n", pid, registry.TotalSupplyLPD(pid))
		low := registry.LowYield(pid, sources.DefaultLowYieldPct)
		if len(low) > 0 {
			fmt.Printf("Low yield sources (%d):\n", len(low))
			for _, s := range low {
				fmt.Printf("  - %s: %.0f%% capacity\n", s.Name, s.YieldPct())
			}
		}
	}
	return nil
}

func runQuality(args []string) error {
	fs := flag.NewFlagSet("quality", flag.ExitOnError)
	input := fs.String("input", "", "water quality report JSON file")
	fs.Parse(args)
	if *input == "" {
		return fmt.Errorf("-input is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return err
	}
	reports, err := loader.QualityReports(data)
	if err != nil {
		return err
	}

	analyzer := quality.NewAnalyzer()
	for i := range reports {
		report := &reports[i]
		grade := analyzer.Grade(report)
		fmt.Printf("\nSource %s | Date: %s\n", report.SourceID, report.TestDate)
		fmt.Printf("  Grade: %s\n", strings.ToUpper(string(grade)))
		fmt.Printf("  pH: %g | TDS: %g ppm | Turbidity: %g NTU\n", report.PH, report.TDSPPM, report.TurbidityNTU)

		if issues := analyzer.IdentifyContaminants(report); len(issues) > 0 {
			fmt.Println("  Issues:")
			for _, issue := range issues {
				fmt.Printf("    - %s\n", issue)
			}
		}
		if treatments := analyzer.RecommendTreatment(report); len(treatments) > 0 {
			fmt.Println("  Recommended treatment:")
			for _, t := range treatments {
				fmt.Printf("    - %s\n", t)
			}
		}
	}
	return nil
}

func runFHTC(args []string) error {
	fs := flag.NewFlagSet("fhtc", flag.ExitOnError)
	input := fs.String("input", "", "FHTC status JSON file")
	fs.Parse(args)
	if *input == "" {
		return fmt.Errorf("-input is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return err
	}
	statuses, err := loader.FHTCStatuses(data)
	if err != nil {
		return err
	}

	tracker := coverage.NewTracker()
	for _, s := range statuses {
		tracker.Update(s)
	}

	fmt.Println("\nJal Jeevan Mission - FHTC Coverage Report")
	fmt.Println(strings.Repeat("=", 55))

	for _, status := range tracker.All() {
		gap := tracker.DemandGap(status.PanchayatID)
		fmt.Printf("\n%s (%s)\n", status.PanchayatName, status.PanchayatID)
		fmt.Printf("  Households: %d\n", status.TotalHouseholds)
		fmt.Printf("  FHTC provided: %d (%.1f%%)\n", status.FHTCProvided, status.CoveragePct())
		fmt.Printf("  FHTC functional: %d (%.1f%%)\n", status.FHTCFunctional, status.FunctionalPct())
		if gap > 0 {
			fmt.Printf("  Gap: %d households without tap connection\n", gap)
		}
	}

	summary := tracker.Summary()
	fmt.Printf("\nOverall: %.1f%% coverage, %.1f%% functional\n", summary.AvgCoveragePct, summary.AvgFunctionalPct)
	return nil
}

func runGroundwater(args []string) error {
	fs := flag.NewFlagSet("groundwater", flag.ExitOnError)
	input := fs.String("input", "", "groundwater JSON file")
	panchayat := fs.String("panchayat", "", "panchayat ID")
	fs.Parse(args)
	if *input == "" || *panchayat == "" {
		return fmt.Errorf("-input and -panchayat are required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return err
	}
	records, err := loader.GroundwaterLevels(data)
	if err != nil {
		return err
	}

	monitor := groundwater.NewMonitor()
	for _, r := range records {
		monitor.Add(r)
	}

	fmt.Printf("\nGroundwater Report: %s\n", *panchayat)
	fmt.Println(strings.Repeat("=", 45))

	for _, record := range monitor.ByPanchayat(*panchayat) {
		category := groundwater.CategorizeLevel(record.DepthMeters)
		trend := "^"
		if record.IsDeclining() {
			trend = "v"
		}
		fmt.Printf("  %d %-15s %6.1fm (%s) %s %+.1fm\n",
			record.Year, record.Season, record.DepthMeters, category, trend, record.ChangeMeters())
	}

	declining := monitor.DecliningTrend(*panchayat, groundwater.DefaultTrendYears)
	fmt.Printf("\nDeclining trend (3yr): %s\n", yesNo(declining))
	fmt.Printf("Recharge potential: %s\n", monitor.RechargePotential(*panchayat))

	if latest, ok := monitor.Latest(*panchayat); ok {
		engine := alerts.NewEngine()
		for _, alert := range engine.CheckGroundwater(&latest) {
			fmt.Printf("  [%s] %s\n", strings.ToUpper(string(alert.Level)), alert.Message)
		}
	}
	return nil
}

func runRainfall(args []string) error {
	fs := flag.NewFlagSet("rainfall", flag.ExitOnError)
	input := fs.String("input", "", "rainfall JSON file")
	panchayat := fs.String("panchayat", "", "panchayat ID")
	year := fs.Int("year", 0, "year")
	fs.Parse(args)
	if *input == "" || *panchayat == "" || *year == 0 {
		return fmt.Errorf("-input, -panchayat, and -year are required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return err
	}
	records, err := loader.RainfallRecords(data)
	if err != nil {
		return err
	}

	analyzer := rainfall.NewAnalyzer()
	for _, r := range records {
		analyzer.Add(r)
	}

	monsoon := analyzer.MonsoonPerformance(*panchayat, *year)

	fmt.Printf("\nRainfall Analysis: %s | %d\n", *panchayat, *year)
	fmt.Println(strings.Repeat("=", 45))
	fmt.Printf("  Annual: %.0f mm (normal: %.0f mm)\n", analyzer.AnnualTotal(*panchayat, *year), analyzer.AnnualNormal(*panchayat, *year))
	fmt.Printf("  Deviation: %+.1f%%\n", analyzer.AnnualDeviationPct(*panchayat, *year))
	fmt.Printf("  Drought risk: %s\n", analyzer.DroughtRisk(*panchayat, *year))
	fmt.Printf("  Flood risk: %s\n", analyzer.FloodRisk(*panchayat, *year))
	fmt.Printf("\n  Monsoon (Jun-Sep): %.0f mm vs %.0f mm (%+.1f%%)\n", monsoon.ActualMM, monsoon.NormalMM, monsoon.DeviationPct)
	return nil
}

func runBudget(args []string) error {
	fs := flag.NewFlagSet("budget", flag.ExitOnError)
	population := fs.Int("population", 0, "village population")
	livestock := fs.Int("livestock", 0, "livestock count")
	irrigatedHa := fs.Float64("irrigated-ha", 0, "irrigated hectares")
	supplyLPD := fs.Float64("supply-lpd", 0, "current supply (liters/day)")
	fs.Parse(args)
	if *population <= 0 {
		return fmt.Errorf("-population is required")
	}

	planner := budget.NewPlanner()
	wb := planner.EstimateDemand(*population, *livestock, *irrigatedHa)
	wb.TotalSupplyLPD = *supplyLPD

	fmt.Println("\nWater Budget Estimate")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("  Population: %d\n", *population)
	fmt.Printf("  Domestic demand:     %12.0f LPD\n", wb.DomesticDemandLPD)
	fmt.Printf("  Agriculture demand:  %12.0f LPD\n", wb.AgricultureDemandLPD)
	fmt.Printf("  Total demand:        %12.0f LPD\n", wb.TotalDemandLPD)
	fmt.Printf("  Current supply:      %12.0f LPD\n", *supplyLPD)
	fmt.Printf("  Surplus/Deficit:     %+12.0f LPD\n", wb.SurplusDeficitLPD())

	if *supplyLPD > 0 {
		fmt.Printf("\n  Sustainability index: %.0f/100\n", planner.SustainabilityIndex(&wb))
		fmt.Printf("  LPCD: %.0f (JJM standard: %d)\n", *supplyLPD/float64(*population), coverage.JJMLPCDStandard)
	}

	fmt.Println("\n" + disclaimer)
	return nil
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "No"
}
