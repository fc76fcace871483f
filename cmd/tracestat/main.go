package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"tracestat/internal/config"
	"tracestat/internal/event"
	"tracestat/internal/iox"
	"tracestat/internal/report"
	"tracestat/internal/rules"
	"tracestat/internal/stats"
	"tracestat/internal/trace"
)

var version = "v1.0"

func main() {
	cfg := config.Load()

	rulesPath := flag.String("rules", cfg.RulesPath, "Filter rules file (.json or .yaml)")
	showPlan := flag.Bool("plan", false, "Show plan and exit")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: tracestat [-rules file] <trace.xml>")
	}
	inPath := flag.Arg(0)

	r, err := rules.Load(*rulesPath)
	if err != nil {
		log.Printf("warning: %v", err)
	}
	// Env overrides sit on top of the rules file
	if cfg.ApplicationName != "" {
		r.ApplicationName = cfg.ApplicationName
	}
	if cfg.TextContains != "" {
		r.TextContains = cfg.TextContains
	}

	if *showPlan {
		fmt.Printf("==== Tracestat %s Execution Plan ====\n", version)
		fmt.Printf("Input              : %s\n", inPath)
		fmt.Printf("Rules file         : %s\n", *rulesPath)
		fmt.Printf("Application name   : %s\n", r.ApplicationName)
		fmt.Printf("TextData contains  : %s\n", r.TextContains)
		return
	}

	start := time.Now()
	defer func() {
		log.Printf("⏱️ completed in %v", time.Since(start))
	}()

	if err := run(inPath, r, os.Stdout); err != nil {
		log.Fatal(err)
	}
	log.Println("✅ Summary complete")
}

// run is the whole pipeline: load → extract → filter → aggregate → print.
// Only the nine summary lines go to out; everything else is stderr logging.
func run(inPath string, r *rules.Rules, out io.Writer) error {
	in, err := iox.OpenAuto(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	doc, err := trace.Parse(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inPath, err)
	}

	relevant, err := event.ExtractRelevant(doc, r)
	if err != nil {
		return err
	}
	filtered := event.Select(relevant, r)
	log.Printf("events: relevant=%d filtered=%d", len(relevant), len(filtered))

	summary, err := stats.Summarize(filtered)
	if err != nil {
		return err
	}
	return report.Render(out, summary)
}
