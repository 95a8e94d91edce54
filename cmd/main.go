package main

import (
	"context"
	"dommorph/config"
	"dommorph/pkg/assembler"
	"dommorph/pkg/domain"
	"dommorph/pkg/registration"
	"dommorph/pkg/report"
	"dommorph/pkg/slack"
	"dommorph/pkg/worker"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/arl/statsviz"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	a := kingpin.New(filepath.Base(os.Args[0]), "Generates lookalike variations of a domain and checks their registration with WHOIS")
	configFile := a.Flag("configfile", "config file").Short('c').ExistingFile()
	outputDir := a.Flag("output-dir", "directory of the CSV report").Short('o').String()
	debugAddr := a.Flag("debug-addr", "address of the runtime statistics page, disabled if empty").String()
	noProgress := a.Flag("no-progress", "hide the progress bar").Bool()
	target := a.Arg("domain", "domain to protect, e.g. example.com").Required().String()
	a.HelpFlag.Short('h')

	_, err := a.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "Error parsing commandline arguments"))
		a.Usage(os.Args[1:])
		os.Exit(2)
	}

	cfg, err := config.GetConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *debugAddr != "" {
		cfg.DebugAddr = *debugAddr
	}
	if *noProgress {
		cfg.Progress = false
	}

	name, err := domain.Split(*target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		a.Usage(os.Args[1:])
		os.Exit(2)
	}

	if cfg.DebugAddr != "" {
		go serveStats(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg.Log.Infof("Generating domain variations for: %v", *target)
	candidates := assembler.Assemble(name, cfg.AssemblerOptions())
	cfg.Log.WithField("techniques", cfg.Techniques).Infof("%d variations of %v to check", len(candidates), name)

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = worker.NewProgressBar(len(candidates), os.Stderr)
	}
	checker := registration.NewChecker(registration.NewWhoisClient(cfg.WhoisTimeout), cfg.WhoisServer, cfg.Log)
	results := worker.RunCheckWorker(ctx, checker, candidates, bar, cfg.Log)

	summary := worker.GetSummary(results)
	cfg.Log.Infof("%d registered, %d not registered, %d errors", summary.Registered, summary.NotRegistered, summary.Errors)

	path, err := report.Save(cfg.OutputDir, *target, results)
	if err != nil {
		cfg.Log.Fatal(err)
	}
	cfg.Log.Infof("Results saved to %v", path)

	if cfg.SlackWebHookURL != "" {
		if err := slack.NewPayload(cfg, *target, results).Post(cfg); err != nil {
			cfg.Log.Warn(err)
		}
	}
}

// serveStats exposes the runtime statistics page while the scan runs
func serveStats(cfg *config.Configuration) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		cfg.Log.Warnf("Can't register statistics page: %v", err)
		return
	}
	cfg.Log.Infof("Runtime statistics available at http://%v/debug/statsviz/", cfg.DebugAddr)
	if err := http.ListenAndServe(cfg.DebugAddr, mux); err != nil {
		cfg.Log.Warnf("Statistics server stopped: %v", err)
	}
}
