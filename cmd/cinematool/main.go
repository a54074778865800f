package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/ivlev/cinematool/internal/config"
	"github.com/ivlev/cinematool/internal/engine"
	"github.com/ivlev/cinematool/internal/system"
)

var buildVersion = "dev"

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	log.SetOutput(os.Stdout)
	return log
}

func main() {
	_ = godotenv.Load()

	configPtr := flag.String("config", "", "YAML config file")
	modePtr := flag.String("mode", "", "Mode: "+strings.Join(config.Modes, ", "))
	inputDirPtr := flag.String("input-dir", "", "Directory scanned when no input files are given (default: input)")
	outputDirPtr := flag.String("output", "", "Output directory (default: output)")
	latestPtr := flag.Bool("latest", false, "Only process the newest matching file of the input directory")
	workersPtr := flag.Int("workers", 0, "Parallel workers (default: number of CPUs)")
	namePtr := flag.String("name", "", "Name of the record created by -mode new")
	widthPtr := flag.Int("width", 0, "Preview width in pixels")
	heightPtr := flag.Int("height", 0, "Preview height in pixels")
	strictPtr := flag.Bool("strict", false, "Fail on decode warnings")
	logLevelPtr := flag.String("log-level", "", "Log level: debug, info, warn, error")
	statsPtr := flag.Bool("stats", false, "Print a summary after the batch")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [files or directories...]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	log := newLogger()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	cfg.BuildVersion = buildVersion

	// flags given on the command line win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *modePtr
		case "input-dir":
			cfg.InputDir = *inputDirPtr
		case "output":
			cfg.OutputDir = *outputDirPtr
		case "latest":
			cfg.Latest = *latestPtr
		case "workers":
			cfg.Workers = *workersPtr
		case "name":
			cfg.Name = *namePtr
		case "width":
			cfg.PreviewWidth = *widthPtr
		case "height":
			cfg.PreviewHeight = *heightPtr
		case "strict":
			cfg.Strict = *strictPtr
		case "log-level":
			cfg.LogLevel = *logLevelPtr
		case "stats":
			cfg.ShowStats = *statsPtr
		}
	})
	if flag.NArg() > 0 {
		cfg.Inputs = flag.Args()
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	log.SetLevel(level)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] %v", err)
	}

	system.RaiseFileLimit(2048, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"build":   cfg.BuildVersion,
		"mode":    cfg.Mode,
		"workers": cfg.Workers,
	}).Info("[*] cinematool")

	project := engine.NewProject(cfg, log)
	results, err := project.Run(ctx)
	if err != nil {
		stop()
		log.Fatalf("[-] %v", err)
	}

	var outputs []string
	for _, r := range results {
		outputs = append(outputs, r.Outputs...)
	}
	switch {
	case len(outputs) == 1:
		log.Infof("[+++] Success! Result: %s", outputs[0])
	case len(outputs) > 1:
		log.Infof("[+++] Success! %d files written to %s", len(outputs), cfg.OutputDir)
	default:
		log.Infof("[+++] Success! %d file(s) checked", len(results))
	}
}
