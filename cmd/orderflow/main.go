// Command orderflow reads a market-data NDJSON stream and writes, for every
// symbol it encounters, a text file of PASSIVE/CANCEL/AGGRESSIVE book-change
// lines.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"

	"orderflow/internal/ingest"
	"orderflow/internal/obs"
	"orderflow/internal/ops"
	"orderflow/internal/scheduler"
)

func main() {
	if err := run(); err != nil {
		logs.Errorf("orderflow: %v", err)
		os.Exit(1)
	}
}

func run() error {
	inputFlag := flag.String("input", "", "Path to NDJSON market-data input")
	outDirFlag := flag.String("out", "out", "Directory to write per-symbol output files")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "Worker pool size (<= 0 uses GOMAXPROCS)")
	configFlag := flag.String("config", "", "Path to optional JSON config, layered under these flags")
	pprofFlag := flag.String("pprof-profile", "", "Pyroscope server address; empty disables profiling")
	flag.Parse()

	cfg, err := ops.Load(*configFlag, ops.Config{
		Input:     *inputFlag,
		OutputDir: *outDirFlag,
		Workers:   *workersFlag,
		PprofAddr: *pprofFlag,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Flags set explicitly on the command line take precedence over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "out":
			cfg.OutputDir = *outDirFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "pprof-profile":
			cfg.PprofAddr = *pprofFlag
		}
	})

	if cfg.PprofAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "orderflow",
			ServerAddress:   cfg.PprofAddr,
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			return fmt.Errorf("pyroscope start failed: %w", err)
		}
		defer func() { _ = profiler.Stop() }()
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	metrics := obs.NewMetrics()
	sched := scheduler.New(cfg.OutputDir, metrics)

	if err := ingest.Run(cfg.Input, sched); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	sched.Execute(cfg.Workers)

	if err := sched.Close(); err != nil {
		return fmt.Errorf("close sinks: %w", err)
	}

	snap := metrics.Snapshot()
	logs.Infof("orderflow: books=%d trades=%d tasks_scheduled=%d tasks_executed=%d trades_dropped=%d",
		snap.BooksSeen, snap.TradesSeen, snap.TasksScheduled, snap.TasksExecuted, snap.TradesDropped)
	return nil
}
