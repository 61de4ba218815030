package app

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/evanrichards/tsorder/internal/processor"
	"github.com/evanrichards/tsorder/internal/report"
)

type pool struct {
	workers int
	write   bool
	logger  *slog.Logger
}

// processFiles runs the processor over files on a fixed set of workers.
// Files not started before ctx is cancelled are left out of the result.
func processFiles(ctx context.Context, proc *processor.Processor, files []string, p pool) []report.FileReport {
	// Set up worker pool
	workerCount := p.workers
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	workerCount = min(workerCount, len(files))

	// Channels for work distribution
	fileChan := make(chan string, len(files))
	resultChan := make(chan report.FileReport, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			logger := p.logger.With("worker", worker)
			for file := range fileChan {
				if ctx.Err() != nil {
					continue
				}
				resultChan <- processOne(ctx, proc, file, p.write, logger)
			}
		}(i)
	}

	// Send files to workers
	for _, file := range files {
		fileChan <- file
	}
	close(fileChan)

	wg.Wait()
	close(resultChan)

	results := make([]report.FileReport, 0, len(files))
	for r := range resultChan {
		results = append(results, r)
	}
	return results
}

func processOne(ctx context.Context, proc *processor.Processor, file string, write bool, logger *slog.Logger) report.FileReport {
	res, err := proc.ProcessFile(ctx, file, write)
	if err != nil {
		logger.Error("processing failed", "path", file, "error", err)
		return report.FileReport{Path: file, Error: err.Error()}
	}

	logger.Debug("processed", "path", file,
		"containers", res.ContainersFound,
		"unsorted", res.ContainersNeedSort,
		"passes", res.Passes,
		"cached", res.Cached)

	return report.FileReport{
		Path:               file,
		Changed:            res.Changed,
		ContainersFound:    res.ContainersFound,
		ContainersNeedSort: res.ContainersNeedSort,
		Diagnostics:        res.Diagnostics,
		Cached:             res.Cached,
	}
}
