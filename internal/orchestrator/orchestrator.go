package orchestrator

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/dcastel/transcript-flow/internal/pipeline"
)

// Run reads the URL list, partitions it into ordered batches and runs
// the pipeline over every source. A source's failure is recorded in its
// outcome and never aborts siblings or later batches. Source order is
// preserved in the returned results.
func (o *implOrchestrator) Run(ctx context.Context, urlFile string) ([]pipeline.Result, error) {
	urls, err := readURLList(urlFile)
	if err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	if len(urls) == 0 {
		o.logger.Warn(ctx, "URL list %s is empty", urlFile)
		return nil, nil
	}

	batches := partition(urls, o.batchSize)
	o.logger.Info(ctx, "Processing %d sources in %d batches of up to %d", len(urls), len(batches), o.batchSize)

	results := make([]pipeline.Result, 0, len(urls))
	sem := newSemaphore(o.maxConcurrent)

	for batchNum, batch := range batches {
		o.logger.Info(ctx, "Starting batch %d (%d sources)", batchNum, len(batch))

		batchResults := make([]pipeline.Result, len(batch))
		var wg sync.WaitGroup

		for i, url := range batch {
			if err := sem.acquire(ctx); err != nil {
				// Let in-flight sources finish writing their outcomes
				// before abandoning the run.
				wg.Wait()
				return results, err
			}

			wg.Add(1)
			go func(i int, url string) {
				defer wg.Done()
				defer sem.release()
				batchResults[i] = o.pipeline.Process(ctx, url)
			}(i, url)
		}

		wg.Wait()

		for _, res := range batchResults {
			if res.Failed() {
				o.logger.Warn(ctx, "Batch %d: %s failed (%s)", batchNum, res.URL, res.Reason)
			}
		}
		results = append(results, batchResults...)

		o.logger.Info(ctx, "Finished batch %d", batchNum)
	}

	return results, nil
}

// partition splits urls into consecutive batches of up to size entries,
// preserving order. The last batch may be shorter.
func partition(urls []string, size int) [][]string {
	var batches [][]string
	for start := 0; start < len(urls); start += size {
		end := start + size
		if end > len(urls) {
			end = len(urls)
		}
		batches = append(batches, urls[start:end])
	}
	return batches
}

// readURLList reads one URL per line, ignoring blank lines.
func readURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}
