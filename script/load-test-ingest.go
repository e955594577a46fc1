package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogEntry is one line of an ingest batch
type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Args    []any  `json:"args,omitempty"`
}

// IngestRequest is the payload of POST /api/v1/logs
type IngestRequest struct {
	Context            string     `json:"context"`
	Entries            []LogEntry `json:"entries"`
	ReportingThreshold string     `json:"reportingThreshold,omitempty"`
}

// IngestResponse is the subset of the response the load test reads
type IngestResponse struct {
	Accepted int `json:"accepted"`
	Reports  int `json:"reports"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Reports      int
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalReports       int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ContextStats       map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// BatchScenario defines the levels of one generated batch
type BatchScenario struct {
	Name   string
	Levels []string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	contextsStr := flag.String("contexts", "orders,billing,inventory", "Comma-separated list of logger contexts")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	reportingThreshold := flag.String("report", "", "Reporting threshold override sent with every batch")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var contexts []string
	for _, c := range strings.Split(*contextsStr, ",") {
		if c = strings.TrimSpace(c); c != "" {
			contexts = append(contexts, c)
		}
	}
	if len(contexts) == 0 {
		contexts = []string{"default"}
	}

	scenarios := []BatchScenario{
		{"Quiet", []string{"DEBUG", "INFO", "INFO"}},
		{"Chatty", []string{"DEBUG", "DEBUG", "INFO", "INFO", "INFO", "WARN"}},
		{"Degraded", []string{"INFO", "WARN", "WARN", "ERROR"}},
		{"Outage", []string{"WARN", "ERROR", "FATAL"}},
	}

	fmt.Printf("Load testing log ingestion across %d contexts: %v\n", len(contexts), contexts)
	fmt.Printf("Batch scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ContextStats:    make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *reportingThreshold, *delayMs, contexts, scenarios, jobs, results, stats)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
				stats.TotalReports += result.Reports
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(id int, baseURL, reportingThreshold string, delayMs int, contexts []string,
	scenarios []BatchScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	apiURL := baseURL + "/api/v1/logs"

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		contextName := contexts[rand.Intn(len(contexts))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.ContextStats[contextName]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		batch := IngestRequest{
			Context:            contextName,
			ReportingThreshold: reportingThreshold,
			Entries:            make([]LogEntry, len(scenario.Levels)),
		}
		for i, level := range scenario.Levels {
			batch.Entries[i] = LogEntry{
				Level:   level,
				Message: "worker {0} job {1} step {2}",
				Args:    []any{id, jobID, i},
			}
		}

		jsonData, err := json.Marshal(batch)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", fmt.Sprintf("load-%d-%d", id, jobID))

		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if result.Success {
				var body IngestResponse
				if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
					result.Reports = body.Reports
				}
			} else {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Reports Published:   %d\n", stats.TotalReports)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/second:     %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	printDistribution("CONTEXT DISTRIBUTION", stats.ContextStats)
	printDistribution("SCENARIO DISTRIBUTION", stats.ScenarioStats)

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}

func printDistribution(title string, counts map[string]int) {
	fmt.Printf("\n----------------- %s -----------------\n", title)
	total := 0
	for _, count := range counts {
		total += count
	}
	for name, count := range counts {
		if count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", name, count,
				float64(count)/float64(total)*100)
		}
	}
}
