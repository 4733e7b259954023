// Command geocode fills missing lat/lng columns in a venue CSV using
// OpenStreetMap Nominatim.
//
// Usage:
//
//	geocode venues_input.csv
//
// Rooms and halls often aren't in OSM, so lookups fall back to the parent
// venue name. Nominatim is rate limited; the tool stays under one request
// per second. Failures land in geocode_report.json.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"
)

const (
	nominatimURL = "https://nominatim.openstreetmap.org/search"
	userAgent    = "VenueScout/1.0 (venue catalog geocoder)"
	outputPath   = "venues_geocoded.csv"
	reportPath   = "geocode_report.json"

	// Slightly slower than Nominatim's 1 req/sec limit.
	requestInterval = 1500 * time.Millisecond
)

type geocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reportEntry struct {
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Used    string   `json:"used,omitempty"`
	Query   string   `json:"query,omitempty"`
	Match   string   `json:"match,omitempty"`
	Queries []string `json:"queries,omitempty"`
	Err     string   `json:"err,omitempty"`
}

var (
	parenRe = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	spaceRe = regexp.MustCompile(`\s+`)
	roomRe  = regexp.MustCompile(`(?i)\b(grand\s+ballroom|ballroom|function\s+rooms?|function\s+halls?|events?\s+spaces?|banquet\s+halls?|halls?|plenary\s+hall|main\s+theater|main\s+theatre|theater|theatre|arena|tent|pavilion|convention\s+center|convention\s+centre)\b.*$`)

	roomSeparators = []string{" - ", " – ", " — ", " | ", ": "}
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: geocode venues_input.csv")
		os.Exit(1)
	}

	rows, err := readCSV(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	if len(rows) < 2 {
		log.Fatal("CSV looks empty")
	}

	header := rows[0]
	nameI := columnIndex(header, "name")
	areaI := columnIndex(header, "area")
	addrI := columnIndex(header, "address")
	latI := columnIndex(header, "lat")
	lngI := columnIndex(header, "lng")
	if nameI < 0 || areaI < 0 || addrI < 0 || latI < 0 || lngI < 0 {
		log.Fatal("CSV must include columns: name, area, address, lat, lng")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	var report []reportEntry
	total := len(rows) - 1

	for r := 1; r < len(rows); r++ {
		row := rows[r]
		name := cleanText(row[nameI])
		area := cleanText(row[areaI])
		address := cleanText(row[addrI])

		// Keep rows that already carry coordinates
		if cleanText(row[latI]) != "" && cleanText(row[lngI]) != "" {
			report = append(report, reportEntry{Name: name, Status: "kept"})
			continue
		}

		fmt.Printf("Geocoding %d/%d: %s\n", r, total, name)

		// Lookup strategy, most to least specific:
		// full name, parent venue name, parent venue name without address.
		parent := parentName(name)
		queries := []struct {
			label string
			query string
		}{
			{"full", makeQuery(name, area, address)},
			{"parent", makeQuery(parent, area, address)},
			{"parent+area", makeQuery(parent, area, "")},
		}

		entry := reportEntry{Name: name, Status: "NOT FOUND"}
		for _, q := range queries {
			result, err := geocode(client, q.query)
			if err != nil {
				entry.Status = "ERROR"
				entry.Err = err.Error()
				break
			}
			if result != nil {
				row[latI] = result.Lat
				row[lngI] = result.Lon
				entry.Status = "ok"
				entry.Used = q.label
				entry.Query = q.query
				entry.Match = result.DisplayName
				break
			}
			time.Sleep(requestInterval)
		}

		if entry.Status != "ok" {
			for _, q := range queries {
				entry.Queries = append(entry.Queries, q.query)
			}
		}
		report = append(report, entry)

		time.Sleep(requestInterval)
	}

	if err := writeCSV(outputPath, rows); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	if err := writeReport(reportPath, report); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	fmt.Printf("Wrote %s\n", outputPath)
	fmt.Printf("Report: %s (check NOT FOUND/ERROR rows)\n", reportPath)
}

func geocode(client *http.Client, query string) (*geocodeResult, error) {
	endpoint, _ := url.Parse(nominatimURL)
	params := endpoint.Query()
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", query)
	endpoint.RawQuery = params.Encode()

	const maxTries = 5
	for attempt := 1; attempt <= maxTries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusOK {
			var results []geocodeResult
			err := json.NewDecoder(resp.Body).Decode(&results)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
			if len(results) == 0 {
				return nil, nil
			}
			return &results[0], nil
		}
		resp.Body.Close()

		// Rate limiting or transient errors get a linear backoff
		switch resp.StatusCode {
		case http.StatusForbidden, http.StatusTooManyRequests,
			http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
			wait := time.Duration(attempt) * 2500 * time.Millisecond
			fmt.Printf("HTTP %d on attempt %d/%d, waiting %v...\n", resp.StatusCode, attempt, maxTries, wait)
			time.Sleep(wait)
			continue
		default:
			return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, query)
		}
	}

	return nil, fmt.Errorf("exhausted retries for %s", query)
}

func cleanText(s string) string {
	s = parenRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// parentName strips room and hall suffixes so the lookup targets the parent
// venue, which is far more likely to exist in OSM.
func parentName(name string) string {
	n := cleanText(name)
	for _, sep := range roomSeparators {
		if idx := strings.Index(n, sep); idx >= 0 {
			n = strings.TrimSpace(n[:idx])
		}
	}
	n = strings.TrimSpace(roomRe.ReplaceAllString(n, ""))

	if n == "" {
		n = cleanText(name)
		for _, sep := range roomSeparators {
			if idx := strings.Index(n, sep); idx >= 0 {
				n = strings.TrimSpace(n[:idx])
			}
		}
	}
	if n == "" {
		return cleanText(name)
	}
	return n
}

func makeQuery(parts ...string) string {
	all := append([]string{}, parts...)
	all = append(all, "Metro Manila", "Philippines")

	seen := make(map[string]bool)
	var out []string
	for _, p := range all {
		t := cleanText(p)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return strings.Join(out, ", ")
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func writeReport(path string, report []reportEntry) error {
	var failed []reportEntry
	for _, entry := range report {
		if entry.Status == "NOT FOUND" || entry.Status == "ERROR" {
			failed = append(failed, entry)
		}
	}

	payload := map[string]interface{}{
		"total":    len(report),
		"notFound": failed,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
