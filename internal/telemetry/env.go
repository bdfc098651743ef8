package telemetry

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by OptionsFromEnv.
const (
	EnvEndpoint    = "BEACON_OTLP_ENDPOINT"
	EnvHeaders     = "BEACON_OTLP_HEADERS"
	EnvSampleRatio = "BEACON_TRACE_SAMPLE_RATIO"
)

// OptionsFromEnv builds exporter options from the environment. Headers are
// given as comma-separated key=value pairs.
func OptionsFromEnv() (Options, error) {
	opts := Options{Endpoint: strings.TrimSpace(os.Getenv(EnvEndpoint))}

	if raw := os.Getenv(EnvHeaders); raw != "" {
		headers, err := parseHeaders(raw)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", EnvHeaders, err)
		}
		opts.Headers = headers
	}

	if raw := os.Getenv(EnvSampleRatio); raw != "" {
		ratio, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", EnvSampleRatio, err)
		}
		if ratio <= 0 || ratio > 1 {
			return Options{}, fmt.Errorf("%s: ratio %v outside (0, 1]", EnvSampleRatio, ratio)
		}
		opts.SampleRatio = ratio
	}

	return opts, nil
}

func parseHeaders(raw string) (map[string]string, error) {
	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("malformed header %q", pair)
		}
		headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return headers, nil
}
