// idlint checks identifier candidates against the formats understood by the
// library: URI-style identifiers, legacy base58 identifiers, or either.
// Candidates come from the command line or, when none are given, one per
// line on stdin. Exits 1 if any candidate fails the selected check.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/zenGate-Global/palmyra-identity/identifier"
	"github.com/zenGate-Global/palmyra-identity/logging"
)

type config struct {
	LogLevel string `env:"IDLINT_LOG_LEVEL" envDefault:"warn"`
}

func main() {
	format := flag.String("format", "any", `identifier format to check: "any", "uri", or "legacy"`)
	quiet := flag.Bool("quiet", false, "suppress per-candidate output; report via exit status only")
	flag.Parse()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.NewLogger(logging.Config{Component: "idlint", Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	check, err := checker(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	candidates := flag.Args()
	if len(candidates) == 0 {
		candidates, err = readCandidates(os.Stdin)
		if err != nil {
			logger.Error("read stdin", zap.Error(err))
			os.Exit(2)
		}
	}

	failed := 0
	for _, candidate := range candidates {
		ok := check(candidate)
		if !ok {
			failed++
		}
		logger.Debug("checked candidate",
			zap.String("candidate", candidate),
			zap.String("format", *format),
			zap.Bool("valid", ok))
		if !*quiet {
			verdict := "valid"
			if !ok {
				verdict = "invalid"
			}
			fmt.Printf("%s\t%s\n", verdict, candidate)
		}
	}

	if failed > 0 {
		logger.Warn("invalid identifiers found",
			zap.Int("invalid", failed),
			zap.Int("total", len(candidates)))
		os.Exit(1)
	}
}

func checker(format string) (func(string) bool, error) {
	switch format {
	case "uri":
		return identifier.IsURIIdentifier, nil
	case "legacy":
		return identifier.LegacyIdentifier().MatchString, nil
	case "any":
		return func(candidate string) bool {
			return identifier.IsURIIdentifier(candidate) ||
				identifier.LegacyIdentifier().MatchString(candidate)
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want \"any\", \"uri\", or \"legacy\")", format)
	}
}

func readCandidates(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var out []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	return out, scanner.Err()
}
