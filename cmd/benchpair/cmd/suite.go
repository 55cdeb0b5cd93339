package cmd

import (
	"os"

	"github.com/benchpair/benchpair/internal/payloads"
	"github.com/benchpair/benchpair/internal/registry"
	"github.com/benchpair/benchpair/internal/reporter"
)

// builtinSuite wires this repository's own tick/cancel/queue
// implementations (internal/payloads) into a SimpleRegistry, the fixture
// suite the pair/calibrate/list subcommands operate on by default. These
// payloads are illustrative fixtures exercising the harness end to end,
// not a generator library.
func builtinSuite() *registry.SimpleRegistry {
	r := registry.NewSimple()

	baseline, candidate := payloads.TickerPair()
	r.AddPair(baseline, candidate)

	baseline, candidate = payloads.CancelerPair()
	r.AddPair(baseline, candidate)

	baseline, candidate = payloads.QueuePair()
	r.AddPair(baseline, candidate)

	return r
}

func newReporter(verbose bool) reporter.Reporter {
	if verbose {
		return reporter.Verbose{Out: os.Stdout}
	}
	return reporter.Console{Out: os.Stdout}
}
