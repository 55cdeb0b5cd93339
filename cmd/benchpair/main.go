// Command benchpair is the paired microbenchmark harness CLI.
//
// Usage:
//
//	benchpair pair [filter]
//	benchpair calibrate
//	benchpair list
//	benchpair compare <other-binary>
package main

import "github.com/benchpair/benchpair/cmd/benchpair/cmd"

func main() {
	cmd.Execute()
}
