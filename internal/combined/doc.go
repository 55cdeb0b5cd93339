// Package combined provides interaction benchmarks that test multiple
// components together.
//
// These benchmarks are more representative of real-world performance
// than isolated micro-benchmarks, as they capture the cumulative cost
// and any interactions between components.
package combined
