// Package taxsim simulates a rule-based equity portfolio over a historical
// trade ledger and computes post-tax cash flow under a two-bracket
// (short-term / long-term) capital-gains regime.
//
// The core is a deterministic chronological replay: a fixed investable
// corpus is split across at most N concurrently held positions, entries and
// exits are processed in date order (all of a date's exits settle before any
// of its entries), and each date's exit batch is reconciled into a single
// tax figure whose net post-tax proceeds flow back into the corpus.
//
// The main pieces are:
//   - Trade: one position's lifecycle, from entry through settlement.
//   - Portfolio: the capital ledger owning the corpus and the open positions.
//   - ComputeTax: the pure per-batch tax reconciliation with loss offsetting.
//   - Processor: the date-ordered replay engine tying them together.
//
// Around the core sit the tolerant CSV ingestion boundary, a reporting view
// with calendar pivots, and the journal and renderer packages that persist
// and display finished runs. This package is the foundation of the `tpt`
// command-line tool.
package taxsim
