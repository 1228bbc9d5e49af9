// Package bankroll provides the core engine for a personal poker session
// ledger. It is designed to be local-first and forgiving: data lives in a
// single human-readable JSON file, and anything that file contains is
// normalized into a valid session rather than rejected.
//
// The core functionalities include:
//   - Session Ledger: the authoritative in-memory list of recorded sessions,
//     with create, update and delete operations that persist the whole ledger
//     after every mutation.
//   - Sanitization: a total function turning arbitrary decoded data into a
//     structurally valid Session, so corrupted or hand-edited files never
//     crash the application.
//   - Reports: pure derivations over the session list: chronological views,
//     type filters, all-time and trailing-window summaries, profit grouped by
//     stake, and the cumulative bankroll series used for charting.
//   - Edit Control: a small state machine tracking which session, if any, is
//     currently being edited.
//
// This package serves as the foundational logic for the `bkr` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package bankroll
