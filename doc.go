// Package oversight provides the functions and types for tracking a personal
// net worth. It is designed to be local-first, auditable, and extensible,
// ensuring users have full control and transparency over their financial data.
//
// The core functionalities include:
//   - Ledger Management: Recording accounts, transactions, owned assets and
//     recurring schedules in an immutable, chronological record.
//   - Derived Valuations: Account balances, asset values, loan positions and
//     the net worth history are always recomputed from the ledger, never
//     stored.
//   - Projections: A compound growth calculator for appreciating or
//     depreciating assets, and an amortization calculator for financed
//     purchases.
//   - Data Persistence: Handling the encoding and decoding of the ledger
//     to and from a human-readable, version-controllable format (JSONL).
//
// This package serves as the foundational logic for the `ovs` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package oversight
