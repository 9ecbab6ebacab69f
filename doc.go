// Package notes provides the types and operations for managing a personal
// ledger of financial notes. It is designed to be local-first and auditable:
// all state lives in two plain files under the user's control.
//
// The core functionalities include:
//   - Note Management: Recording dated, categorized, signed amounts with an
//     optional description, in insertion order.
//   - Data Persistence: Encoding and decoding the note collection to a single
//     JSON database file, created lazily on first use and rewritten atomically
//     on every mutation.
//   - Matching: Selecting notes by exact field criteria, used uniformly by the
//     find, update and delete operations.
//   - Mirroring: Regenerating a human-readable text rendering of all notes and
//     the running balance after every mutation, removed as soon as the
//     database becomes empty.
//
// This package serves as the foundational logic for the `notes` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package notes
