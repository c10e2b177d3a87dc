// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconcile merges freshly imported spreadsheet rows into the stored
// hazard and personnel collections.
//
// Everything here is a pure function of its inputs: the caller supplies the
// existing collection, the parsed rows, a clock reading and an id
// [Sequence], and gets back a new collection. Nothing is persisted.
//
// Hazards are matched by sub-process number. A matched record that carries
// a manual lock is left exactly as it was; an unlocked one is replaced by
// the imported row while keeping its id. Unmatched rows are appended in
// import order after all pre-existing records.
//
// Personnel entries are matched by the (name, department) pair and are
// always overwritten.
package reconcile
