package store

// Package store implements the song store: an ordered in-memory collection
// of songs backed by a single JSON file. Both the windowed interface and
// the CLI operate on the same store instance and contract.
