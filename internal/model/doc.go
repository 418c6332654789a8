package model

// Package model defines the domain data structures shared across the app:
// the song record and its display/matching helpers. Structures are designed
// for direct rendering in the UI and straight JSON serialization.
