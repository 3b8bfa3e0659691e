package model

// Package model defines domain data structures used across the app: filter
// selections, video search results, and the search lifecycle enum. Structures
// are designed for direct binding in the UI and explicit state transitions.
