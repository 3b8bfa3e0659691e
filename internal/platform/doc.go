package platform

// Package platform contains the concrete search providers behind the corpus:
// the HTTP client for the Disha corpus API, the curated-playlist source
// backed by ytdlp, and the source-based routing between them.
