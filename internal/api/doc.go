package api

// Package api implements the data-access layer over the Rick and Morty
// characters REST API. It wraps the three GET endpoints, retries each call a
// fixed number of times and turns transport failures into typed errors that
// carry a user-facing message key.
