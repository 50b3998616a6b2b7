package model

// Package model defines the domain data structures shared across the app:
// the Character record returned by the API, its location references and the
// life-status enum. Values are received verbatim from the API and are treated
// as immutable by the views.
