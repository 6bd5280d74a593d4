// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (specs, records, run artifacts) and contracts
// (interfaces) only.
package domain
