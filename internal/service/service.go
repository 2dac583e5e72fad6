// Package service holds the business rules between handlers and
// repositories. Services turn persistence outcomes into domain errors and
// leave every other failure for the global error handler to report.
package service
