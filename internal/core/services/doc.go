// Package services implements the driving port interfaces.
// Services contain the core business logic: entity resolution over the
// frozen dataset and the joins that answer combined queries.
//
// Services are pure Go with no external dependencies beyond logging, and
// are safe for concurrent use because the dataset is never written.
package services
