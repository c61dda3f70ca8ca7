// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities so the domain layer stays free of
// ORM tags.
//
// Each model provides TableName plus ToDomain/FromDomain mappers. The schema itself
// is owned by the SQL migrations; AutoMigrate on these models is only used by tests.
//
// Structure:
// - partner.go: customers
// - finance.go: invoices, revenue, and the joined/aggregated row types
// - identity.go: users
package models
