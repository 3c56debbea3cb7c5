// Package sqlite implements wiki storage contracts on a SQLite database.
package sqlite
