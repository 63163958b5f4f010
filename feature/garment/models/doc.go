// Package models contains the database models of the garment feature.
package models
