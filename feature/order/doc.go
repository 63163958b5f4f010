// Package order places orders for garments chosen from search results.
//
// A submitted order is validated, written to storage as a plain-text
// confirmation and, when a database is configured, recorded in the orders
// table.
package order
