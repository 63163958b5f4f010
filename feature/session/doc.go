// Package session keeps per-shopper search state between requests: the last
// result list and the garment chosen from it.
package session
