// Package garment loads the Garment Geek inventory and serves catalog searches.
//
// Inventory records come from a text file, an object in storage or the
// garments table. They are parsed into catalog items whose attributes use the
// enumerated labels defined here, cached behind a TTL and queried through
// Service. Handler exposes the catalog over HTTP.
package garment
