// Package utils provides small text helpers shared by the inventory parser, the
// search form handling and the CLI: enum token normalization, list splitting and
// strict number parsing.
package utils
