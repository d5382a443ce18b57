// Package library declares the service interfaces exposed by the pamsched
// client. Implementations live in the sibling service packages.
package library

type Library interface {
	Codec() Codec
	Schema() Schema
}
