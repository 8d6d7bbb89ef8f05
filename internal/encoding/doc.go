// Package encoding implements the auxiliary sections of the feature blob format
// that are not geometry payload, such as the feature names table.
//
// Geometry payloads themselves are written by the public encoding package.
package encoding
