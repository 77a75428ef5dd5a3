// Package openapi derives form schemas from OpenAPI operations so a form can
// be declared once, in the backend contract, and bound to widgets here.
package openapi

import "errors"

// Document wraps a raw OpenAPI payload and its origin. The public API stays
// decoupled from kin-openapi structs.
type Document struct {
	location string
	raw      []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(location string, raw []byte) (Document, error) {
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	clone := append([]byte(nil), raw...)
	return Document{location: location, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(location string, raw []byte) Document {
	doc, err := NewDocument(location, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Raw returns a defensive copy of the OpenAPI payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	return d.location
}
