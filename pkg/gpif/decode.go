package gpif

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

// Decode reads a GPIF document and indexes its entities by id.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	doc.index()
	return &doc, nil
}
