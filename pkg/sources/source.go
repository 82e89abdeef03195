// Package sources defines the content sources relay can adapt.
//
// The set of sources is closed: TextFile, JSONFile and XMLFile are the only
// implementations of Source, enforced by an unexported marker method. Each
// source exposes its own reader (ReadText, ReadJSON, ReadXML) returning a
// fixed piece of content; the adapter package unifies them.
//
// Example usage:
//
//	src, err := sources.Parse("json")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(src.Kind()) // json
package sources

import (
	"slices"
	"strings"

	"github.com/agentstation/relay/pkg/errors"
)

// Kind identifies a content source variant.
type Kind string

// String returns the string representation of a kind.
func (k Kind) String() string {
	return string(k)
}

// Known source kinds.
const (
	// KindText identifies plain text content.
	KindText Kind = "txt"

	// KindJSON identifies JSON-like structured content.
	KindJSON Kind = "json"

	// KindXML identifies XML-like structured content.
	KindXML Kind = "xml"
)

// Kinds returns every known kind in canonical order.
func Kinds() []Kind {
	return []Kind{KindText, KindJSON, KindXML}
}

// IsValid returns true if the Kind is one of the defined constants.
func (k Kind) IsValid() bool {
	return slices.Contains(Kinds(), k)
}

// Source is a content producer. Only the types in this package implement it.
type Source interface {
	// Kind reports which variant this source is.
	Kind() Kind

	source()
}

// TextFile produces plain text content.
type TextFile struct{}

// ReadText returns the file's text.
func (TextFile) ReadText() string {
	return "Дані з TXT файлу"
}

// Kind implements Source.
func (TextFile) Kind() Kind { return KindText }

func (TextFile) source() {}

// JSONFile produces JSON-like content.
type JSONFile struct{}

// ReadJSON returns the file's JSON document.
func (JSONFile) ReadJSON() string {
	return `{ "message": "Дані з JSON файлу" }`
}

// Kind implements Source.
func (JSONFile) Kind() Kind { return KindJSON }

func (JSONFile) source() {}

// XMLFile produces XML-like content.
type XMLFile struct{}

// ReadXML returns the file's XML document.
func (XMLFile) ReadXML() string {
	return "<message>Дані з XML файлу</message>"
}

// Kind implements Source.
func (XMLFile) Kind() Kind { return KindXML }

func (XMLFile) source() {}

// New returns the source for kind.
func New(kind Kind) (Source, error) {
	switch kind {
	case KindText:
		return TextFile{}, nil
	case KindJSON:
		return JSONFile{}, nil
	case KindXML:
		return XMLFile{}, nil
	default:
		return nil, errors.NewUnsupportedFormatError(string(kind), "no content source for this kind")
	}
}

// Parse resolves a user supplied kind such as " JSON " to its source.
func Parse(s string) (Source, error) {
	return New(Kind(strings.ToLower(strings.TrimSpace(s))))
}

// All returns one source of every kind, in canonical order.
func All() []Source {
	return []Source{TextFile{}, JSONFile{}, XMLFile{}}
}
