// Package adapter unifies the content sources behind a single Content call.
package adapter

import (
	"fmt"

	"github.com/agentstation/relay/pkg/errors"
	"github.com/agentstation/relay/pkg/sources"
)

// TextFormat is anything that can produce text content.
type TextFormat interface {
	Content() string
}

// Adapter wraps exactly one content source. The source is fixed at
// construction and validated there, so Content never fails.
type Adapter struct {
	src sources.Source
}

var _ TextFormat = (*Adapter)(nil)

// New creates an adapter over src. A nil source or a source the adapter has
// no reader for yields an UnsupportedFormatError.
func New(src sources.Source) (*Adapter, error) {
	if src == nil {
		return nil, errors.NewUnsupportedFormatError("", "nil content source")
	}
	if _, ok := read(src); !ok {
		return nil, errors.NewUnsupportedFormatError("", fmt.Sprintf("no reader for %T", src))
	}
	return &Adapter{src: src}, nil
}

// MustNew is like New but panics on error. Use it only with the concrete
// source types of the sources package.
func MustNew(src sources.Source) *Adapter {
	a, err := New(src)
	if err != nil {
		panic(err)
	}
	return a
}

// NewFromKind resolves kind (txt, json or xml) and wraps the matching source.
func NewFromKind(kind string) (*Adapter, error) {
	src, err := sources.Parse(kind)
	if err != nil {
		return nil, err
	}
	return New(src)
}

// Content returns the wrapped source's content verbatim.
func (a *Adapter) Content() string {
	s, _ := read(a.src)
	return s
}

// Kind reports the wrapped source's kind.
func (a *Adapter) Kind() sources.Kind {
	return a.src.Kind()
}

// read dispatches to the reader of the concrete source type.
func read(src sources.Source) (string, bool) {
	switch s := src.(type) {
	case sources.TextFile:
		return s.ReadText(), true
	case *sources.TextFile:
		if s == nil {
			return "", false
		}
		return s.ReadText(), true
	case sources.JSONFile:
		return s.ReadJSON(), true
	case *sources.JSONFile:
		if s == nil {
			return "", false
		}
		return s.ReadJSON(), true
	case sources.XMLFile:
		return s.ReadXML(), true
	case *sources.XMLFile:
		if s == nil {
			return "", false
		}
		return s.ReadXML(), true
	default:
		return "", false
	}
}
