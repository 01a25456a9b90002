// Package reqif parses Requirements Interchange Format documents into an
// indexed, cross-referenced in-memory bundle.
package reqif

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	reqiferrors "github.com/BobRollenhagen/reqif/errors"
)

// Option configures a parse invocation.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger used during parsing. The parser logs at debug
// level only; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse reads a ReqIF document from r and assembles its bundle.
func Parse(r io.Reader, opts ...Option) (*Bundle, error) {
	if r == nil {
		return nil, reqiferrors.FormatList{
			reqiferrors.NewFormat(reqiferrors.ErrXMLParse, "nil reader", ""),
		}
	}
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse reqif: %w", reqiferrors.FormatList{
			reqiferrors.NewFormatf(reqiferrors.ErrXMLParse, "", "read xml: %v", err),
		})
	}
	return ParseDocument(doc, opts...)
}

// ParseString parses a ReqIF document held in a string.
func ParseString(s string, opts ...Option) (*Bundle, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile parses a ReqIF document from a file path.
func ParseFile(path string, opts ...Option) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reqif file %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	bundle, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse reqif file %s: %w", path, err)
	}
	return bundle, nil
}

// ParseDocument assembles a bundle from an already parsed XML tree. The
// tree is normalized in place: namespace prefixes and declarations are
// stripped from every element.
func ParseDocument(doc *etree.Document, opts ...Option) (*Bundle, error) {
	if doc == nil {
		return nil, reqiferrors.FormatList{
			reqiferrors.NewFormat(reqiferrors.ErrNoRoot, "nil document", ""),
		}
	}
	o := newOptions(opts)
	return parseBundle(doc, o.log)
}
