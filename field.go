package xmlserdes

import (
	"strings"

	serdeserrors "github.com/goserdes/xmlserdes/errors"
)

// Field is the terse per-field declaration: an XML tag, an optional field
// name, and a type specification. A leading "@" on Tag marks an attribute
// rather than a child element. When Name is empty it is derived from the
// tag by replacing hyphens with underscores, since tags commonly use
// hyphens and field names underscores.
type Field struct {
	Tag  string
	Name string
	Type TypeSpec
}

// elementDescriptor is one resolved field mapping of a descriptor table.
type elementDescriptor struct {
	tag   string
	attr  bool
	field string
	td    *typeDescriptor
}

func resolveField(f Field) (elementDescriptor, error) {
	tag := f.Tag
	attr := strings.HasPrefix(tag, "@")
	if attr {
		tag = tag[1:]
	}
	if tag == "" {
		return elementDescriptor{}, serdeserrors.New(serdeserrors.ErrConfiguration, "", "field with empty tag")
	}
	if strings.ContainsAny(tag, " \t\r\n@/<>") {
		return elementDescriptor{}, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "invalid tag %q", f.Tag)
	}

	td, err := resolveSpec(f.Type)
	if err != nil {
		if e, ok := serdeserrors.As(err); ok {
			return elementDescriptor{}, serdeserrors.Newf(e.Code, "", "field %q: %s", f.Tag, e.Message)
		}
		return elementDescriptor{}, err
	}
	if attr && !td.textual() {
		return elementDescriptor{}, serdeserrors.Newf(serdeserrors.ErrConfiguration, "", "attribute %q requires an atomic type", f.Tag)
	}

	name := f.Name
	if name == "" {
		name = strings.ReplaceAll(tag, "-", "_")
	}
	return elementDescriptor{tag: tag, attr: attr, field: name, td: td}, nil
}
