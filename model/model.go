// Package model defines the domain objects decoded from a ReqIF document.
//
// Every decoded object carries an Identifier unique within its collection;
// references between objects (spec object types to data types, spec objects
// to their type, relations and hierarchy nodes to spec objects) are kept as
// identifier strings and resolved by the consumer against the bundle's
// indexes.
package model

// DataTypeKind names the value kind of a DATATYPE-DEFINITION-* element, or
// of the ATTRIBUTE-DEFINITION-* / ATTRIBUTE-VALUE-* elements derived from
// one.
type DataTypeKind string

const (
	KindString      DataTypeKind = "STRING"
	KindInteger     DataTypeKind = "INTEGER"
	KindReal        DataTypeKind = "REAL"
	KindBoolean     DataTypeKind = "BOOLEAN"
	KindDate        DataTypeKind = "DATE"
	KindXHTML       DataTypeKind = "XHTML"
	KindEnumeration DataTypeKind = "ENUMERATION"
)

// DataType is a reusable value-type definition referenced by attribute
// definitions.
type DataType struct {
	Identifier string
	LongName   string
	LastChange string
	Kind       DataTypeKind
	// MaxLength is the raw MAX-LENGTH attribute of string definitions.
	// Value constraints are not interpreted here.
	MaxLength string
	// Values holds the SPECIFIED-VALUES of enumeration definitions.
	Values []EnumValue
}

// EnumValue is one ENUM-VALUE of an enumeration data type.
type EnumValue struct {
	Identifier string
	LongName   string
	Key        string
}

// SpecObjectType describes the attribute structure shared by a group of
// spec objects.
type SpecObjectType struct {
	Identifier string
	LongName   string
	LastChange string
	Attributes []AttributeDefinition
}

// AttributeDefinition is one ATTRIBUTE-DEFINITION-* entry of a spec object
// type. DataTypeRef names the data type definition it is built on.
type AttributeDefinition struct {
	Identifier  string
	LongName    string
	Kind        DataTypeKind
	DataTypeRef string
}

// SpecObject is a single requirement record.
type SpecObject struct {
	Identifier string
	LongName   string
	LastChange string
	// TypeRef names the SpecObjectType this object conforms to.
	TypeRef string
	Values  []AttributeValue
}

// AttributeValue is one ATTRIBUTE-VALUE-* entry of a spec object.
// DefinitionRef names the attribute definition the value belongs to.
type AttributeValue struct {
	DefinitionRef string
	Kind          DataTypeKind
	Value         string
}

// SpecRelation is a directed link between two spec objects.
type SpecRelation struct {
	Identifier string
	LongName   string
	TypeRef    string
	Source     string
	Target     string
}

// Specification is a hierarchical arrangement of spec objects representing
// a document structure.
type Specification struct {
	Identifier string
	LongName   string
	LastChange string
	TypeRef    string
	Children   []*SpecHierarchy
}

// SpecHierarchy is one node of a specification tree. ObjectRef names the
// spec object the node displays.
type SpecHierarchy struct {
	Identifier string
	ObjectRef  string
	Children   []*SpecHierarchy
}
