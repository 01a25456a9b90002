package reqif

import "github.com/BobRollenhagen/reqif/model"

// Bundle is the fully assembled, indexed in-memory representation of one
// parsed ReqIF document. It is populated once by the parser and must be
// treated as read-only afterwards. The ordered slices preserve document
// order; the identifier and relation indexes are derived from them at
// assembly time and never mutated independently.
type Bundle struct {
	// Namespace is the document's default XML namespace URI. Empty when
	// the document declared none, which is tolerated.
	Namespace string
	// ConfigurationNamespace is the URI bound to the configuration
	// prefix on the root element. Same optionality as Namespace.
	ConfigurationNamespace string

	DataTypes       []*model.DataType
	SpecObjectTypes []*model.SpecObjectType
	SpecObjects     []*model.SpecObject
	SpecRelations   []*model.SpecRelation
	Specifications  []*model.Specification

	specObjectsByID map[string]*model.SpecObject
	relationTargets map[string][]string
}

func newBundle(ns, configurationNS string) *Bundle {
	return &Bundle{
		Namespace:              ns,
		ConfigurationNamespace: configurationNS,
		specObjectsByID:        make(map[string]*model.SpecObject),
		relationTargets:        make(map[string][]string),
	}
}

// SpecObjectByIdentifier resolves a spec object by its identifier. When the
// document held duplicate identifiers, the later object in document order
// wins.
func (b *Bundle) SpecObjectByIdentifier(id string) (*model.SpecObject, bool) {
	so, ok := b.specObjectsByID[id]
	return so, ok
}

// RelationTargets returns the identifiers of all relation targets with the
// given source, in document order of the relations. Nil when the source has
// no outgoing relations. The returned slice is owned by the bundle and must
// not be modified.
func (b *Bundle) RelationTargets(source string) []string {
	return b.relationTargets[source]
}
