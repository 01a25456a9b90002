package decode

import (
	"github.com/beevik/etree"

	"github.com/BobRollenhagen/reqif/model"
)

const (
	// TagSpecObjectType is the one SPEC-TYPES child kind this decoder
	// handles; other type-definition kinds are skipped by the caller.
	TagSpecObjectType = "SPEC-OBJECT-TYPE"

	attrDefinitionPrefix = "ATTRIBUTE-DEFINITION-"
	tagSpecAttributes    = "SPEC-ATTRIBUTES"
	tagType              = "TYPE"
)

// SpecObjectType decodes one SPEC-OBJECT-TYPE element with its attribute
// definitions.
func SpecObjectType(el *etree.Element) (*model.SpecObjectType, error) {
	id, err := identifier(el)
	if err != nil {
		return nil, err
	}

	sot := &model.SpecObjectType{
		Identifier: id,
		LongName:   el.SelectAttrValue(attrLongName, ""),
		LastChange: el.SelectAttrValue(attrLastChange, ""),
	}
	attrs := el.SelectElement(tagSpecAttributes)
	if attrs == nil {
		return sot, nil
	}
	for _, child := range attrs.ChildElements() {
		def, err := attributeDefinition(child)
		if err != nil {
			return nil, err
		}
		sot.Attributes = append(sot.Attributes, def)
	}
	return sot, nil
}

func attributeDefinition(el *etree.Element) (model.AttributeDefinition, error) {
	kind, err := kindFromTag(el, attrDefinitionPrefix)
	if err != nil {
		return model.AttributeDefinition{}, err
	}
	id, err := identifier(el)
	if err != nil {
		return model.AttributeDefinition{}, err
	}
	return model.AttributeDefinition{
		Identifier:  id,
		LongName:    el.SelectAttrValue(attrLongName, ""),
		Kind:        kind,
		DataTypeRef: refText(el, tagType),
	}, nil
}
