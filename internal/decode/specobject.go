package decode

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/BobRollenhagen/reqif/model"
)

const (
	attrValuePrefix = "ATTRIBUTE-VALUE-"
	tagValues       = "VALUES"
	tagTheValue     = "THE-VALUE"
	tagDefinition   = "DEFINITION"
)

// SpecObject decodes one SPEC-OBJECT element with its attribute values.
func SpecObject(el *etree.Element) (*model.SpecObject, error) {
	id, err := identifier(el)
	if err != nil {
		return nil, err
	}

	so := &model.SpecObject{
		Identifier: id,
		LongName:   el.SelectAttrValue(attrLongName, ""),
		LastChange: el.SelectAttrValue(attrLastChange, ""),
		TypeRef:    refText(el, tagType),
	}
	values := el.SelectElement(tagValues)
	if values == nil {
		return so, nil
	}
	for _, child := range values.ChildElements() {
		value, err := attributeValue(child)
		if err != nil {
			return nil, err
		}
		so.Values = append(so.Values, value)
	}
	return so, nil
}

func attributeValue(el *etree.Element) (model.AttributeValue, error) {
	kind, err := kindFromTag(el, attrValuePrefix)
	if err != nil {
		return model.AttributeValue{}, err
	}
	return model.AttributeValue{
		DefinitionRef: refText(el, tagDefinition),
		Kind:          kind,
		Value:         rawValue(el, kind),
	}, nil
}

// rawValue extracts the lexical value of an ATTRIBUTE-VALUE-* element.
// Simple kinds carry a THE-VALUE attribute, XHTML kinds nest a THE-VALUE
// element, and enumerations reference their value by identifier.
func rawValue(el *etree.Element, kind model.DataTypeKind) string {
	if v := el.SelectAttr(tagTheValue); v != nil {
		return v.Value
	}
	if kind == model.KindEnumeration {
		return refText(el, tagValues)
	}
	if nested := el.SelectElement(tagTheValue); nested != nil {
		return strings.TrimSpace(nested.Text())
	}
	return ""
}
