package decode

import (
	"github.com/beevik/etree"

	"github.com/BobRollenhagen/reqif/model"
)

const (
	tagChildren      = "CHILDREN"
	tagSpecHierarchy = "SPEC-HIERARCHY"
	tagObject        = "OBJECT"
)

// Specification decodes one SPECIFICATION element and its SPEC-HIERARCHY
// tree, preserving document order of siblings.
func Specification(el *etree.Element) (*model.Specification, error) {
	id, err := identifier(el)
	if err != nil {
		return nil, err
	}

	spec := &model.Specification{
		Identifier: id,
		LongName:   el.SelectAttrValue(attrLongName, ""),
		LastChange: el.SelectAttrValue(attrLastChange, ""),
		TypeRef:    refText(el, tagType),
	}
	children, err := hierarchyChildren(el)
	if err != nil {
		return nil, err
	}
	spec.Children = children
	return spec, nil
}

func hierarchyChildren(el *etree.Element) ([]*model.SpecHierarchy, error) {
	wrapper := el.SelectElement(tagChildren)
	if wrapper == nil {
		return nil, nil
	}
	var nodes []*model.SpecHierarchy
	for _, child := range wrapper.ChildElements() {
		if child.Tag != tagSpecHierarchy {
			continue
		}
		node, err := specHierarchy(child)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func specHierarchy(el *etree.Element) (*model.SpecHierarchy, error) {
	id, err := identifier(el)
	if err != nil {
		return nil, err
	}
	children, err := hierarchyChildren(el)
	if err != nil {
		return nil, err
	}
	return &model.SpecHierarchy{
		Identifier: id,
		ObjectRef:  refText(el, tagObject),
		Children:   children,
	}, nil
}
