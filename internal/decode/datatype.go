package decode

import (
	"github.com/beevik/etree"

	"github.com/BobRollenhagen/reqif/model"
)

const (
	dataTypePrefix     = "DATATYPE-DEFINITION-"
	tagSpecifiedValues = "SPECIFIED-VALUES"
	tagEnumValue       = "ENUM-VALUE"
	tagProperties      = "PROPERTIES"
	tagEmbeddedValue   = "EMBEDDED-VALUE"
)

// DataType decodes one DATATYPE-DEFINITION-* element.
func DataType(el *etree.Element) (*model.DataType, error) {
	kind, err := kindFromTag(el, dataTypePrefix)
	if err != nil {
		return nil, err
	}
	id, err := identifier(el)
	if err != nil {
		return nil, err
	}

	dt := &model.DataType{
		Identifier: id,
		LongName:   el.SelectAttrValue(attrLongName, ""),
		LastChange: el.SelectAttrValue(attrLastChange, ""),
		Kind:       kind,
		MaxLength:  el.SelectAttrValue("MAX-LENGTH", ""),
	}
	if kind == model.KindEnumeration {
		values, err := enumValues(el)
		if err != nil {
			return nil, err
		}
		dt.Values = values
	}
	return dt, nil
}

func enumValues(el *etree.Element) ([]model.EnumValue, error) {
	specified := el.SelectElement(tagSpecifiedValues)
	if specified == nil {
		return nil, nil
	}
	var values []model.EnumValue
	for _, child := range specified.ChildElements() {
		if child.Tag != tagEnumValue {
			continue
		}
		id, err := identifier(child)
		if err != nil {
			return nil, err
		}
		value := model.EnumValue{
			Identifier: id,
			LongName:   child.SelectAttrValue(attrLongName, ""),
		}
		if props := child.SelectElement(tagProperties); props != nil {
			if embedded := props.SelectElement(tagEmbeddedValue); embedded != nil {
				value.Key = embedded.SelectAttrValue("KEY", "")
			}
		}
		values = append(values, value)
	}
	return values, nil
}
