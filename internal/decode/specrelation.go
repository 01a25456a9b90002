package decode

import (
	"github.com/beevik/etree"

	reqiferrors "github.com/BobRollenhagen/reqif/errors"
	"github.com/BobRollenhagen/reqif/model"
)

const (
	tagSource = "SOURCE"
	tagTarget = "TARGET"
)

// SpecRelation decodes one SPEC-RELATION element. Source and target spec
// object references are mandatory.
func SpecRelation(el *etree.Element) (*model.SpecRelation, error) {
	id, err := identifier(el)
	if err != nil {
		return nil, err
	}

	source := refText(el, tagSource)
	target := refText(el, tagTarget)
	if source == "" || target == "" {
		return nil, reqiferrors.FormatList{
			reqiferrors.NewFormatf(reqiferrors.ErrDecode, el.Tag,
				"relation %s has no source or target reference", id),
		}
	}
	return &model.SpecRelation{
		Identifier: id,
		LongName:   el.SelectAttrValue(attrLongName, ""),
		TypeRef:    refText(el, tagType),
		Source:     source,
		Target:     target,
	}, nil
}
