// Package decode converts individual ReqIF elements into domain objects.
// Each decoder handles one element kind and returns an object carrying an
// identifier unique within its collection; structural orchestration and
// cross-referencing stay with the caller. Decoders fail on malformed
// elements instead of producing partial objects.
package decode

import (
	"strings"

	"github.com/beevik/etree"

	reqiferrors "github.com/BobRollenhagen/reqif/errors"
	"github.com/BobRollenhagen/reqif/model"
)

const (
	attrIdentifier = "IDENTIFIER"
	attrLongName   = "LONG-NAME"
	attrLastChange = "LAST-CHANGE"
)

func identifier(el *etree.Element) (string, error) {
	id := el.SelectAttrValue(attrIdentifier, "")
	if id == "" {
		return "", reqiferrors.FormatList{
			reqiferrors.NewFormatf(reqiferrors.ErrDecode, el.Tag,
				"%s element has no %s attribute", el.Tag, attrIdentifier),
		}
	}
	return id, nil
}

// refText returns the trimmed text of the single *-REF element nested in
// the named wrapper child, e.g. SOURCE > SPEC-OBJECT-REF. Empty when the
// wrapper or the reference is absent.
func refText(el *etree.Element, wrapperTag string) string {
	wrapper := el.SelectElement(wrapperTag)
	if wrapper == nil {
		return ""
	}
	children := wrapper.ChildElements()
	if len(children) == 0 {
		return ""
	}
	return strings.TrimSpace(children[0].Text())
}

func kindFromTag(el *etree.Element, prefix string) (model.DataTypeKind, error) {
	if !strings.HasPrefix(el.Tag, prefix) {
		return "", reqiferrors.FormatList{
			reqiferrors.NewFormatf(reqiferrors.ErrDecode, el.Tag,
				"unexpected element %s, want %s*", el.Tag, prefix),
		}
	}
	kind := model.DataTypeKind(strings.TrimPrefix(el.Tag, prefix))
	switch kind {
	case model.KindString, model.KindInteger, model.KindReal, model.KindBoolean,
		model.KindDate, model.KindXHTML, model.KindEnumeration:
		return kind, nil
	}
	return "", reqiferrors.FormatList{
		reqiferrors.NewFormatf(reqiferrors.ErrDecode, el.Tag,
			"unknown value kind in element %s", el.Tag),
	}
}
