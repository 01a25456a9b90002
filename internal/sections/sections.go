// Package sections locates the structural sections of a normalized ReqIF
// tree. Each section's presence rule is declared in a policy table rather
// than branched ad hoc, so the rules can be tested on their own.
package sections

import (
	"github.com/beevik/etree"

	reqiferrors "github.com/BobRollenhagen/reqif/errors"
)

// Tags of the structural sections, in nesting order.
const (
	TagRoot           = "REQ-IF"
	TagHeader         = "THE-HEADER"
	TagCoreContent    = "CORE-CONTENT"
	TagContent        = "REQ-IF-CONTENT"
	TagDataTypes      = "DATATYPES"
	TagSpecTypes      = "SPEC-TYPES"
	TagSpecObjects    = "SPEC-OBJECTS"
	TagSpecRelations  = "SPEC-RELATIONS"
	TagSpecifications = "SPECIFICATIONS"
)

// Requiredness is a section's presence rule.
type Requiredness int

const (
	// Mandatory sections must be present; absence is a format error.
	Mandatory Requiredness = iota
	// Optional sections may be absent; absence means an empty sequence.
	Optional
	// EmptyIfAbsent sections short-circuit the parse into the empty
	// terminal result when absent.
	EmptyIfAbsent
)

// Rule declares one section's tag, its parent section's tag, and its
// presence rule.
type Rule struct {
	Tag          string
	Parent       string
	Requiredness Requiredness
}

// Rules is the fixed nesting path of the format. Order matters: parents
// precede children, and content sections appear in the order the assembler
// processes them.
var Rules = []Rule{
	{Tag: TagHeader, Parent: TagRoot, Requiredness: EmptyIfAbsent},
	{Tag: TagCoreContent, Parent: TagRoot, Requiredness: Mandatory},
	{Tag: TagContent, Parent: TagCoreContent, Requiredness: Mandatory},
	{Tag: TagDataTypes, Parent: TagContent, Requiredness: Mandatory},
	{Tag: TagSpecTypes, Parent: TagContent, Requiredness: Mandatory},
	{Tag: TagSpecObjects, Parent: TagContent, Requiredness: Mandatory},
	{Tag: TagSpecRelations, Parent: TagContent, Requiredness: Optional},
	{Tag: TagSpecifications, Parent: TagContent, Requiredness: Mandatory},
}

// Layout holds the located section elements. Optional sections are nil when
// absent. Empty marks the empty-bundle terminal state: the root had no
// children or no header, and no other field is populated.
type Layout struct {
	Header         *etree.Element
	CoreContent    *etree.Element
	Content        *etree.Element
	DataTypes      *etree.Element
	SpecTypes      *etree.Element
	SpecObjects    *etree.Element
	SpecRelations  *etree.Element
	Specifications *etree.Element
	Empty          bool
}

// Locate navigates the normalized tree through the fixed nesting path and
// applies each section's presence rule. The tree must already be stripped
// of namespaces.
func Locate(root *etree.Element) (*Layout, error) {
	if root == nil {
		return nil, reqiferrors.FormatList{
			reqiferrors.NewFormat(reqiferrors.ErrNoRoot, "document has no root element", ""),
		}
	}
	if root.Tag != TagRoot {
		return nil, reqiferrors.FormatList{
			reqiferrors.NewFormatf(reqiferrors.ErrUnexpectedRoot, "",
				"unexpected root element %q, want %q", root.Tag, TagRoot),
		}
	}

	layout := &Layout{}
	if len(root.ChildElements()) == 0 {
		layout.Empty = true
		return layout, nil
	}

	parents := map[string]*etree.Element{TagRoot: root}
	var missing reqiferrors.FormatList
	for _, rule := range Rules {
		parent := parents[rule.Parent]
		if parent == nil {
			// The parent itself was reported missing; its children
			// cannot be located.
			continue
		}
		el := parent.SelectElement(rule.Tag)
		if el == nil {
			switch rule.Requiredness {
			case EmptyIfAbsent:
				return &Layout{Empty: true}, nil
			case Mandatory:
				missing = append(missing,
					reqiferrors.NewFormatf(reqiferrors.ErrMissingSection, rule.Tag,
						"missing required section under %s", rule.Parent))
			case Optional:
			}
			continue
		}
		parents[rule.Tag] = el
		layout.assign(rule.Tag, el)
	}
	if len(missing) > 0 {
		return nil, missing
	}
	return layout, nil
}

func (l *Layout) assign(tag string, el *etree.Element) {
	switch tag {
	case TagHeader:
		l.Header = el
	case TagCoreContent:
		l.CoreContent = el
	case TagContent:
		l.Content = el
	case TagDataTypes:
		l.DataTypes = el
	case TagSpecTypes:
		l.SpecTypes = el
	case TagSpecObjects:
		l.SpecObjects = el
	case TagSpecRelations:
		l.SpecRelations = el
	case TagSpecifications:
		l.Specifications = el
	}
}
