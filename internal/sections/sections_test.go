package sections

import (
	"errors"
	"testing"

	"github.com/beevik/etree"

	reqiferrors "github.com/BobRollenhagen/reqif/errors"
)

func root(t *testing.T, s string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		t.Fatalf("ReadFromString() error = %v", err)
	}
	return doc.Root()
}

const fullDocument = `<REQ-IF>
  <THE-HEADER/>
  <CORE-CONTENT>
    <REQ-IF-CONTENT>
      <DATATYPES/>
      <SPEC-TYPES/>
      <SPEC-OBJECTS/>
      <SPEC-RELATIONS/>
      <SPECIFICATIONS/>
    </REQ-IF-CONTENT>
  </CORE-CONTENT>
</REQ-IF>`

func TestRulesTable(t *testing.T) {
	want := []Rule{
		{Tag: TagHeader, Parent: TagRoot, Requiredness: EmptyIfAbsent},
		{Tag: TagCoreContent, Parent: TagRoot, Requiredness: Mandatory},
		{Tag: TagContent, Parent: TagCoreContent, Requiredness: Mandatory},
		{Tag: TagDataTypes, Parent: TagContent, Requiredness: Mandatory},
		{Tag: TagSpecTypes, Parent: TagContent, Requiredness: Mandatory},
		{Tag: TagSpecObjects, Parent: TagContent, Requiredness: Mandatory},
		{Tag: TagSpecRelations, Parent: TagContent, Requiredness: Optional},
		{Tag: TagSpecifications, Parent: TagContent, Requiredness: Mandatory},
	}
	if len(Rules) != len(want) {
		t.Fatalf("len(Rules) = %d, want %d", len(Rules), len(want))
	}
	for i, rule := range Rules {
		if rule != want[i] {
			t.Fatalf("Rules[%d] = %+v, want %+v", i, rule, want[i])
		}
	}
}

func TestLocateFullDocument(t *testing.T) {
	layout, err := Locate(root(t, fullDocument))
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if layout.Empty {
		t.Fatal("Empty = true, want false")
	}
	for name, el := range map[string]*etree.Element{
		"Header":         layout.Header,
		"CoreContent":    layout.CoreContent,
		"Content":        layout.Content,
		"DataTypes":      layout.DataTypes,
		"SpecTypes":      layout.SpecTypes,
		"SpecObjects":    layout.SpecObjects,
		"SpecRelations":  layout.SpecRelations,
		"Specifications": layout.Specifications,
	} {
		if el == nil {
			t.Fatalf("%s = nil, want element", name)
		}
	}
}

func TestLocateUnexpectedRoot(t *testing.T) {
	_, err := Locate(root(t, `<NOT-REQ-IF/>`))
	assertCode(t, err, reqiferrors.ErrUnexpectedRoot)
}

func TestLocateNilRoot(t *testing.T) {
	_, err := Locate(nil)
	assertCode(t, err, reqiferrors.ErrNoRoot)
}

func TestLocateEmptyRoot(t *testing.T) {
	layout, err := Locate(root(t, `<REQ-IF/>`))
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if !layout.Empty {
		t.Fatal("Empty = false, want true")
	}
}

func TestLocateMissingHeader(t *testing.T) {
	layout, err := Locate(root(t, `<REQ-IF><CORE-CONTENT/></REQ-IF>`))
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if !layout.Empty {
		t.Fatal("Empty = false, want true for document without THE-HEADER")
	}
}

func TestLocateMissingSections(t *testing.T) {
	tests := []struct {
		name         string
		xml          string
		wantSections []string
	}{
		{
			name:         "core content",
			xml:          `<REQ-IF><THE-HEADER/></REQ-IF>`,
			wantSections: []string{TagCoreContent},
		},
		{
			name:         "req if content",
			xml:          `<REQ-IF><THE-HEADER/><CORE-CONTENT/></REQ-IF>`,
			wantSections: []string{TagContent},
		},
		{
			name: "datatypes",
			xml: `<REQ-IF><THE-HEADER/><CORE-CONTENT><REQ-IF-CONTENT>
				<SPEC-TYPES/><SPEC-OBJECTS/><SPECIFICATIONS/>
			</REQ-IF-CONTENT></CORE-CONTENT></REQ-IF>`,
			wantSections: []string{TagDataTypes},
		},
		{
			name: "spec types and spec objects reported together",
			xml: `<REQ-IF><THE-HEADER/><CORE-CONTENT><REQ-IF-CONTENT>
				<DATATYPES/><SPECIFICATIONS/>
			</REQ-IF-CONTENT></CORE-CONTENT></REQ-IF>`,
			wantSections: []string{TagSpecTypes, TagSpecObjects},
		},
		{
			name: "specifications",
			xml: `<REQ-IF><THE-HEADER/><CORE-CONTENT><REQ-IF-CONTENT>
				<DATATYPES/><SPEC-TYPES/><SPEC-OBJECTS/>
			</REQ-IF-CONTENT></CORE-CONTENT></REQ-IF>`,
			wantSections: []string{TagSpecifications},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(root(t, tt.xml))
			if err == nil {
				t.Fatal("Locate() error = nil, want missing section error")
			}
			var list reqiferrors.FormatList
			if !errors.As(err, &list) {
				t.Fatalf("Locate() error = %v, want FormatList", err)
			}
			if len(list) != len(tt.wantSections) {
				t.Fatalf("error count = %d, want %d (%v)", len(list), len(tt.wantSections), list)
			}
			for i, section := range tt.wantSections {
				if list[i].Code != string(reqiferrors.ErrMissingSection) {
					t.Fatalf("Code = %q, want %q", list[i].Code, reqiferrors.ErrMissingSection)
				}
				if list[i].Section != section {
					t.Fatalf("Section = %q, want %q", list[i].Section, section)
				}
			}
		})
	}
}

func TestLocateRelationsOptional(t *testing.T) {
	layout, err := Locate(root(t, `<REQ-IF><THE-HEADER/><CORE-CONTENT><REQ-IF-CONTENT>
		<DATATYPES/><SPEC-TYPES/><SPEC-OBJECTS/><SPECIFICATIONS/>
	</REQ-IF-CONTENT></CORE-CONTENT></REQ-IF>`))
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if layout.SpecRelations != nil {
		t.Fatal("SpecRelations != nil, want nil for absent optional section")
	}
}

func assertCode(t *testing.T, err error, code reqiferrors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want code %s", code)
	}
	var list reqiferrors.FormatList
	if !errors.As(err, &list) {
		t.Fatalf("error = %v, want FormatList", err)
	}
	if len(list) != 1 {
		t.Fatalf("error count = %d, want 1", len(list))
	}
	if list[0].Code != string(code) {
		t.Fatalf("Code = %q, want %q", list[0].Code, code)
	}
}
