package xmlns

import (
	"testing"

	"github.com/beevik/etree"
)

func parseDoc(t *testing.T, s string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		t.Fatalf("ReadFromString() error = %v", err)
	}
	return doc
}

func TestCapture(t *testing.T) {
	tests := []struct {
		name       string
		xml        string
		wantNS     string
		wantConfig string
	}{
		{
			name: "both declared",
			xml: `<REQ-IF xmlns="http://www.omg.org/spec/ReqIF/20110401/reqif.xsd"
				xmlns:configuration="http://example.com/configuration"/>`,
			wantNS:     "http://www.omg.org/spec/ReqIF/20110401/reqif.xsd",
			wantConfig: "http://example.com/configuration",
		},
		{
			name:       "none declared",
			xml:        `<REQ-IF/>`,
			wantNS:     "",
			wantConfig: "",
		},
		{
			name: "configuration only",
			xml: `<reqif:REQ-IF xmlns:reqif="http://www.omg.org/spec/ReqIF/20110401/reqif.xsd"
				xmlns:configuration="http://example.com/configuration"/>`,
			wantNS:     "",
			wantConfig: "http://example.com/configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.xml)
			ns := Capture(doc.Root())
			if ns.Default != tt.wantNS {
				t.Fatalf("Default = %q, want %q", ns.Default, tt.wantNS)
			}
			if ns.Configuration != tt.wantConfig {
				t.Fatalf("Configuration = %q, want %q", ns.Configuration, tt.wantConfig)
			}
		})
	}
}

func TestCaptureNilRoot(t *testing.T) {
	if got := Capture(nil); got != (Namespaces{}) {
		t.Fatalf("Capture(nil) = %+v, want zero value", got)
	}
}

func TestStripRemovesPrefixes(t *testing.T) {
	doc := parseDoc(t, `<reqif:REQ-IF xmlns:reqif="urn:reqif" xmlns:configuration="urn:cfg">
		<reqif:CORE-CONTENT>
			<reqif:REQ-IF-CONTENT/>
		</reqif:CORE-CONTENT>
	</reqif:REQ-IF>`)

	Strip(doc)

	root := doc.Root()
	if root.Space != "" || root.Tag != "REQ-IF" {
		t.Fatalf("root = %s:%s, want REQ-IF without prefix", root.Space, root.Tag)
	}
	core := root.SelectElement("CORE-CONTENT")
	if core == nil {
		t.Fatal("SelectElement(CORE-CONTENT) = nil after strip")
	}
	if core.SelectElement("REQ-IF-CONTENT") == nil {
		t.Fatal("SelectElement(REQ-IF-CONTENT) = nil after strip")
	}
}

func TestStripRemovesDeclarations(t *testing.T) {
	doc := parseDoc(t, `<REQ-IF xmlns="urn:reqif" xmlns:configuration="urn:cfg" IDENTIFIER="R-1"/>`)

	Strip(doc)

	root := doc.Root()
	for _, attr := range root.Attr {
		if attr.Space == "xmlns" || attr.Key == "xmlns" {
			t.Fatalf("namespace declaration %s survived strip", attr.FullKey())
		}
	}
	if got := root.SelectAttrValue("IDENTIFIER", ""); got != "R-1" {
		t.Fatalf("IDENTIFIER = %q, want %q", got, "R-1")
	}
}

func TestCaptureThenStripOrder(t *testing.T) {
	doc := parseDoc(t, `<REQ-IF xmlns="urn:reqif" xmlns:configuration="urn:cfg"/>`)

	ns := Capture(doc.Root())
	Strip(doc)

	if ns.Default != "urn:reqif" || ns.Configuration != "urn:cfg" {
		t.Fatalf("Capture() = %+v, want urn:reqif/urn:cfg", ns)
	}
	// After stripping, the declarations are gone from the tree.
	if got := Capture(doc.Root()); got != (Namespaces{}) {
		t.Fatalf("Capture() after Strip() = %+v, want zero value", got)
	}
}
