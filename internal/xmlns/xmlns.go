// Package xmlns captures the namespace URIs a ReqIF document declares on
// its root element and strips namespace prefixes from the tree so later
// stages can locate sections by local tag name.
package xmlns

import "github.com/beevik/etree"

// ConfigurationPrefix is the prefix the format binds the tool-configuration
// namespace to on the root element.
const ConfigurationPrefix = "configuration"

// Namespaces holds the URIs read from the root element. Empty strings mean
// the document declared no such namespace; that is tolerated.
type Namespaces struct {
	Default       string
	Configuration string
}

// Capture reads the default and configuration namespace URIs from the root
// element's declarations. It must run before Strip: after stripping, the
// declarations are gone from the tree.
func Capture(root *etree.Element) Namespaces {
	if root == nil {
		return Namespaces{}
	}
	return Namespaces{
		Default:       root.SelectAttrValue("xmlns", ""),
		Configuration: root.SelectAttrValue("xmlns:"+ConfigurationPrefix, ""),
	}
}

// Strip rewrites every element's tag to its local name and removes
// namespace declarations from the whole tree, in place.
func Strip(doc *etree.Document) *etree.Document {
	if doc == nil {
		return nil
	}
	if root := doc.Root(); root != nil {
		stripElement(root)
	}
	return doc
}

func stripElement(el *etree.Element) {
	el.Space = ""
	kept := el.Attr[:0]
	for _, attr := range el.Attr {
		if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
			continue
		}
		kept = append(kept, attr)
	}
	el.Attr = kept
	for _, child := range el.ChildElements() {
		stripElement(child)
	}
}
