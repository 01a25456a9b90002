package reqif

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	reqiferrors "github.com/BobRollenhagen/reqif/errors"
	"github.com/BobRollenhagen/reqif/internal/decode"
	"github.com/BobRollenhagen/reqif/internal/sections"
	"github.com/BobRollenhagen/reqif/internal/xmlns"
	"github.com/BobRollenhagen/reqif/model"
)

// parseBundle assembles a bundle from a parsed XML tree: capture the
// namespace URIs, strip namespaces, locate the structural sections, decode
// every section child, and build the cross-reference indexes.
func parseBundle(doc *etree.Document, log *zap.Logger) (*Bundle, error) {
	root := doc.Root()
	if root == nil {
		return nil, reqiferrors.FormatList{
			reqiferrors.NewFormat(reqiferrors.ErrNoRoot, "document has no root element", ""),
		}
	}

	// Namespace URIs must be captured before normalization; stripping
	// removes the declarations from the tree.
	ns := xmlns.Capture(root)
	xmlns.Strip(doc)

	layout, err := sections.Locate(root)
	if err != nil {
		return nil, err
	}

	bundle := newBundle(ns.Default, ns.Configuration)
	if layout.Empty {
		log.Debug("document is structurally empty")
		return bundle, nil
	}

	// Data types decode first; later sections reference them by
	// identifier. The lookup map is an internal aid and is not exposed
	// on the bundle.
	dataTypesByID := make(map[string]*model.DataType)
	for _, el := range layout.DataTypes.ChildElements() {
		dt, err := decode.DataType(el)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", sections.TagDataTypes, err)
		}
		bundle.DataTypes = append(bundle.DataTypes, dt)
		dataTypesByID[dt.Identifier] = dt
	}

	for _, el := range layout.SpecTypes.ChildElements() {
		if el.Tag != decode.TagSpecObjectType {
			// The format permits other type-definition kinds here;
			// they are skipped without a warning.
			log.Debug("skipping spec type kind", zap.String("tag", el.Tag))
			continue
		}
		sot, err := decode.SpecObjectType(el)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", sections.TagSpecTypes, err)
		}
		bundle.SpecObjectTypes = append(bundle.SpecObjectTypes, sot)
	}

	for _, el := range layout.Specifications.ChildElements() {
		spec, err := decode.Specification(el)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", sections.TagSpecifications, err)
		}
		bundle.Specifications = append(bundle.Specifications, spec)
	}

	if layout.SpecRelations != nil {
		for _, el := range layout.SpecRelations.ChildElements() {
			rel, err := decode.SpecRelation(el)
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", sections.TagSpecRelations, err)
			}
			bundle.SpecRelations = append(bundle.SpecRelations, rel)
			bundle.relationTargets[rel.Source] = append(bundle.relationTargets[rel.Source], rel.Target)
		}
	}

	for _, el := range layout.SpecObjects.ChildElements() {
		so, err := decode.SpecObject(el)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", sections.TagSpecObjects, err)
		}
		bundle.SpecObjects = append(bundle.SpecObjects, so)
		// Last write wins for duplicate identifiers; the ordered slice
		// keeps both objects.
		bundle.specObjectsByID[so.Identifier] = so
	}

	log.Debug("assembled bundle",
		zap.Int("data_types", len(bundle.DataTypes)),
		zap.Int("spec_object_types", len(bundle.SpecObjectTypes)),
		zap.Int("spec_objects", len(bundle.SpecObjects)),
		zap.Int("spec_relations", len(bundle.SpecRelations)),
		zap.Int("specifications", len(bundle.Specifications)))
	return bundle, nil
}
