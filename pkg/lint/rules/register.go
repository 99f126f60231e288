package rules

import "github.com/yaklabco/mdblocklint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewReferenceDefinitionPlacementRule()) // MDL004
	registry.Register(NewReferenceLinkImagesRule())          // MD052
	registry.Register(NewLinkImageRefDefsRule())             // MD053
}

// RegisterAliases registers alternative names that differ from a rule's
// canonical Name().
func RegisterAliases(registry *lint.Registry) {
	registry.RegisterAlias("reference-placement", PlacementRuleID)
	registry.RegisterAlias("definition-placement", PlacementRuleID)
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterAliases(lint.DefaultRegistry)
}
