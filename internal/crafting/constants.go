package crafting

import "time"

// ==================== Ingredient Spec Formats ====================

// Ingredient spec formats accepted by the parser
const (
	// FormatColon accepts only "kind:id:count" tokens
	FormatColon = "colon"
	// FormatLegacy accepts only "kind id count" triplets
	FormatLegacy = "legacy"
	// FormatAuto picks legacy when no token contains a colon, colon otherwise
	FormatAuto = "auto"
)

const (
	tokenSeparator = ":"
	tokenFields    = 3
)

// ==================== Token Cache ====================

// Tokenized specs are cached by raw string. Resolution against the
// registry is never cached so reloads are always observed.
const (
	TokenCacheSize = 256
	TokenCacheTTL  = 10 * time.Minute
)

// ==================== Error Messages ====================

// Parse error formats, all wrapping domain.ErrMalformedIngredient
const (
	ErrFmtEmptySpec       = "%w: empty ingredient spec"
	ErrFmtTokenShape      = "%w: token %q is not kind:id:count"
	ErrFmtTripletShape    = "%w: %d tokens is not a list of kind id count triplets"
	ErrFmtUnknownKind     = "%w: unknown kind %q in %q"
	ErrFmtUnknownKindHint = "%w: unknown kind %q in %q (did you mean %q?)"
	ErrFmtBadID           = "%w: id %q in %q is not a positive integer"
	ErrFmtBadCount        = "%w: count %q in %q must be an integer >= 1"
	ErrFmtUnresolved      = "%w: %s does not resolve to an item"
	ErrFmtUnknownFormat   = "unknown ingredient spec format %q"
)

// Registration and craft error formats
const (
	ErrFmtUnknownOutput     = "%w: %s"
	ErrFmtAlreadyRegistered = "%w: %s"
	ErrFmtNoRecipeMetadata  = "%w: %s has no recipe metadata"
	ErrFmtRecipeNotFound    = "%w: %s"
	ErrFmtInsufficient      = "%w: %s"
	ErrFmtCraftApplyFailed  = "craft %s failed: %w"
	ErrFmtRollbackFailed    = "craft %s rollback failed after %w: %w"
	ErrFmtNoIngredients     = "%w: recipe for %s has no ingredients"
	ErrFmtStoredCount       = "%w: recipe for %s needs %d of %s"
)

// ==================== Log Messages ====================

const (
	LogMsgRecipeRegistered = "Recipe registered"
	LogMsgRecipeRejected   = "Recipe rejected"
	LogMsgCatalogCleared   = "Recipe catalog cleared"
	LogMsgCatalogRestored  = "Recipe catalog restored"
	LogMsgRestoreSkipped   = "Skipping duplicate recipe on restore"
	LogMsgItemCrafted      = "Item crafted"
	LogMsgCraftFailed      = "Craft failed"
	LogMsgRolledBack       = "Craft rolled back"
	LogMsgPublishFailed    = "Failed to publish crafting event"
)
