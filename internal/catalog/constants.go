package catalog

// ==================== Files ====================

const (
	// ItemFileExt is the extension of item record files in the data directory
	ItemFileExt = ".json"

	// ItemSchemaName is the name the embedded item schema is registered under
	ItemSchemaName = "schemas/item.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadDirFailed      = "failed to read catalog directory %s: %w"
	ErrMsgReadFileFailed     = "failed to read item file: %w"
	ErrMsgParseFileFailed    = "failed to parse item file: %w"
	ErrMsgRegisterSchema     = "failed to register item schema: %w"
	ErrMsgMissingID          = "record has no id"
	ErrMsgNotAnObject        = "record is not a JSON object"
	ErrMsgSchemaCheckFailed  = "schema check failed: %w"
	ErrMsgNoRecordsLoaded    = "no item records loaded from %s"
	ErrMsgContextCanceled    = "catalog load canceled: %w"
	ErrFmtUnknownMaterialRef = "%s references unknown material %q"
)

// ==================== Log Messages ====================

const (
	LogMsgSkippedFile    = "Skipping unreadable item file"
	LogMsgLoadCompleted  = "Catalog load completed"
	LogMsgCatalogBuilt   = "Catalog built"
	LogMsgDuplicateID    = "Duplicate item id, keeping last"
	LogMsgAuditCompleted = "Catalog audit completed"
)

// ==================== Audit ====================

// Finding kinds reported by Audit
const (
	FindingMissingBase        = "missing_base"
	FindingMissingBaseRecipe  = "missing_base_recipe"
	FindingTierGap            = "tier_gap"
	FindingMissingUpgradeCost = "missing_upgrade_cost"
	FindingUnknownMaterial    = "unknown_material"
	FindingUnsupportedTier    = "unsupported_tier"
	FindingInvalidFile        = "invalid_file"
)

// Finding severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ==================== Store ====================

const (
	LogMsgReloadFailed    = "Catalog reload failed, keeping previous snapshot"
	LogMsgReloadSucceeded = "Catalog reloaded"
	LogMsgPublishFailed   = "Catalog event handlers failed"
)
