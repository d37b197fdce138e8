package types

// Event types for the daoparams module
const (
	EventTypeBoundsSet         = "daoparams_bounds_set"
	EventTypeChangeProposed    = "daoparams_change_proposed"
	EventTypeChangeFinalized   = "daoparams_change_finalized"
	EventTypeModuleParamsSet   = "daoparams_module_params_set"
)

// Event attribute keys for the daoparams module
const (
	AttributeKeyParamKey = "param_key"
	AttributeKeyMin      = "min"
	AttributeKeyMax      = "max"
	AttributeKeyValue    = "value"
	AttributeKeyOldValue = "old_value"
	AttributeKeyReadyAt  = "ready_at"
)
