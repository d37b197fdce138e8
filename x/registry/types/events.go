package types

// Event types for the registry module
const (
	EventTypeComponentSet = "registry_component_set"
	EventTypeDaoInfoSet   = "registry_dao_info_set"
)

// Event attribute keys for the registry module
const (
	AttributeKeyComponent = "component"
	AttributeKeyAddress   = "address"
	AttributeKeyDaoName   = "dao_name"
)
