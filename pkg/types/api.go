package types

// ModelView is the wire form of a stored model.
type ModelView struct {
	// Generated unique identifier.
	// example: 1b4e28ba-2fa1-11d2-883f-0016d3cca427
	ID string `json:"id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	// Canonical (uppercase) model-type name.
	// example: ORDER
	ModelName string `json:"modelName" example:"ORDER"`
	// Attribute bag, timestamps included under their dynamic keys
	// (e.g. createTime, updateTime).
	Attrs map[string]any `json:"attrs"`
}

// ModelTypesResponse wraps the registered model-type names for GET /models.
type ModelTypesResponse struct {
	// Canonical model-type names in registration order.
	// example: ["ORDER","CUSTOMER"]
	Models []string `json:"models"`
}

// InstancesResponse wraps stored instances of one model type.
type InstancesResponse struct {
	Instances []ModelView `json:"instances"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
