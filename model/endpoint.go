package model

// Endpoint is a single API operation.
type Endpoint struct {
	// Name is the endpoint identifier (e.g., "search", "indices.create").
	Name string `json:"name"`

	Description string `json:"description,omitempty"`
	DocURL      string `json:"docUrl,omitempty"`

	// Request names the request type. Nil for endpoints that are not yet
	// modeled.
	Request *TypeName `json:"request"`

	// Response names the response type. Nil for endpoints that are not yet
	// modeled.
	Response *TypeName `json:"response"`

	URLs []URLTemplate `json:"urls,omitempty"`
}

// URLTemplate is a path template and the HTTP methods it accepts.
type URLTemplate struct {
	Path    string   `json:"path"`
	Methods []string `json:"methods"`
}
