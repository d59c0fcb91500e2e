package model

// Request is the input of an endpoint: path parameters, query parameters
// and an optional body.
type Request struct {
	BaseType

	Generics          []TypeName `json:"generics,omitempty"`
	Inherits          *Inherits  `json:"inherits,omitempty"`
	Behaviors         []Inherits `json:"behaviors,omitempty"`
	AttachedBehaviors []string   `json:"attachedBehaviors,omitempty"`

	// Path contains the URL path parts.
	Path []Property `json:"path"`

	// Query contains the query string parameters.
	Query []Property `json:"query"`

	Body Body `json:"body"`
}

// Kind returns KindRequest.
func (*Request) Kind() TypeKind { return KindRequest }

// Base returns the request's base attributes.
func (d *Request) Base() *BaseType { return &d.BaseType }

func (*Request) sealed() {}

// Clone returns a copy of d whose slices can be edited without affecting d.
func (d *Request) Clone() *Request {
	c := *d
	c.Generics = append([]TypeName(nil), d.Generics...)
	c.Inherits = cloneInherits(d.Inherits)
	c.Behaviors = cloneBehaviors(d.Behaviors)
	c.AttachedBehaviors = append([]string(nil), d.AttachedBehaviors...)
	c.Path = cloneProperties(d.Path)
	c.Query = cloneProperties(d.Query)
	c.Body = cloneBody(d.Body)
	return &c
}

// Response is the output of an endpoint.
type Response struct {
	BaseType

	Generics  []TypeName `json:"generics,omitempty"`
	Behaviors []Inherits `json:"behaviors,omitempty"`

	Body Body `json:"body"`

	// Exceptions describes alternate bodies for specific status codes.
	Exceptions []ResponseException `json:"exceptions,omitempty"`
}

// Kind returns KindResponse.
func (*Response) Kind() TypeKind { return KindResponse }

// Base returns the response's base attributes.
func (d *Response) Base() *BaseType { return &d.BaseType }

func (*Response) sealed() {}

// Clone returns a copy of d whose slices can be edited without affecting d.
// Exceptions are shared.
func (d *Response) Clone() *Response {
	c := *d
	c.Generics = append([]TypeName(nil), d.Generics...)
	c.Behaviors = cloneBehaviors(d.Behaviors)
	c.Body = cloneBody(d.Body)
	return &c
}

// ResponseException is the body returned for a set of status codes.
type ResponseException struct {
	Description string
	Codes       []int
	Body        Body
}

// BodyKind identifies the variant of a Body.
type BodyKind int

const (
	KindValueBody      BodyKind = iota // A single value
	KindPropertiesBody                 // An object with properties
	KindNoBody                         // No body
)

// String returns the kind discriminator used in serialized models.
func (k BodyKind) String() string {
	switch k {
	case KindValueBody:
		return "value"
	case KindPropertiesBody:
		return "properties"
	case KindNoBody:
		return "no_body"
	default:
		return "unknown"
	}
}

// Body is a request or response body. The set of implementations is closed:
// ValueBody, PropertiesBody and NoBody. A nil Body is equivalent to NoBody.
type Body interface {
	Kind() BodyKind
	sealed()
}

// ValueBody is a body made of a single value.
type ValueBody struct {
	Value       ValueOf
	CodegenName string
}

// Kind returns KindValueBody.
func (*ValueBody) Kind() BodyKind { return KindValueBody }
func (*ValueBody) sealed()        {}

// PropertiesBody is an object body.
type PropertiesBody struct {
	Properties []Property
}

// Kind returns KindPropertiesBody.
func (*PropertiesBody) Kind() BodyKind { return KindPropertiesBody }
func (*PropertiesBody) sealed()        {}

// NoBody is the absence of a body.
type NoBody struct{}

// Kind returns KindNoBody.
func (*NoBody) Kind() BodyKind { return KindNoBody }
func (*NoBody) sealed()        {}

func cloneBody(b Body) Body {
	switch b := b.(type) {
	case *ValueBody:
		c := *b
		return &c
	case *PropertiesBody:
		return &PropertiesBody{Properties: cloneProperties(b.Properties)}
	default:
		return b
	}
}
