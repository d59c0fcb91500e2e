package model

import (
	"bytes"
	"encoding/json"
)

// JSON serialization support for model types.
// Type definitions, values and bodies include a "kind" field for type
// discrimination; decoding peeks at it to pick the concrete type.

// MarshalJSON implements json.Marshaler for Interface.
func (d *Interface) MarshalJSON() ([]byte, error) {
	type alias Interface
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		*alias
	}{
		Kind:  KindInterface.String(),
		alias: (*alias)(d),
	})
}

// MarshalJSON implements json.Marshaler for Request.
func (d *Request) MarshalJSON() ([]byte, error) {
	type alias Request
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		*alias
	}{
		Kind:  KindRequest.String(),
		alias: (*alias)(d),
	})
}

// UnmarshalJSON implements json.Unmarshaler for Request.
func (d *Request) UnmarshalJSON(data []byte) error {
	type alias Request
	aux := struct {
		*alias
		Body json.RawMessage `json:"body"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	body, err := decodeBody(aux.Body)
	if err != nil {
		return err
	}
	d.Body = body
	return nil
}

// MarshalJSON implements json.Marshaler for Response.
func (d *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		*alias
	}{
		Kind:  KindResponse.String(),
		alias: (*alias)(d),
	})
}

// UnmarshalJSON implements json.Unmarshaler for Response.
func (d *Response) UnmarshalJSON(data []byte) error {
	type alias Response
	aux := struct {
		*alias
		Body json.RawMessage `json:"body"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	body, err := decodeBody(aux.Body)
	if err != nil {
		return err
	}
	d.Body = body
	return nil
}

// MarshalJSON implements json.Marshaler for ResponseException.
func (e ResponseException) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Description string `json:"description,omitempty"`
		Codes       []int  `json:"statusCodes,omitempty"`
		Body        Body   `json:"body"`
	}{
		Description: e.Description,
		Codes:       e.Codes,
		Body:        e.Body,
	})
}

// UnmarshalJSON implements json.Unmarshaler for ResponseException.
func (e *ResponseException) UnmarshalJSON(data []byte) error {
	var aux struct {
		Description string          `json:"description"`
		Codes       []int           `json:"statusCodes"`
		Body        json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	body, err := decodeBody(aux.Body)
	if err != nil {
		return err
	}
	*e = ResponseException{Description: aux.Description, Codes: aux.Codes, Body: body}
	return nil
}

// MarshalJSON implements json.Marshaler for TypeAlias.
func (d *TypeAlias) MarshalJSON() ([]byte, error) {
	type alias TypeAlias
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		*alias
	}{
		Kind:  KindTypeAlias.String(),
		alias: (*alias)(d),
	})
}

// UnmarshalJSON implements json.Unmarshaler for TypeAlias.
func (d *TypeAlias) UnmarshalJSON(data []byte) error {
	type alias TypeAlias
	aux := struct {
		*alias
		Type json.RawMessage `json:"type"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	typ, err := decodeValue(aux.Type)
	if err != nil {
		return err
	}
	d.Type = typ
	return nil
}

// MarshalJSON implements json.Marshaler for Enum.
func (d *Enum) MarshalJSON() ([]byte, error) {
	type alias Enum
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		*alias
	}{
		Kind:  KindEnum.String(),
		alias: (*alias)(d),
	})
}

// MarshalJSON implements json.Marshaler for Inherits.
func (i Inherits) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type     TypeName  `json:"type"`
		Generics []ValueOf `json:"generics,omitempty"`
	}{
		Type:     i.Type,
		Generics: i.Generics,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Inherits.
func (i *Inherits) UnmarshalJSON(data []byte) error {
	var aux struct {
		Type     TypeName          `json:"type"`
		Generics []json.RawMessage `json:"generics"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	generics, err := decodeValues(aux.Generics)
	if err != nil {
		return err
	}
	*i = Inherits{Type: aux.Type, Generics: generics}
	return nil
}

// MarshalJSON implements json.Marshaler for Property.
func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name          string       `json:"name"`
		Description   string       `json:"description,omitempty"`
		Required      bool         `json:"required"`
		ServerDefault any          `json:"serverDefault,omitempty"`
		Aliases       []string     `json:"aliases,omitempty"`
		Deprecation   *Deprecation `json:"deprecation,omitempty"`
		Type          ValueOf      `json:"type"`
	}{
		Name:          p.Name,
		Description:   p.Description,
		Required:      p.Required,
		ServerDefault: p.ServerDefault,
		Aliases:       p.Aliases,
		Deprecation:   p.Deprecation,
		Type:          p.Type,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Property.
func (p *Property) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name          string          `json:"name"`
		Description   string          `json:"description"`
		Required      bool            `json:"required"`
		ServerDefault any             `json:"serverDefault"`
		Aliases       []string        `json:"aliases"`
		Deprecation   *Deprecation    `json:"deprecation"`
		Type          json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	typ, err := decodeValue(aux.Type)
	if err != nil {
		return err
	}
	*p = Property{
		Name:          aux.Name,
		Description:   aux.Description,
		Required:      aux.Required,
		ServerDefault: aux.ServerDefault,
		Aliases:       aux.Aliases,
		Deprecation:   aux.Deprecation,
		Type:          typ,
	}
	return nil
}

// MarshalJSON implements json.Marshaler for InstanceOf.
func (v *InstanceOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind     string    `json:"kind"`
		Type     TypeName  `json:"type"`
		Generics []ValueOf `json:"generics,omitempty"`
	}{
		Kind:     KindInstanceOf.String(),
		Type:     v.Type,
		Generics: v.Generics,
	})
}

// UnmarshalJSON implements json.Unmarshaler for InstanceOf.
func (v *InstanceOf) UnmarshalJSON(data []byte) error {
	var aux Inherits
	if err := aux.UnmarshalJSON(data); err != nil {
		return err
	}
	*v = InstanceOf{Type: aux.Type, Generics: aux.Generics}
	return nil
}

// MarshalJSON implements json.Marshaler for ArrayOf.
func (v *ArrayOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string  `json:"kind"`
		Value ValueOf `json:"value"`
	}{
		Kind:  KindArrayOf.String(),
		Value: v.Value,
	})
}

// UnmarshalJSON implements json.Unmarshaler for ArrayOf.
func (v *ArrayOf) UnmarshalJSON(data []byte) error {
	var aux struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := decodeValue(aux.Value)
	if err != nil {
		return err
	}
	v.Value = value
	return nil
}

// MarshalJSON implements json.Marshaler for DictionaryOf.
func (v *DictionaryOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind      string  `json:"kind"`
		Key       ValueOf `json:"key"`
		Value     ValueOf `json:"value"`
		SingleKey bool    `json:"singleKey"`
	}{
		Kind:      KindDictionaryOf.String(),
		Key:       v.Key,
		Value:     v.Value,
		SingleKey: v.SingleKey,
	})
}

// UnmarshalJSON implements json.Unmarshaler for DictionaryOf.
func (v *DictionaryOf) UnmarshalJSON(data []byte) error {
	var aux struct {
		Key       json.RawMessage `json:"key"`
		Value     json.RawMessage `json:"value"`
		SingleKey bool            `json:"singleKey"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	key, err := decodeValue(aux.Key)
	if err != nil {
		return err
	}
	value, err := decodeValue(aux.Value)
	if err != nil {
		return err
	}
	*v = DictionaryOf{Key: key, Value: value, SingleKey: aux.SingleKey}
	return nil
}

// MarshalJSON implements json.Marshaler for UnionOf.
func (v *UnionOf) MarshalJSON() ([]byte, error) {
	items := v.Items
	if items == nil {
		items = []ValueOf{}
	}
	return json.Marshal(&struct {
		Kind  string    `json:"kind"`
		Items []ValueOf `json:"items"`
	}{
		Kind:  KindUnionOf.String(),
		Items: items,
	})
}

// UnmarshalJSON implements json.Unmarshaler for UnionOf.
func (v *UnionOf) UnmarshalJSON(data []byte) error {
	var aux struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	items, err := decodeValues(aux.Items)
	if err != nil {
		return err
	}
	v.Items = items
	return nil
}

// MarshalJSON implements json.Marshaler for LiteralValue.
func (v *LiteralValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Value any    `json:"value"`
	}{
		Kind:  KindLiteralValue.String(),
		Value: v.Value,
	})
}

// UnmarshalJSON implements json.Unmarshaler for LiteralValue.
func (v *LiteralValue) UnmarshalJSON(data []byte) error {
	var aux struct {
		Value any `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v.Value = aux.Value
	return nil
}

// MarshalJSON implements json.Marshaler for UserDefinedValue.
func (v *UserDefinedValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
	}{
		Kind: KindUserDefinedValue.String(),
	})
}

// MarshalJSON implements json.Marshaler for ValueBody.
func (b *ValueBody) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind        string  `json:"kind"`
		Value       ValueOf `json:"value"`
		CodegenName string  `json:"codegenName,omitempty"`
	}{
		Kind:        KindValueBody.String(),
		Value:       b.Value,
		CodegenName: b.CodegenName,
	})
}

// UnmarshalJSON implements json.Unmarshaler for ValueBody.
func (b *ValueBody) UnmarshalJSON(data []byte) error {
	var aux struct {
		Value       json.RawMessage `json:"value"`
		CodegenName string          `json:"codegenName"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := decodeValue(aux.Value)
	if err != nil {
		return err
	}
	*b = ValueBody{Value: value, CodegenName: aux.CodegenName}
	return nil
}

// MarshalJSON implements json.Marshaler for PropertiesBody.
func (b *PropertiesBody) MarshalJSON() ([]byte, error) {
	props := b.Properties
	if props == nil {
		props = []Property{}
	}
	return json.Marshal(&struct {
		Kind       string     `json:"kind"`
		Properties []Property `json:"properties"`
	}{
		Kind:       KindPropertiesBody.String(),
		Properties: props,
	})
}

// MarshalJSON implements json.Marshaler for NoBody.
func (b *NoBody) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
	}{
		Kind: KindNoBody.String(),
	})
}

// MarshalJSON implements json.Marshaler for Model.
// Types are written in table order.
func (m *Model) MarshalJSON() ([]byte, error) {
	types := make([]TypeDefinition, 0, m.Types.Len())
	for _, def := range m.Types.All() {
		types = append(types, def)
	}
	endpoints := m.Endpoints
	if endpoints == nil {
		endpoints = []Endpoint{}
	}
	return json.Marshal(&struct {
		Info      *Info            `json:"_info,omitempty"`
		Endpoints []Endpoint       `json:"endpoints"`
		Types     []TypeDefinition `json:"types"`
	}{
		Info:      m.Info,
		Endpoints: endpoints,
		Types:     types,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Model.
func (m *Model) UnmarshalJSON(data []byte) error {
	var aux struct {
		Info      *Info             `json:"_info"`
		Endpoints []Endpoint        `json:"endpoints"`
		Types     []json.RawMessage `json:"types"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	types := NewTypeTable()
	for _, raw := range aux.Types {
		def, err := decodeType(raw)
		if err != nil {
			return err
		}
		types.Insert(def.Base().Name, def)
	}
	*m = Model{Info: aux.Info, Endpoints: aux.Endpoints, Types: types}
	return nil
}

func peekKind(data []byte) (string, error) {
	var peek struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return "", err
	}
	return peek.Kind, nil
}

func isNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

func decodeType(data []byte) (TypeDefinition, error) {
	kind, err := peekKind(data)
	if err != nil {
		return nil, err
	}
	var def TypeDefinition
	switch kind {
	case KindInterface.String():
		def = &Interface{}
	case KindRequest.String():
		def = &Request{}
	case KindResponse.String():
		def = &Response{}
	case KindTypeAlias.String():
		def = &TypeAlias{}
	case KindEnum.String():
		def = &Enum{}
	default:
		return nil, Errorf(CodeDecode, "unknown type definition kind %q", kind)
	}
	if err := json.Unmarshal(data, def); err != nil {
		return nil, err
	}
	return def, nil
}

func decodeValue(data []byte) (ValueOf, error) {
	if isNull(data) {
		return nil, nil
	}
	kind, err := peekKind(data)
	if err != nil {
		return nil, err
	}
	var v ValueOf
	switch kind {
	case KindInstanceOf.String():
		v = &InstanceOf{}
	case KindArrayOf.String():
		v = &ArrayOf{}
	case KindDictionaryOf.String():
		v = &DictionaryOf{}
	case KindUnionOf.String():
		v = &UnionOf{}
	case KindLiteralValue.String():
		v = &LiteralValue{}
	case KindUserDefinedValue.String():
		return &UserDefinedValue{}, nil
	default:
		return nil, Errorf(CodeDecode, "unknown value kind %q", kind)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeValues(raw []json.RawMessage) ([]ValueOf, error) {
	if raw == nil {
		return nil, nil
	}
	values := make([]ValueOf, len(raw))
	for i, r := range raw {
		v, err := decodeValue(r)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func decodeBody(data []byte) (Body, error) {
	if isNull(data) {
		return nil, nil
	}
	kind, err := peekKind(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindValueBody.String():
		b := &ValueBody{}
		if err := json.Unmarshal(data, b); err != nil {
			return nil, err
		}
		return b, nil
	case KindPropertiesBody.String():
		var aux struct {
			Properties []Property `json:"properties"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, err
		}
		return &PropertiesBody{Properties: aux.Properties}, nil
	case KindNoBody.String():
		return &NoBody{}, nil
	default:
		return nil, Errorf(CodeDecode, "unknown body kind %q", kind)
	}
}
