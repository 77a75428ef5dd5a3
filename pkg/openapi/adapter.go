package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

// Extension keys honoured on request-body properties.
const (
	widgetExtensionKey = "x-formkit-widget"
	orderExtensionKey  = "x-formkit-order"
)

// AdapterOption configures an Adapter before construction.
type AdapterOption func(*Adapter)

// WithValidation enables full document validation (including reference
// resolution) before the request body is read.
func WithValidation() AdapterOption {
	return func(a *Adapter) {
		a.validate = true
	}
}

// Adapter converts an OpenAPI operation's request body into a form schema:
// properties become fields, the required list becomes required rules, and
// length/bound constraints become their rule counterparts.
type Adapter struct {
	validate bool
}

// NewAdapter constructs an Adapter with the given options.
func NewAdapter(options ...AdapterOption) *Adapter {
	a := &Adapter{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// FormSchema loads the document, locates the operation by id, and builds a
// schema from its request body. Properties order by the x-formkit-order
// extension when present, then by name.
func (a *Adapter) FormSchema(ctx context.Context, doc Document, operationID string) (schema.Schema, error) {
	if err := ctx.Err(); err != nil {
		return schema.Schema{}, err
	}
	if strings.TrimSpace(operationID) == "" {
		return schema.Schema{}, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc.Raw())
	if err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if a.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return schema.Schema{}, fmt.Errorf("openapi: validate document: %w", err)
		}
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body := requestBodySchema(operation.RequestBody)
	if body == nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q has no usable request body schema", operationID)
	}

	fields, err := buildFields(body)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q: %w", operationID, err)
	}

	built, err := schema.New(operationID, fields...)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q: %w", operationID, err)
	}
	return built, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	content := ref.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

type orderedProperty struct {
	name   string
	order  int
	schema *openapi3.Schema
}

func buildFields(body *openapi3.Schema) ([]schema.Field, error) {
	if len(body.Properties) == 0 {
		return nil, errors.New("request body declares no properties")
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	properties := make([]orderedProperty, 0, len(body.Properties))
	for name, ref := range body.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		properties = append(properties, orderedProperty{
			name:   name,
			order:  propertyOrder(ref.Value),
			schema: ref.Value,
		})
	}
	sort.SliceStable(properties, func(i, j int) bool {
		if properties[i].order != properties[j].order {
			return properties[i].order < properties[j].order
		}
		return properties[i].name < properties[j].name
	})

	fields := make([]schema.Field, 0, len(properties))
	for _, prop := range properties {
		field, err := buildField(prop.name, prop.schema, required[prop.name])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func buildField(name string, prop *openapi3.Schema, required bool) (schema.Field, error) {
	fieldType, err := fieldType(prop)
	if err != nil {
		return schema.Field{}, fmt.Errorf("property %q: %w", name, err)
	}

	field := schema.Field{
		Name:        name,
		Type:        fieldType,
		Label:       prop.Title,
		Description: prop.Description,
		Default:     normaliseDefault(fieldType, prop.Default),
	}
	if widget, ok := prop.Extensions[widgetExtensionKey].(string); ok {
		field.Widget = strings.TrimSpace(widget)
	}

	label := field.Label
	if label == "" {
		label = name
	}

	if required && fieldType != schema.FieldTypeBoolean {
		field.Rules = append(field.Rules, schema.Required(fmt.Sprintf("%s is required", label)))
	}
	switch fieldType {
	case schema.FieldTypeBoolean:
		field.Rules = append(field.Rules, schema.Boolean())
	case schema.FieldTypeInteger:
		if prop.Min != nil {
			field.Rules = append(field.Rules, schema.MinValue(int64(*prop.Min), ""))
		}
	default:
		if prop.MaxLength != nil {
			field.Rules = append(field.Rules, schema.MaxLength(int(*prop.MaxLength), ""))
		}
	}

	return field, nil
}

func fieldType(prop *openapi3.Schema) (schema.FieldType, error) {
	switch {
	case prop.Type.Is(openapi3.TypeBoolean):
		return schema.FieldTypeBoolean, nil
	case prop.Type.Is(openapi3.TypeInteger), prop.Type.Is(openapi3.TypeNumber):
		return schema.FieldTypeInteger, nil
	case prop.Type.Is(openapi3.TypeString):
		if strings.EqualFold(prop.Format, "textarea") {
			return schema.FieldTypeText, nil
		}
		return schema.FieldTypeString, nil
	default:
		return "", fmt.Errorf("unsupported type %v", prop.Type)
	}
}

func propertyOrder(prop *openapi3.Schema) int {
	raw, ok := prop.Extensions[orderExtensionKey]
	if !ok {
		return int(^uint(0) >> 1)
	}
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return int(^uint(0) >> 1)
	}
}

func normaliseDefault(t schema.FieldType, value any) any {
	if value == nil {
		return nil
	}
	switch t {
	case schema.FieldTypeInteger:
		if f, ok := value.(float64); ok {
			return int64(f)
		}
	}
	return value
}
