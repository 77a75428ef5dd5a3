package schema

import internalschema "github.com/pigeonhole/go-formkit/internal/schema"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalschema.FieldType

const (
	FieldTypeString  = internalschema.FieldTypeString
	FieldTypeText    = internalschema.FieldTypeText
	FieldTypeBoolean = internalschema.FieldTypeBoolean
	FieldTypeInteger = internalschema.FieldTypeInteger
)

const (
	RuleRequired  = internalschema.RuleRequired
	RuleBoolean   = internalschema.RuleBoolean
	RuleMaxLength = internalschema.RuleMaxLength
	RuleMinValue  = internalschema.RuleMinValue
)

type Rule = internalschema.Rule
type Field = internalschema.Field
type Schema = internalschema.Schema

var (
	New       = internalschema.New
	MustNew   = internalschema.MustNew
	Required  = internalschema.Required
	Boolean   = internalschema.Boolean
	MaxLength = internalschema.MaxLength
	MinValue  = internalschema.MinValue
)
