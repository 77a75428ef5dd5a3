// Package courses declares the course-management form schemas and the
// presentation helpers around them. Field declarations follow the backend
// contract: labels and messages here are the ones course staff see.
package courses

import (
	"strings"

	"github.com/pigeonhole/go-formkit/pkg/schema"
	"github.com/pigeonhole/go-formkit/pkg/widgets"
)

// Field names shared between the schemas and their consumers.
const (
	FieldName                       = "name"
	FieldDescription                = "description"
	FieldIsPublished                = "isPublished"
	FieldShowGroupMembersNames      = "showGroupMembersNames"
	FieldAllowMembersToCreateGroups = "allowMembersToCreateGroups"
	FieldMilestoneAlias             = "milestoneAlias"

	FieldStartDateTime = "startDateTime"
	FieldEndDateTime   = "endDateTime"
)

// MilestoneAliasMaxLength bounds the alias course staff can pick for the word
// "milestone" in their course.
const MilestoneAliasMaxLength = 255

// CreateCourseSchema declares the course creation form. The description may
// stay blank; the name must survive trimming.
func CreateCourseSchema() schema.Schema {
	return schema.MustNew("course-create",
		schema.Field{
			Name:        FieldName,
			Type:        schema.FieldTypeString,
			Label:       "Course name",
			Placeholder: "e.g. Introduction to Algorithms",
			Rules: []schema.Rule{
				schema.Required("Please enter a course name"),
				schema.MaxLength(255, ""),
			},
		},
		schema.Field{
			Name:        FieldDescription,
			Type:        schema.FieldTypeText,
			Label:       "Description",
			Description: "Shown on the course card. May be left blank.",
		},
		schema.Field{
			Name:    FieldIsPublished,
			Type:    schema.FieldTypeBoolean,
			Label:   "Published",
			Default: false,
			Rules:   []schema.Rule{schema.Boolean()},
		},
		schema.Field{
			Name:    FieldShowGroupMembersNames,
			Type:    schema.FieldTypeBoolean,
			Label:   "Show group member names",
			Default: true,
			Rules:   []schema.Rule{schema.Boolean()},
		},
		schema.Field{
			Name:    FieldAllowMembersToCreateGroups,
			Type:    schema.FieldTypeBoolean,
			Label:   "Allow members to create groups",
			Default: false,
			Rules:   []schema.Rule{schema.Boolean()},
		},
		schema.Field{
			Name:        FieldMilestoneAlias,
			Type:        schema.FieldTypeString,
			Label:       "Milestone alias",
			Placeholder: "e.g. sprint",
			Description: "Optional replacement for the word \"milestone\" in this course.",
			Rules: []schema.Rule{
				schema.MaxLength(MilestoneAliasMaxLength, ""),
			},
		},
	)
}

// MilestoneSchema declares the milestone creation form. Start and end are
// millisecond timestamps; the end may stay empty for open-ended milestones.
func MilestoneSchema() schema.Schema {
	return schema.MustNew("milestone-create",
		schema.Field{
			Name:  FieldName,
			Type:  schema.FieldTypeString,
			Label: "Milestone name",
			Rules: []schema.Rule{
				schema.Required("Please enter a milestone name"),
				schema.MaxLength(255, ""),
			},
		},
		schema.Field{
			Name:  FieldDescription,
			Type:  schema.FieldTypeText,
			Label: "Description",
		},
		schema.Field{
			Name:        FieldStartDateTime,
			Type:        schema.FieldTypeInteger,
			Label:       "Start date",
			Description: "Milliseconds since epoch.",
			Rules: []schema.Rule{
				schema.Required("Please enter a start date"),
				schema.MinValue(0, ""),
			},
		},
		schema.Field{
			Name:        FieldEndDateTime,
			Type:        schema.FieldTypeInteger,
			Label:       "End date",
			Description: "Milliseconds since epoch. Leave empty for open-ended milestones.",
			Rules: []schema.Rule{
				schema.MinValue(0, ""),
			},
		},
		schema.Field{
			Name:    FieldIsPublished,
			Type:    schema.FieldTypeBoolean,
			Label:   "Published",
			Default: false,
			Rules:   []schema.Rule{schema.Boolean()},
		},
	)
}

// WidgetRegistry returns the widget registry used for course forms. The
// built-ins already cover every declared field type.
func WidgetRegistry() *widgets.Registry {
	return widgets.NewRegistry()
}

// NormalizeCourseValues applies backend canonicalisation to validated course
// values: the milestone alias is stored lowercased. The input map is not
// modified.
func NormalizeCourseValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for name, value := range values {
		out[name] = value
	}
	if alias, ok := out[FieldMilestoneAlias].(string); ok {
		out[FieldMilestoneAlias] = strings.ToLower(alias)
	}
	return out
}
