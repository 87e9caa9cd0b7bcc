package api

import "strconv"

// Field types supported by entity schemas.
const (
	FieldStr  = "str"
	FieldInt  = "int"
	FieldEnum = "enum"
	FieldText = "text"
)

// Field describes one column of an entity kind.
// The core logic only consumes defaults, required flags and key order;
// the remaining attributes describe the data for front ends.
type Field struct {
	// Key of the field inside a record.
	Key string `hcl:"key,label" json:"key"`
	// Label is the human-readable caption.
	Label string `hcl:"label,optional" json:"label,omitempty"`
	// Type is one of str, int, enum, text. Empty means str.
	Type string `hcl:"type,optional" json:"type,omitempty"`
	// Options enumerates the allowed values for enum fields.
	Options []string `hcl:"options,optional" json:"options,omitempty"`
	// Min, Max and Step bound int fields.
	Min  *int `hcl:"min,optional" json:"min,omitempty"`
	Max  *int `hcl:"max,optional" json:"max,omitempty"`
	Step *int `hcl:"step,optional" json:"step,omitempty"`
	// Default is the initial value for new records, as text.
	Default string `hcl:"default,optional" json:"default,omitempty"`
	// Required marks fields that must be non-blank on edit.
	Required bool `hcl:"required,optional" json:"required,omitempty"`
}

// Kind describes one entity table (races, classes, ...) and the file
// that backs it inside the data directory.
type Kind struct {
	// Name of the kind, used as the CLI argument.
	Name string `hcl:"name,label" json:"name"`
	// File is the JSON file name inside the data directory.
	File string `hcl:"file" json:"file"`
	// Fields of the kind, in form order.
	Fields []Field `hcl:"field,block" json:"fields"`
}

// Schema is the root of a declarative schema file.
type Schema struct {
	Kinds []Kind `hcl:"kind,block"`
}

// DefaultValue returns the typed initial value for the field.
func (f Field) DefaultValue() any {
	switch f.Type {
	case FieldInt:
		n, err := strconv.Atoi(f.Default)
		if err != nil {
			return 0
		}
		return n
	case FieldText:
		return ""
	default:
		return f.Default
	}
}

// FieldKeys returns the keys of all fields in declaration order.
func (k Kind) FieldKeys() []string {
	keys := make([]string, len(k.Fields))
	for i, f := range k.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Field looks up a field descriptor by key.
func (k Kind) Field(key string) (Field, bool) {
	for _, f := range k.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func intp(n int) *int { return &n }

// DefaultKinds returns the built-in entity kinds, used when no schema
// file is configured.
func DefaultKinds() []Kind {
	return []Kind{
		{
			Name: "race",
			File: "races.json",
			Fields: []Field{
				{Key: "name", Label: "名称", Type: FieldStr, Required: true},
				{Key: "desc", Label: "描述", Type: FieldText},
				{Key: "speed", Label: "速度", Type: FieldInt, Min: intp(0), Max: intp(60), Step: intp(5), Default: "30"},
				{Key: "size", Label: "体型", Type: FieldEnum, Options: []string{"Small", "Medium"}, Default: "Medium"},
				{Key: "darkvision", Label: "黑暗视觉", Type: FieldInt, Min: intp(0), Max: intp(120), Step: intp(5), Default: "0"},
				{Key: "languages", Label: "语言", Type: FieldStr},
				{Key: "traits", Label: "特性", Type: FieldText},
			},
		},
		{
			Name: "class",
			File: "classes.json",
			Fields: []Field{
				{Key: "name", Label: "名称", Type: FieldStr, Required: true},
				{Key: "desc", Label: "描述", Type: FieldText},
				{Key: "hit_die", Label: "生命骰", Type: FieldInt, Min: intp(4), Max: intp(12), Step: intp(2), Default: "8"},
				{Key: "primary_ability", Label: "主属性", Type: FieldStr},
				{Key: "proficiencies", Label: "熟练项", Type: FieldText},
			},
		},
		{
			Name: "background",
			File: "backgrounds.json",
			Fields: []Field{
				{Key: "name", Label: "名称", Type: FieldStr, Required: true},
				{Key: "desc", Label: "描述", Type: FieldText},
				{Key: "skills", Label: "技能", Type: FieldStr},
				{Key: "feature", Label: "特性", Type: FieldText},
			},
		},
	}
}
