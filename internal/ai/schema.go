package ai

// Schema is the subset of the generateContent response-schema grammar
// this client needs to declare its expected JSON shapes.
type Schema struct {
	Type       string             `json:"type"`
	Enum       []string           `json:"enum,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

const (
	typeArray  = "ARRAY"
	typeObject = "OBJECT"
	typeString = "STRING"
)

func suggestionListSchema() *Schema {
	return &Schema{
		Type: typeArray,
		Items: &Schema{
			Type: typeObject,
			Properties: map[string]*Schema{
				"task":          {Type: typeString},
				"category":      {Type: typeString, Enum: []string{"work", "personal", "health", "social"}},
				"estimatedTime": {Type: typeString},
			},
			Required: []string{"task", "category", "estimatedTime"},
		},
	}
}

func calendarEventSchema() *Schema {
	return &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"summary":     {Type: typeString},
			"description": {Type: typeString},
			"startTime":   {Type: typeString},
			"endTime":     {Type: typeString},
		},
		Required: []string{"summary", "description", "startTime", "endTime"},
	}
}
