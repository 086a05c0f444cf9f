package analyzer

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// analysisFunction is the structured-output contract: four required
// boolean category flags plus an optional justification per category.
var analysisFunction = openai.FunctionDefinition{
	Name:        functionName,
	Description: "Categorize a Reddit post into themes",
	Parameters: jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"categories": {
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"isSolutionRequest": {Type: jsonschema.Boolean},
					"isPainOrAnger":     {Type: jsonschema.Boolean},
					"isAdviceRequest":   {Type: jsonschema.Boolean},
					"isMoneyTalk":       {Type: jsonschema.Boolean},
				},
				Required: []string{"isSolutionRequest", "isPainOrAnger", "isAdviceRequest", "isMoneyTalk"},
			},
			"reasoning": {
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"solutionRequest": {Type: jsonschema.String},
					"painOrAnger":     {Type: jsonschema.String},
					"adviceRequest":   {Type: jsonschema.String},
					"moneyTalk":       {Type: jsonschema.String},
				},
			},
		},
		Required: []string{"categories", "reasoning"},
	},
}
