package validation

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

// createContractSchema validates the shape of a create-contract payload
// before the domain-level checks run. It mirrors the request DTO.
const createContractSchema = `{
  "type": "object",
  "required": ["propertyId", "tenant", "hoster", "startDate", "endDate"],
  "properties": {
    "propertyId": {"type": "string", "minLength": 1},
    "templateId": {"type": "string"},
    "tenant": {"$ref": "#/definitions/party"},
    "hoster": {"$ref": "#/definitions/party"},
    "guarantors": {
      "type": "array",
      "items": {
        "allOf": [
          {"$ref": "#/definitions/party"},
          {"type": "object", "required": ["id"], "properties": {"id": {"type": "string", "minLength": 1}}}
        ]
      }
    },
    "startDate": {"type": "string", "format": "date-time"},
    "endDate": {"type": "string", "format": "date-time"},
    "terms": {
      "type": "object",
      "required": ["rentAmount", "paymentFrequency", "paymentDueDay", "maintenance"],
      "properties": {
        "rentAmount": {"type": "number", "exclusiveMinimum": 0},
        "depositAmount": {"type": "number", "minimum": 0},
        "paymentFrequency": {"enum": ["monthly", "biweekly", "weekly"]},
        "paymentDueDay": {"type": "integer", "minimum": 1, "maximum": 31},
        "maintenance": {"enum": ["tenant", "hoster", "shared"]}
      }
    },
    "clauses": {"type": "array", "items": {"type": "string"}},
    "customFields": {"type": "object", "additionalProperties": {"type": "string"}}
  },
  "definitions": {
    "party": {
      "type": "object",
      "required": ["name", "email"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "email": {"type": "string", "format": "email"},
        "phone": {"type": "string"},
        "governmentId": {"type": "string"}
      }
    }
  }
}`

// Result is the outcome of a pre-submit validation call.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

var contractSchema = gojsonschema.NewStringLoader(createContractSchema)

// ValidateCreateContract checks a raw create payload against the schema and
// returns every violation, not just the first.
func ValidateCreateContract(body json.RawMessage) (Result, error) {
	res, err := gojsonschema.Validate(contractSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return Result{}, err
	}
	if res.Valid() {
		return Result{Valid: true}, nil
	}
	out := Result{Valid: false}
	for _, e := range res.Errors() {
		out.Errors = append(out.Errors, e.String())
	}
	return out, nil
}
