package schema

import (
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
)

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

var AtlasReplySchema = generateSchema[AtlasReply]()

// StructuredOutputsResponseFormat asks OpenAI-compatible backends to emit the
// AtlasReply shape directly. Recovery still runs on the result; structured
// outputs reduce, but do not eliminate, malformed responses.
func StructuredOutputsResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	p := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "atlas_reply",
		Description: openai.String("Internal emotional analysis and user-facing response"),
		Schema:      AtlasReplySchema,
		Strict:      openai.Bool(true),
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: p},
	}
}
