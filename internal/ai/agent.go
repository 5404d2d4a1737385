package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bilantra/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

// Brief is the slice of business state the assistant is allowed to see.
type Brief struct {
	BusinessName string       `json:"businessName"`
	Currency     string       `json:"currency"`
	Summary      core.Summary `json:"summary"`
	LoanScore    int          `json:"loanScore"`
	Insights     []string     `json:"insights"`
}

// Reply is the assistant's answer. The struct doubles as the strict JSON
// schema the model must fill.
type Reply struct {
	Message     string   `json:"message" jsonschema:"description=Short answer addressed to the business owner"`
	Suggestions []string `json:"suggestions" jsonschema:"description=Up to three concrete follow-up actions"`
}

type Advisor interface {
	Ask(ctx context.Context, question string, brief Brief) (*Reply, error)
}

// Agent answers through the OpenAI Responses API.
type Agent struct {
	client *openai.Client
	model  string
}

func NewAgent(apiKey, model string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = string(shared.ChatModelGPT4oMini)
	}
	return &Agent{client: &client, model: model}
}

func (a *Agent) Ask(ctx context.Context, question string, brief Brief) (*Reply, error) {
	briefJSON, err := json.Marshal(brief)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal brief: %w", err)
	}

	prompt := fmt.Sprintf(`You are a business advisor for a small shop owner.
Answer the question using only the business data below.
Rules:
1. Keep the message under 80 words.
2. Quote amounts in the business currency.
3. Give at most three suggestions.

Business data:
%s

Question: %s`, briefJSON, question)

	schemaMap, err := replySchema()
	if err != nil {
		return nil, err
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(a.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "advisor_reply",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("An advisory reply with follow-up suggestions"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: openai responses error: %v", core.ErrAssistantUnavailable, err)
	}

	content := resp.OutputText()
	if content == "" {
		return nil, fmt.Errorf("%w: empty response content", core.ErrAssistantUnavailable)
	}

	var reply Reply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, fmt.Errorf("%w: failed to parse completion: %v", core.ErrAssistantUnavailable, err)
	}
	reply.Message = strings.TrimSpace(reply.Message)
	if len(reply.Suggestions) > 3 {
		reply.Suggestions = reply.Suggestions[:3]
	}
	return &reply, nil
}

func replySchema() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schemaJSON, err := json.Marshal(reflector.Reflect(Reply{}))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}
	return schemaMap, nil
}
