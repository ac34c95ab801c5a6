package openai

// Package openai implements the diagnosis generator port on top of the
// OpenAI chat completions API.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/fixhire/fixhire-api/internal/ports"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4oMini

const systemPrompt = `You are an expert automotive diagnostic AI that assists a repair shop service advisor.

OUTPUT: Return ONLY valid JSON (no markdown, no extra text) in this exact structure:

{
  "mostLikelyIssue": "Short editable diagnosis headline",
  "confidenceLevel": 0-100,
  "probableCauses": [
    {
      "title": "Short cause name",
      "likelihood": "high | medium | low",
      "explanation": "1-3 sentence explanation"
    }
  ],
  "partsNeeded": [
    {
      "partName": "Part or assembly",
      "oemOrAftermarket": "OEM | aftermarket ok | unspecified",
      "urgency": "required_before_release | upgrade_soon | optional",
      "notes": "Notes"
    }
  ],
  "estimatedLaborHours": 0,
  "additionalMechanicNotes": "",
  "estimatedPickupDate": ""
}

Rules:
- Do NOT include a summary section.
- Do NOT include immediateChecks / DIY tips.
- Provide 2-8 probableCauses when possible.
- Respect preferences.detailLevel, preferences.language, preferences.tone.
- If estimatedPickupDate unknown, return "" (empty string).`

// Generator produces diagnosis completions through the OpenAI API.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a Generator for the given API key and model.
// An empty model falls back to DefaultModel.
func NewGenerator(apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: openai.NewClient(apiKey), model: model}, nil
}

// NewGeneratorWithClient creates a Generator with a pre-built client, useful
// for tests and alternate base URLs.
func NewGeneratorWithClient(client *openai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// promptPayload mirrors the field names the system prompt refers to.
type promptPayload struct {
	Customer struct {
		FullName               string `json:"fullName"`
		Phone                  string `json:"phone"`
		Email                  string `json:"email"`
		PreferredContactMethod string `json:"preferredContactMethod"`
	} `json:"customer"`
	Vehicle struct {
		VIN          string `json:"vin"`
		Plate        string `json:"plate"`
		Year         string `json:"year"`
		Make         string `json:"make"`
		Model        string `json:"model"`
		Engine       string `json:"engine"`
		Transmission string `json:"transmission"`
		DropOffDate  string `json:"dropOffDate"`
	} `json:"vehicle"`
	Diagnostic struct {
		OBD2Data string   `json:"obd2Data"`
		Symptoms string   `json:"symptoms"`
		Media    []string `json:"media"`
	} `json:"diagnostic"`
	Preferences struct {
		DetailLevel string `json:"detailLevel"`
		Language    string `json:"language"`
		Tone        string `json:"tone"`
	} `json:"preferences"`
}

func buildPayload(in ports.GenerateInput) promptPayload {
	var p promptPayload
	p.Customer.FullName = in.Customer.FullName
	p.Customer.Phone = in.Customer.Phone
	p.Customer.Email = in.Customer.Email
	p.Customer.PreferredContactMethod = in.Customer.PreferredContactMethod
	p.Vehicle.VIN = in.Vehicle.VIN
	p.Vehicle.Plate = in.Vehicle.Plate
	p.Vehicle.Year = in.Vehicle.Year
	p.Vehicle.Make = in.Vehicle.Make
	p.Vehicle.Model = in.Vehicle.Model
	p.Vehicle.Engine = in.Vehicle.Engine
	p.Vehicle.Transmission = in.Vehicle.Transmission
	p.Vehicle.DropOffDate = in.Vehicle.DropOffDate
	p.Diagnostic.OBD2Data = in.Diagnostic.OBD2Data
	p.Diagnostic.Symptoms = in.Diagnostic.Symptoms
	p.Diagnostic.Media = in.Diagnostic.Media
	p.Preferences.DetailLevel = in.Preferences.DetailLevel
	p.Preferences.Language = in.Preferences.Language
	p.Preferences.Tone = in.Preferences.Tone
	return p
}

// Generate makes a single completion attempt. Failures and empty responses
// surface as errors; the raw text is not validated here.
func (g *Generator) Generate(ctx context.Context, in ports.GenerateInput) (ports.GenerateOutput, error) {
	payload, err := json.MarshalIndent(buildPayload(in), "", "  ")
	if err != nil {
		return ports.GenerateOutput{}, fmt.Errorf("marshal intake payload: %w", err)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				Content: "Here is the intake payload as JSON. Generate ONLY the diagnosis JSON object as specified.\n\n" +
					string(payload),
			},
		},
	})
	if err != nil {
		return ports.GenerateOutput{}, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return ports.GenerateOutput{}, errors.New("openai returned no choices")
	}
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if raw == "" {
		return ports.GenerateOutput{}, errors.New("openai returned an empty response")
	}

	modelID := resp.Model
	if modelID == "" {
		modelID = g.model
	}
	return ports.GenerateOutput{RawText: raw, ModelID: modelID}, nil
}
