package fatsecret

import (
	"encoding/json"
	"fmt"
)

// listEnvelopes maps a top-level envelope key to the sub-key holding the
// actual list. Checked in this order.
var listEnvelopes = []struct {
	key    string
	subKey string
}{
	{"foods", "food"},
	{"recipes", "recipe"},
	{"saved_meals", "saved_meal"},
	{"saved_meal_items", "saved_meal_item"},
	{"exercise_types", "exercise"},
	{"food_entries", "food_entry"},
	{"month", "day"},
}

// verbatimEnvelopes are top-level keys whose nested value is returned as-is.
var verbatimEnvelopes = []string{
	"food",
	"recipe",
	"recipe_types",
	"saved_meal_id",
	"saved_meal_item_id",
	"food_entry_id",
}

// generalCodes are the error codes reported as general failures. The
// remaining low codes (2-9) are authentication failures.
var generalCodes = map[int]bool{
	1: true, 10: true, 11: true, 12: true, 20: true, 21: true,
}

// interpret classifies a response body by its top-level envelope key and
// either returns the reshaped success payload or an *APIError.
//
// Real envelopes carry exactly one meaningful key, but an error envelope is
// always checked before any other interpretation. Bodies matching no rule
// produce an absent result (nil, nil) rather than an error; so do error
// envelopes whose code falls outside every known band. Both are observed
// provider behavior.
func interpret(body []byte) (any, error) {
	if len(body) == 0 {
		return nil, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if raw, ok := envelope["error"]; ok {
		if err := interpretError(raw); err != nil {
			return nil, err
		}
	}

	if _, ok := envelope["success"]; ok {
		return true, nil
	}

	for _, e := range listEnvelopes {
		if raw, ok := envelope[e.key]; ok {
			return unwrap(raw, e.subKey)
		}
	}

	if raw, ok := envelope["profile"]; ok {
		return interpretProfile(raw)
	}

	for _, key := range verbatimEnvelopes {
		if raw, ok := envelope[key]; ok {
			return decodeValue(raw)
		}
	}

	return nil, nil
}

// interpretError maps an error envelope onto an *APIError by code band. A
// malformed envelope or an unrecognized code yields nil.
func interpretError(raw json.RawMessage) error {
	var e struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil
	}

	switch {
	case e.Code == 2:
		// The provider's own message for code 2 is unhelpful; substitute
		// the canonical one.
		return &APIError{Kind: KindAuthentication, Code: 2, Message: "This api call requires an authenticated session"}
	case generalCodes[e.Code]:
		return &APIError{Kind: KindGeneral, Code: e.Code, Message: e.Message}
	case e.Code >= 3 && e.Code <= 9:
		return &APIError{Kind: KindAuthentication, Code: e.Code, Message: e.Message}
	case e.Code >= 101 && e.Code <= 108:
		return &APIError{Kind: KindParameter, Code: e.Code, Message: e.Message}
	case e.Code >= 201 && e.Code <= 207:
		return &APIError{Kind: KindApplication, Code: e.Code, Message: e.Message}
	}
	return nil
}

// unwrap returns the value one level down, under the envelope's fixed
// sub-key. A missing sub-key counts as an absent result.
func unwrap(raw json.RawMessage, subKey string) (any, error) {
	var inner map[string]json.RawMessage
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil, fmt.Errorf("failed to decode %q envelope: %w", subKey, err)
	}
	sub, ok := inner[subKey]
	if !ok {
		return nil, nil
	}
	return decodeValue(sub)
}

// interpretProfile returns the profile's auth token pair when present,
// otherwise the profile object itself.
func interpretProfile(raw json.RawMessage) (any, error) {
	var profile map[string]any
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile envelope: %w", err)
	}
	if token, ok := profile["auth_token"].(string); ok {
		secret, _ := profile["auth_secret"].(string)
		return TokenPair{Token: token, Secret: secret}, nil
	}
	return Record(profile), nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return value, nil
}
