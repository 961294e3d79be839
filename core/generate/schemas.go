// ABOUTME: JSON schema constraints handed to the language model per task
// ABOUTME: Each schema pins the shape the task decoder expects back

package generate

import "encoding/json"

var quizSchema = json.RawMessage(`{
  "type": "object",
  "required": ["questions"],
  "additionalProperties": false,
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 1,
      "maxItems": 20,
      "items": {
        "type": "object",
        "required": ["question", "options", "answer", "explanation", "category"],
        "additionalProperties": false,
        "properties": {
          "question": {"type": "string"},
          "options": {"type": "array", "minItems": 4, "maxItems": 4, "items": {"type": "string"}},
          "answer": {"type": "string"},
          "explanation": {"type": "string"},
          "category": {"type": "string"}
        }
      }
    }
  }
}`)

var suggestionsSchema = json.RawMessage(`{
  "type": "object",
  "required": ["categories"],
  "additionalProperties": false,
  "properties": {
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "emoji", "score", "summary", "suggestions", "searchQueries"],
        "additionalProperties": false,
        "properties": {
          "category": {"type": "string"},
          "emoji": {"type": "string"},
          "score": {"type": "number", "minimum": 0, "maximum": 100},
          "summary": {"type": "string"},
          "suggestions": {"type": "array", "items": {"type": "string"}},
          "searchQueries": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`)

var crosswordSchema = json.RawMessage(`{
  "type": "object",
  "required": ["words"],
  "additionalProperties": false,
  "properties": {
    "words": {
      "type": "array",
      "minItems": 1,
      "maxItems": 12,
      "items": {
        "type": "object",
        "required": ["answer", "hint"],
        "additionalProperties": false,
        "properties": {
          "answer": {"type": "string"},
          "hint": {"type": "string"}
        }
      }
    }
  }
}`)

var flashcardSchema = json.RawMessage(`{
  "type": "object",
  "required": ["title", "content"],
  "additionalProperties": false,
  "properties": {
    "title": {"type": "string"},
    "content": {"type": "string"}
  }
}`)

var imageScoreSchema = json.RawMessage(`{
  "type": "object",
  "required": ["score", "reasoning"],
  "additionalProperties": false,
  "properties": {
    "score": {"type": "number", "minimum": 0, "maximum": 100},
    "reasoning": {"type": "string"}
  }
}`)
