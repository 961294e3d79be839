// Package core contains the business logic for the Quizzer API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (TabData, Quiz, CrosswordLayout, Flashcard, etc.)
// - tabextract: Tab content extraction, language detection and translation
// - generate: Model-backed generation (quiz, suggestions, crossword, flashcards, summaries)
// - crossword: Pure crossword grid layout from word/clue pairs
// - history: Answer history recording with suggestion-cache invalidation
// - registry: Memoized, race-collapsed model acquisition
// - errors: Typed error taxonomy shared by every pipeline
// - interfaces: Contracts for external dependencies (cache, HTTP, storage, models, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "quizzer-app-api/core/generate"
//	    "quizzer-app-api/core/interfaces"
//	    "quizzer-app-api/core/registry"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	reg := registry.New(myLogger)
//	generator := generate.NewService(deps, reg, caps, store, crossword.Layout)
//
//	// Generate a quiz
//	quiz, err := generator.Quiz(ctx, tabData.Article)
package core
