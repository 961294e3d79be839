// Package api provides the HTTP API layer for the Quizzer application.
// It uses chi for routing and exposes every operation as a JSON endpoint
// returning a uniform success/error envelope.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Router setup, CORS, middleware chain and server lifecycle
// - handlers/: HTTP request handlers, one file per concern
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Response Envelope
//
// Every response carries a success flag; failures add a message and a
// machine-readable error type:
//
//	{
//	    "success": false,
//	    "error": "Page not readerable",
//	    "errorType": "tab_extraction"
//	}
//
// Error types map to HTTP status codes in the handlers package:
// tab_extraction is a client-side 422, model_acquisition and translation
// are upstream 503s, generation is a 502, everything else is a 500.
//
// # Middleware
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	handlers := api.Handlers{
//	    Tab:      tabHandler,
//	    Generate: generateHandler,
//	    History:  historyHandler,
//	}
//	server := api.NewServer("8000", logger, handlers, limiter)
//	if err := server.Start(); err != nil {
//	    log.Fatal(err)
//	}
package api
