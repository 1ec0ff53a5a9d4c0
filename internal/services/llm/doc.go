// Package llm turns a line of dictation into a structured backlog entry by
// calling an OpenAI-compatible chat completion endpoint.
//
// # Entry Points
//
// NewClient: construct a client from Config.
// Client.ObtainEntry: dictation in, validated backlog entry out.
// Client.Refine: rework an existing entry per free-text instructions.
// Client.HealthCheck: verify the API key and model are usable.
//
// # Retry Behaviour
//
// Two independent bounded loops guard the remote call. Transient failures
// (network timeouts, HTTP 408/429/5xx) are retried with exponential backoff,
// three attempts total by default, before the call surfaces
// services.ErrServiceUnavailable. A response that parses but fails the entry
// schema triggers exactly one repair re-request (with its own full transient
// budget) before the call surfaces services.ErrInvalidResponse. The two
// counters are never conflated.
//
// # Caching
//
// Identical dictation within one process run short-circuits to the entry
// already obtained. The cache lives on the Client instance and is never
// persisted.
package llm
