// Package router resolves a tool name for each incoming message. The
// KeywordRouter is a deterministic, total function over ordered priority
// classes and doubles as the safety net; the composite ToolRouter consults an
// injected intent classifier first and falls back to keywords on any failure.
// Crisis detection is checked before the classifier is ever trusted, so an
// unreliable classifier can never suppress crisis handling.
package router
