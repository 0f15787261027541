// Package generation defines the boundary between the application core and
// external LLM vendors. It declares the TextGenerator, ImageGenerator and
// SpeechSynthesizer interfaces, a Registry that dispatches a request to the
// adapter of its provider, and the parser that turns free-form model output
// into typed artifacts.
//
// Concrete adapters live under internal/platform (gemini, openai, googletts).
package generation
