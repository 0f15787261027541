// Package openai adapts the openai-go SDK to the generation interfaces.
//
// The same chat adapter serves OpenAI and Groq, which exposes an
// OpenAI-compatible endpoint. Images use DALL·E 3 and speech uses tts-1,
// with long scripts split into sentence-aligned chunks.
package openai
