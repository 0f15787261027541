// Package gemini adapts Google's genai SDK to the generation interfaces.
//
// Generator implements generation.TextGenerator against the Gemini API, and
// ImageGenerator implements generation.ImageGenerator with Imagen. A new
// genai client is built for every call because the API key arrives with each
// request and is never retained.
//
// Vendor failures are translated to *domain.ProviderCallError so the API layer
// can tell rejected credentials apart from other vendor errors.
package gemini
