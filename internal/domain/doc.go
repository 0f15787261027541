// Package domain contains the entities of the generation pipeline: provider
// selection, difficulty tiers, the four generated artifact shapes and their
// media attachments, plus the book catalog records. It also defines the
// error taxonomy every other layer wraps.
package domain
