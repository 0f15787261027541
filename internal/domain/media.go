package domain

// MediaKind distinguishes generated media.
type MediaKind string

// Media kinds produced by the secondary generation pass.
const (
	MediaImage MediaKind = "image"
	MediaAudio MediaKind = "audio"
)

// MediaAttachment is the outcome of one image or speech call. Ownership moves
// to the artifact as soon as it is attached; nothing is persisted.
type MediaAttachment struct {
	Kind         MediaKind
	EncodedBytes string
	Generated    bool
	Note         string
}
