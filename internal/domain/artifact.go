package domain

// ContentType names the kind of teaching material being generated.
type ContentType string

// Content types served by the generation pipeline.
const (
	ContentAssessment ContentType = "assessment"
	ContentComic      ContentType = "comic"
	ContentWorksheet  ContentType = "worksheet"
	ContentPodcast    ContentType = "podcast"
)

// Question is one item of an assessment. Options is empty for short answers.
type Question struct {
	Number      int      `json:"number"`
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`

	Extra Extra `json:"-"`
}

func (q *Question) UnmarshalJSON(data []byte) error {
	type plain Question
	return decodeWithExtra(data, (*plain)(q), &q.Extra)
}

func (q Question) MarshalJSON() ([]byte, error) {
	type plain Question
	return encodeWithExtra(plain(q), q.Extra)
}

// AssessmentArtifact is a generated quiz.
type AssessmentArtifact struct {
	Title      string     `json:"title"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`

	Extra Extra `json:"-"`
}

func (a *AssessmentArtifact) UnmarshalJSON(data []byte) error {
	type plain AssessmentArtifact
	return decodeWithExtra(data, (*plain)(a), &a.Extra)
}

func (a AssessmentArtifact) MarshalJSON() ([]byte, error) {
	type plain AssessmentArtifact
	return encodeWithExtra(plain(a), a.Extra)
}

// Character is a recurring figure in a comic.
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Extra Extra `json:"-"`
}

func (c *Character) UnmarshalJSON(data []byte) error {
	type plain Character
	return decodeWithExtra(data, (*plain)(c), &c.Extra)
}

func (c Character) MarshalJSON() ([]byte, error) {
	type plain Character
	return encodeWithExtra(plain(c), c.Extra)
}

// Panel is one frame of a comic. The image fields are filled by the media
// stage, never by the model.
type Panel struct {
	Number    int    `json:"number"`
	Scene     string `json:"scene"`
	Dialogue  string `json:"dialogue"`
	Narration string `json:"narration,omitempty"`

	ImageBase64    string `json:"imageBase64,omitempty"`
	ImageGenerated bool   `json:"imageGenerated"`
	ImageNote      string `json:"imageNote,omitempty"`

	Extra Extra `json:"-"`
}

func (p *Panel) UnmarshalJSON(data []byte) error {
	type plain Panel
	return decodeWithExtra(data, (*plain)(p), &p.Extra)
}

func (p Panel) MarshalJSON() ([]byte, error) {
	type plain Panel
	return encodeWithExtra(plain(p), p.Extra)
}

// Attach records the outcome of image generation on the panel.
func (p *Panel) Attach(m MediaAttachment) {
	p.ImageBase64 = m.EncodedBytes
	p.ImageGenerated = m.Generated
	p.ImageNote = m.Note
}

// ComicArtifact is a generated comic script.
type ComicArtifact struct {
	Title      string      `json:"title"`
	Characters []Character `json:"characters"`
	Panels     []Panel     `json:"panels"`

	Extra Extra `json:"-"`
}

func (c *ComicArtifact) UnmarshalJSON(data []byte) error {
	type plain ComicArtifact
	return decodeWithExtra(data, (*plain)(c), &c.Extra)
}

func (c ComicArtifact) MarshalJSON() ([]byte, error) {
	type plain ComicArtifact
	return encodeWithExtra(plain(c), c.Extra)
}

// WorksheetQuestion is one prompt inside a worksheet section.
type WorksheetQuestion struct {
	Number   int    `json:"number"`
	Question string `json:"question"`
	Hint     string `json:"hint,omitempty"`
	Lines    int    `json:"lines,omitempty"`

	Extra Extra `json:"-"`
}

func (q *WorksheetQuestion) UnmarshalJSON(data []byte) error {
	type plain WorksheetQuestion
	return decodeWithExtra(data, (*plain)(q), &q.Extra)
}

func (q WorksheetQuestion) MarshalJSON() ([]byte, error) {
	type plain WorksheetQuestion
	return encodeWithExtra(plain(q), q.Extra)
}

// WorksheetSection groups questions under a scenario or activity.
type WorksheetSection struct {
	Title     string              `json:"title"`
	Type      string              `json:"type"`
	Content   string              `json:"content"`
	Questions []WorksheetQuestion `json:"questions"`

	Extra Extra `json:"-"`
}

func (s *WorksheetSection) UnmarshalJSON(data []byte) error {
	type plain WorksheetSection
	return decodeWithExtra(data, (*plain)(s), &s.Extra)
}

func (s WorksheetSection) MarshalJSON() ([]byte, error) {
	type plain WorksheetSection
	return encodeWithExtra(plain(s), s.Extra)
}

// Reflection closes a worksheet with self-assessment prompts.
type Reflection struct {
	Title     string   `json:"title"`
	Questions []string `json:"questions"`

	Extra Extra `json:"-"`
}

func (r *Reflection) UnmarshalJSON(data []byte) error {
	type plain Reflection
	return decodeWithExtra(data, (*plain)(r), &r.Extra)
}

func (r Reflection) MarshalJSON() ([]byte, error) {
	type plain Reflection
	return encodeWithExtra(plain(r), r.Extra)
}

// Extension is an optional follow-up activity.
type Extension struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	Extra Extra `json:"-"`
}

func (e *Extension) UnmarshalJSON(data []byte) error {
	type plain Extension
	return decodeWithExtra(data, (*plain)(e), &e.Extra)
}

func (e Extension) MarshalJSON() ([]byte, error) {
	type plain Extension
	return encodeWithExtra(plain(e), e.Extra)
}

// WorksheetArtifact is a generated competency-oriented worksheet.
type WorksheetArtifact struct {
	Title      string             `json:"title"`
	Topic      string             `json:"topic"`
	Objectives []string           `json:"objectives"`
	Sections   []WorksheetSection `json:"sections"`
	Reflection Reflection         `json:"reflection"`
	Extension  Extension          `json:"extension"`

	Extra Extra `json:"-"`
}

func (w *WorksheetArtifact) UnmarshalJSON(data []byte) error {
	type plain WorksheetArtifact
	return decodeWithExtra(data, (*plain)(w), &w.Extra)
}

func (w WorksheetArtifact) MarshalJSON() ([]byte, error) {
	type plain WorksheetArtifact
	return encodeWithExtra(plain(w), w.Extra)
}

// Segment is one labeled section of a podcast script
// (intro, main, example, summary, outro).
type Segment struct {
	Type     string `json:"type"`
	Subtitle string `json:"subtitle,omitempty"`
	Text     string `json:"text"`
	Duration string `json:"duration,omitempty"`

	Extra Extra `json:"-"`
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	type plain Segment
	return decodeWithExtra(data, (*plain)(s), &s.Extra)
}

func (s Segment) MarshalJSON() ([]byte, error) {
	type plain Segment
	return encodeWithExtra(plain(s), s.Extra)
}

// PodcastArtifact is a generated narration script with optional audio.
type PodcastArtifact struct {
	Title            string    `json:"title"`
	DurationEstimate string    `json:"duration_estimate"`
	Segments         []Segment `json:"segments"`
	FullScript       string    `json:"full_script"`

	AudioBase64    string `json:"audioBase64,omitempty"`
	AudioGenerated *bool  `json:"audioGenerated,omitempty"`
	AudioError     string `json:"audioError,omitempty"`

	Extra Extra `json:"-"`
}

func (p *PodcastArtifact) UnmarshalJSON(data []byte) error {
	type plain PodcastArtifact
	return decodeWithExtra(data, (*plain)(p), &p.Extra)
}

func (p PodcastArtifact) MarshalJSON() ([]byte, error) {
	type plain PodcastArtifact
	return encodeWithExtra(plain(p), p.Extra)
}

// Attach records the outcome of speech synthesis on the podcast.
func (p *PodcastArtifact) Attach(m MediaAttachment) {
	generated := m.Generated
	p.AudioGenerated = &generated
	if m.Generated {
		p.AudioBase64 = m.EncodedBytes
		p.AudioError = ""
		return
	}
	p.AudioBase64 = ""
	p.AudioError = m.Note
}
