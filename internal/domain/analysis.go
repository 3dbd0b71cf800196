package domain

import "encoding/json"

// Score is a single label/score pair produced by a classification model.
type Score struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analysis is the analyzer output. Exactly one of Text, Image or Video is set,
// matching Type. It encodes as a single flat document: id and type next to
// the fields of the set variant.
type Analysis struct {
	ID    string         `json:"id"`
	Type  ContentType    `json:"type"`
	Text  *TextAnalysis  `json:"-"`
	Image *ImageAnalysis `json:"-"`
	Video *VideoAnalysis `json:"-"`
}

type analysisHeader struct {
	ID   string      `json:"id"`
	Type ContentType `json:"type"`
}

func (a Analysis) MarshalJSON() ([]byte, error) {
	header := analysisHeader{ID: a.ID, Type: a.Type}

	switch a.Type {
	case ContentText:
		return json.Marshal(struct {
			analysisHeader
			*TextAnalysis
		}{header, a.Text})
	case ContentImage:
		return json.Marshal(struct {
			analysisHeader
			*ImageAnalysis
		}{header, a.Image})
	case ContentVideo:
		return json.Marshal(struct {
			analysisHeader
			*VideoAnalysis
		}{header, a.Video})
	}
	return json.Marshal(header)
}

func (a *Analysis) UnmarshalJSON(data []byte) error {
	var header analysisHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}
	*a = Analysis{ID: header.ID, Type: header.Type}

	var body any
	switch header.Type {
	case ContentText:
		a.Text = &TextAnalysis{}
		body = a.Text
	case ContentImage:
		a.Image = &ImageAnalysis{}
		body = a.Image
	case ContentVideo:
		a.Video = &VideoAnalysis{}
		body = a.Video
	default:
		return nil
	}
	return json.Unmarshal(data, body)
}

type TextAnalysis struct {
	Content   string       `json:"content"`
	Sentiment []Score      `json:"sentiment"`
	Entities  []string     `json:"entities"`
	Topics    []string     `json:"topics"`
	Metadata  TextMetadata `json:"metadata"`
}

type TextMetadata struct {
	Length   int    `json:"length"`
	Language string `json:"language"`
}

type ImageAnalysis struct {
	Classification []Score       `json:"classification"`
	Metadata       ImageMetadata `json:"metadata"`
}

type ImageMetadata struct {
	Format string `json:"format"`
	Size   [2]int `json:"size"`
	Mode   string `json:"mode"`
}

type VideoAnalysis struct {
	Metadata VideoMetadata `json:"metadata"`
	Analysis VideoFindings `json:"analysis"`
}

type VideoMetadata struct {
	FPS        float64 `json:"fps"`
	FrameCount int     `json:"frame_count"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

// VideoFindings holds frame-level results. Frame analysis is not performed,
// so all sequences stay empty.
type VideoFindings struct {
	KeyFrames []int    `json:"key_frames"`
	Objects   []string `json:"objects"`
	Scenes    []string `json:"scenes"`
}

type Classification struct {
	Label       string   `json:"label"`
	Confidence  float64  `json:"confidence"`
	Explanation string   `json:"explanation"`
	Sources     []string `json:"sources"`
}
