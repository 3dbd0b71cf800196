package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

// FFProbe extracts container metadata by running the ffprobe binary.
type FFProbe struct {
	binary string
}

func NewFFProbe(binary string) *FFProbe {
	if binary == "" {
		binary = "ffprobe"
	}
	return &FFProbe{binary: binary}
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	RFrameRate    string `json:"r_frame_rate"`
	AvgFrameRate  string `json:"avg_frame_rate"`
	NbFrames      string `json:"nb_frames"`
	NbReadPackets string `json:"nb_read_packets"`
}

// Probe opens the video at path and returns its first video stream's metadata.
// A file ffprobe cannot open yields domain.ErrDecode.
func (p *FFProbe) Probe(ctx context.Context, path string) (domain.VideoMetadata, error) {
	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "error",
		"-select_streams", "v:0",
		"-count_packets",
		"-show_entries", "stream=width,height,r_frame_rate,avg_frame_rate,nb_frames,nb_read_packets",
		"-of", "json",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.VideoMetadata{}, fmt.Errorf("%w: could not open video file: %s",
				domain.ErrDecode, strings.TrimSpace(stderr.String()))
		}
		return domain.VideoMetadata{}, fmt.Errorf("run ffprobe: %w", err)
	}

	return parseProbeOutput(stdout.Bytes())
}

func parseProbeOutput(data []byte) (domain.VideoMetadata, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("%w: parse ffprobe output: %w", domain.ErrDecode, err)
	}
	if len(out.Streams) == 0 {
		return domain.VideoMetadata{}, fmt.Errorf("%w: could not open video file: no video stream", domain.ErrDecode)
	}

	st := out.Streams[0]

	fps := parseRate(st.AvgFrameRate)
	if fps == 0 {
		fps = parseRate(st.RFrameRate)
	}

	frames, _ := strconv.Atoi(st.NbFrames)
	if frames == 0 {
		frames, _ = strconv.Atoi(st.NbReadPackets)
	}

	return domain.VideoMetadata{
		FPS:        fps,
		FrameCount: frames,
		Width:      st.Width,
		Height:     st.Height,
	}, nil
}

// parseRate parses ffprobe rationals such as "30000/1001" or "25".
func parseRate(s string) float64 {
	num, den, found := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
