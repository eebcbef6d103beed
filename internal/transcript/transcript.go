// Package transcript treats voice capture as an opaque source of final text
// fragments. The rest of the application only appends delivered fragments to item
// notes; how the text is produced is this package's concern.
package transcript

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"github.com/windgap/sensoryprofile/internal/errors"
)

// ErrUnavailable signals that no transcription capability is configured. Callers
// surface it as a notice at the point of attempted use; everything else keeps
// working without voice input.
var ErrUnavailable = errors.NewSentinel("voice transcription is not available")

// Source produces a final transcript for a recorded audio file.
type Source interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// WhisperSource transcribes audio through the OpenAI Whisper API.
type WhisperSource struct {
	client *openai.Client
}

// NewWhisperSource builds a Source backed by Whisper. An empty API key yields a
// source whose Transcribe always reports ErrUnavailable.
func NewWhisperSource(apiKey string) *WhisperSource {
	if apiKey == "" {
		return &WhisperSource{client: nil}
	}
	return &WhisperSource{client: openai.NewClient(apiKey)}
}

func (s *WhisperSource) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	response, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", errors.Wrap(err, "create transcription")
	}
	return response.Text, nil
}
