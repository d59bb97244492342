package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// decodeFile fully decodes an audio file into memory. The returned buffer
// can be replayed any number of times, concurrently.
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported file type: %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// resampled returns buf converted to the target sample rate, or buf itself
// when the rates already match.
func resampled(buf *beep.Buffer, rate beep.SampleRate, quality int) *beep.Buffer {
	if buf.Format().SampleRate == rate {
		return buf
	}
	format := buf.Format()
	format.SampleRate = rate
	out := beep.NewBuffer(format)
	out.Append(beep.Resample(quality, buf.Format().SampleRate, rate, buf.Streamer(0, buf.Len())))
	return out
}
