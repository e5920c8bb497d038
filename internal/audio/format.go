// Package audio validates captured clips before they are sent anywhere.
package audio

import (
	"bytes"
	"fmt"
)

// Formats the recognition path accepts from the browser recorder
const (
	ContentTypeWAV  = "audio/wav"
	ContentTypeOgg  = "audio/ogg"
	ContentTypeWebM = "audio/webm"
	ContentTypeMP3  = "audio/mpeg"
	ContentTypeFLAC = "audio/flac"
)

var (
	riffMagic = []byte("RIFF")
	waveMagic = []byte("WAVE")
	oggMagic  = []byte("OggS")
	ebmlMagic = []byte{0x1A, 0x45, 0xDF, 0xA3}
	flacMagic = []byte("fLaC")
	id3Magic  = []byte("ID3")
)

// DetectContentType sniffs the clip's magic bytes and returns its MIME type.
// Unknown or truncated clips are rejected before any service call.
func DetectContentType(clip []byte) (string, error) {
	if len(clip) < 12 {
		return "", fmt.Errorf("audio clip too short to identify (%d bytes)", len(clip))
	}

	switch {
	case bytes.HasPrefix(clip, riffMagic) && bytes.Equal(clip[8:12], waveMagic):
		return ContentTypeWAV, nil
	case bytes.HasPrefix(clip, oggMagic):
		return ContentTypeOgg, nil
	case bytes.HasPrefix(clip, ebmlMagic):
		return ContentTypeWebM, nil
	case bytes.HasPrefix(clip, flacMagic):
		return ContentTypeFLAC, nil
	case bytes.HasPrefix(clip, id3Magic):
		return ContentTypeMP3, nil
	case clip[0] == 0xFF && clip[1]&0xE0 == 0xE0:
		// Bare MPEG audio frame sync, no ID3 header
		return ContentTypeMP3, nil
	}

	return "", fmt.Errorf("unsupported audio format")
}
