package audio

import (
	"testing"
)

func clipWithHeader(header []byte) []byte {
	clip := make([]byte, 32)
	copy(clip, header)
	return clip
}

func TestDetectContentType_WAV(t *testing.T) {
	clip := clipWithHeader([]byte("RIFF\x24\x08\x00\x00WAVE"))
	ct, err := DetectContentType(clip)
	if err != nil {
		t.Fatalf("DetectContentType() failed: %v", err)
	}
	if ct != ContentTypeWAV {
		t.Errorf("Expected '%s', got '%s'", ContentTypeWAV, ct)
	}
}

func TestDetectContentType_Ogg(t *testing.T) {
	ct, err := DetectContentType(clipWithHeader([]byte("OggS")))
	if err != nil {
		t.Fatalf("DetectContentType() failed: %v", err)
	}
	if ct != ContentTypeOgg {
		t.Errorf("Expected '%s', got '%s'", ContentTypeOgg, ct)
	}
}

func TestDetectContentType_WebM(t *testing.T) {
	ct, err := DetectContentType(clipWithHeader([]byte{0x1A, 0x45, 0xDF, 0xA3}))
	if err != nil {
		t.Fatalf("DetectContentType() failed: %v", err)
	}
	if ct != ContentTypeWebM {
		t.Errorf("Expected '%s', got '%s'", ContentTypeWebM, ct)
	}
}

func TestDetectContentType_FLAC(t *testing.T) {
	ct, err := DetectContentType(clipWithHeader([]byte("fLaC")))
	if err != nil {
		t.Fatalf("DetectContentType() failed: %v", err)
	}
	if ct != ContentTypeFLAC {
		t.Errorf("Expected '%s', got '%s'", ContentTypeFLAC, ct)
	}
}

func TestDetectContentType_MP3(t *testing.T) {
	// ID3-tagged
	ct, err := DetectContentType(clipWithHeader([]byte("ID3\x04")))
	if err != nil {
		t.Fatalf("DetectContentType() failed: %v", err)
	}
	if ct != ContentTypeMP3 {
		t.Errorf("Expected '%s', got '%s'", ContentTypeMP3, ct)
	}

	// Bare frame sync
	ct, err = DetectContentType(clipWithHeader([]byte{0xFF, 0xFB, 0x90, 0x00}))
	if err != nil {
		t.Fatalf("DetectContentType() failed: %v", err)
	}
	if ct != ContentTypeMP3 {
		t.Errorf("Expected '%s', got '%s'", ContentTypeMP3, ct)
	}
}

func TestDetectContentType_TooShort(t *testing.T) {
	if _, err := DetectContentType([]byte("RIFF")); err == nil {
		t.Error("Expected error for truncated clip")
	}
}

func TestDetectContentType_Unknown(t *testing.T) {
	if _, err := DetectContentType(clipWithHeader([]byte("not audio at all"))); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestDetectContentType_RIFFWithoutWAVE(t *testing.T) {
	// RIFF container that is not WAVE (e.g. AVI) must be rejected
	if _, err := DetectContentType(clipWithHeader([]byte("RIFF\x24\x08\x00\x00AVI "))); err == nil {
		t.Error("Expected error for RIFF container that is not WAVE")
	}
}
