package audio

import (
	"path/filepath"
	"strings"

	id3v2 "github.com/bogem/id3v2/v2"
)

// Metadata is what the status line shows about the playing track.
type Metadata struct {
	Title  string
	Artist string
}

// ReadMetadata pulls ID3v2 tags from MP3 files; everything else, and
// untagged MP3s, fall back to the bare filename.
func ReadMetadata(path string) Metadata {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if tag, err := id3v2.Open(path, id3v2.Options{Parse: true}); err == nil {
			m := Metadata{
				Title:  strings.TrimSpace(tag.Title()),
				Artist: strings.TrimSpace(tag.Artist()),
			}
			tag.Close()
			if m.Title != "" {
				return m
			}
		}
	}

	base := filepath.Base(path)
	return Metadata{Title: strings.TrimSuffix(base, filepath.Ext(base))}
}
