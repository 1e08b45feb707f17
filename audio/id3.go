package audio

import (
	"bytes"

	"github.com/bogem/id3v2"

	"github.com/Shreyas-TP/Stegohub/models"
)

// ReadID3Tags pulls the common ID3v2 tags out of an MP3 stream so they can
// ride along into the WAV output. Missing or unparseable tags return nil;
// the embedding itself never depends on them.
func ReadID3Tags(data []byte) *models.AudioTags {
	tag, err := id3v2.ParseReader(bytes.NewReader(data), id3v2.Options{Parse: true})
	if err != nil || tag == nil {
		return nil
	}

	tags := &models.AudioTags{
		Title:  tag.Title(),
		Artist: tag.Artist(),
		Album:  tag.Album(),
		Genre:  tag.Genre(),
		Year:   tag.Year(),
	}
	if *tags == (models.AudioTags{}) {
		return nil
	}
	return tags
}
