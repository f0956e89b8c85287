package media

import (
	"errors"

	"github.com/ncruces/zenity"
)

// OpenDialog asks the user for an audio file. Cancelling returns "", nil.
func OpenDialog() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Background Audio"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
