package game

import (
	"image/color"

	"github.com/ncruces/zenity"
)

// pickColor asks the user for a colour, starting from c. A cancelled
// dialog returns zenity.ErrCanceled.
func pickColor(title string, c color.NRGBA) (color.NRGBA, error) {
	picked, err := zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(c),
		zenity.ShowPalette(),
	)
	if err != nil {
		return color.NRGBA{}, err
	}
	return toNRGBA(picked), nil
}

func pickClickFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Click Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
}

// ShowError reports a fatal error in a native dialog. Failing to show the
// dialog is ignored, the caller logs the error anyway.
func ShowError(msg string) {
	_ = zenity.Error(msg,
		zenity.Title("Horizontal Wheel View"),
		zenity.ErrorIcon,
	)
}

func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
