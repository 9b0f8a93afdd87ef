package view

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrSaveCanceled is returned when the user dismissed the save prompt.
var ErrSaveCanceled = errors.New("save canceled")

// PathPrompter asks the user where to save an unnamed buffer.
type PathPrompter interface {
	// PromptPath returns the chosen path, or false if the user canceled.
	PromptPath(suggested string) (string, bool)
}

// PathPrompterFunc adapts a function to PathPrompter.
type PathPrompterFunc func(suggested string) (string, bool)

// PromptPath calls f.
func (f PathPrompterFunc) PromptPath(suggested string) (string, bool) {
	return f(suggested)
}

// Save writes the store to its path. A store with no path asks prompter
// for one; a nil prompter or a canceled prompt returns ErrSaveCanceled.
func (v *View) Save(prompter PathPrompter) error {
	if v.store.Path() != "" {
		return v.saved(v.store.Save())
	}
	if prompter == nil {
		return ErrSaveCanceled
	}
	path, ok := prompter.PromptPath(v.Name())
	if !ok || path == "" {
		return ErrSaveCanceled
	}
	return v.SaveAs(path)
}

// SaveAs writes the store to path and makes it the store's path.
func (v *View) SaveAs(path string) error {
	return v.saved(v.store.SaveAs(path))
}

func (v *View) saved(err error) error {
	if err != nil {
		return err
	}
	log.Info().Str("path", v.store.Path()).Str("encoding", v.Encoding()).Msg("buffer saved")
	v.DetectSyntax()
	return nil
}
