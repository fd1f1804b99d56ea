// Package patch turns a unified git diff into per-file code transitions, so
// a whole commit can be replayed as a sequence of animations. Parsing uses
// bluekeyes/go-gitdiff; the old and new text of each file are reconstructed
// from the hunk lines (context+deleted vs. context+added), which is exactly
// the region of the file the animation should show.
package patch

import (
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/codemotion"
)

// Reader parses unified diff content into file transitions.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the diff and returns one transition per changed text file, in
// patch order. Binary files are skipped.
func (r *Reader) Read(rd io.Reader) ([]codemotion.FileTransition, error) {
	files, _, err := gitdiff.Parse(rd)
	if err != nil {
		return nil, err
	}

	transitions := make([]codemotion.FileTransition, 0, len(files))
	for _, f := range files {
		if f.IsBinary {
			continue
		}
		transitions = append(transitions, convertFile(f))
	}
	return transitions, nil
}

func convertFile(f *gitdiff.File) codemotion.FileTransition {
	path := f.NewName
	if path == "" {
		path = f.OldName
	}

	var oldCode, newCode strings.Builder
	for _, frag := range f.TextFragments {
		for _, line := range frag.Lines {
			switch line.Op {
			case gitdiff.OpContext:
				oldCode.WriteString(line.Line)
				newCode.WriteString(line.Line)
			case gitdiff.OpDelete:
				oldCode.WriteString(line.Line)
			case gitdiff.OpAdd:
				newCode.WriteString(line.Line)
			}
		}
	}

	return codemotion.FileTransition{
		Path:    path,
		OldCode: oldCode.String(),
		NewCode: newCode.String(),
	}
}
