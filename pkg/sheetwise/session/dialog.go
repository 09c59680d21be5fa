package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
)

// FileFilter names a group of allowed file extensions.
type FileFilter struct {
	Name       string
	Extensions []string
}

// Filters offered when opening and saving files.
var (
	SpreadsheetFilters = []FileFilter{
		{Name: "Excel Files", Extensions: sheetwise.WorkbookExtensions},
		{Name: "CSV Files", Extensions: sheetwise.CSVExtensions},
	}
	PDFFilters = []FileFilter{{Name: "PDF Documents", Extensions: []string{"pdf"}}}
)

// OpenDialog asks the user for a file to open. ok is false when the user
// cancelled.
type OpenDialog interface {
	ChooseFile(ctx context.Context, filters []FileFilter) (path string, ok bool, err error)
}

// SaveDialog asks the user where to save a file, proposing suggested.
type SaveDialog interface {
	ChooseSavePath(ctx context.Context, filters []FileFilter, suggested string) (path string, ok bool, err error)
}

// StaticDialog answers every dialog with a fixed path, as when the path was
// given on the command line. An empty Path cancels the open dialog and
// accepts the suggestion in the save dialog.
type StaticDialog struct {
	Path string
}

// ChooseFile implements OpenDialog.
func (d StaticDialog) ChooseFile(ctx context.Context, _ []FileFilter) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return d.Path, d.Path != "", nil
}

// ChooseSavePath implements SaveDialog.
func (d StaticDialog) ChooseSavePath(ctx context.Context, _ []FileFilter, suggested string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if d.Path == "" {
		return suggested, suggested != "", nil
	}
	return d.Path, true, nil
}

// cancelAnswer is the reply that cancels a prompt.
const cancelAnswer = "-"

// PromptDialog asks on a terminal. Answering "-" cancels.
type PromptDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptDialog creates a dialog reading answers from in and writing
// prompts to out.
func NewPromptDialog(in io.Reader, out io.Writer) *PromptDialog {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &PromptDialog{in: br, out: out}
}

// ChooseFile implements OpenDialog. An empty answer cancels.
func (d *PromptDialog) ChooseFile(ctx context.Context, filters []FileFilter) (string, bool, error) {
	answer, err := d.ask(ctx, fmt.Sprintf("Open file (%s): ", describe(filters)))
	if err != nil {
		return "", false, err
	}
	if answer == "" || answer == cancelAnswer {
		return "", false, nil
	}
	return answer, true, nil
}

// ChooseSavePath implements SaveDialog. An empty answer accepts suggested.
func (d *PromptDialog) ChooseSavePath(ctx context.Context, filters []FileFilter, suggested string) (string, bool, error) {
	answer, err := d.ask(ctx, fmt.Sprintf("Save as (%s) [%s]: ", describe(filters), suggested))
	if err != nil {
		return "", false, err
	}
	switch answer {
	case cancelAnswer:
		return "", false, nil
	case "":
		return suggested, suggested != "", nil
	}
	return answer, true, nil
}

func (d *PromptDialog) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(d.out, prompt)
	line, err := d.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return cancelAnswer, nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func describe(filters []FileFilter) string {
	var exts []string
	for _, f := range filters {
		for _, e := range f.Extensions {
			exts = append(exts, "*."+e)
		}
	}
	return strings.Join(exts, " ")
}
