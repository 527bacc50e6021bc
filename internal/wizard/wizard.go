// Package wizard drives the linear project creation flow: catalog, prompts,
// author resolution, materialization.
package wizard

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"webstart/internal/ui"
	"webstart/pkg/author"
	"webstart/pkg/catalog"
	"webstart/pkg/project"
)

// Prompter asks the operator a question and returns the raw answer. The
// wizard never touches the terminal directly.
type Prompter interface {
	Prompt(question string) (string, error)
}

// Catalog is the template listing the wizard selects from.
type Catalog interface {
	FetchTemplates(ctx context.Context) ([]catalog.Template, error)
}

// Materializer turns a finalized setup into a project on disk.
type Materializer interface {
	Materialize(ctx context.Context, targetDir, cloneURL string, setup project.Setup) error
}

// Picker selects a template interactively. cancelled reports that the
// operator backed out, which ends the run cleanly.
type Picker func(templates []catalog.Template) (index int, cancelled bool, err error)

// ValidationError reports operator input the wizard rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Options pre-answer prompts for non-interactive runs. TemplateIndex is -1
// when unset; supplied values pass the same validation as prompted ones.
type Options struct {
	TemplateIndex int
	ProjectName   string
	Yes           bool
	TargetRoot    string
}

// Result describes what a wizard run ended up doing. Template is empty when
// the run stopped before a template was selected.
type Result struct {
	Created   bool
	Template  string
	ProjectID string
}

type Wizard struct {
	catalog      Catalog
	prompter     Prompter
	authorReader author.ConfigReader
	materializer Materializer
	picker       Picker
	out          io.Writer
	opts         Options
}

func New(cat Catalog, prompter Prompter, reader author.ConfigReader, mat Materializer, out io.Writer, opts Options) *Wizard {
	return &Wizard{
		catalog:      cat,
		prompter:     prompter,
		authorReader: reader,
		materializer: mat,
		out:          out,
		opts:         opts,
	}
}

// SetPicker installs an interactive template selector used instead of the
// index prompt.
func (w *Wizard) SetPicker(p Picker) {
	w.picker = p
}

// Run walks the full sequence. A nil error with Result.Created false means
// the run ended cleanly without creating anything (empty catalog or
// operator abort).
func (w *Wizard) Run(ctx context.Context) (*Result, error) {
	templates, err := w.catalog.FetchTemplates(ctx)
	if err != nil {
		return nil, err
	}

	if len(templates) == 0 {
		fmt.Fprintln(w.out, "No templates available.")
		return &Result{}, nil
	}

	idx, cancelled, err := w.selectTemplate(templates)
	if err != nil {
		return nil, err
	}
	if cancelled {
		fmt.Fprintln(w.out, "Aborted.")
		return &Result{}, nil
	}
	tmpl := templates[idx]

	name, err := w.projectName()
	if err != nil {
		return nil, err
	}

	ident := author.Resolve(ctx, w.authorReader)

	setup := project.Setup{
		Template:    tmpl,
		ProjectID:   project.DeriveProjectID(name),
		ProjectName: name,
		AuthorName:  ident.Name,
		AuthorEmail: ident.Email,
	}
	result := &Result{Template: tmpl.Name, ProjectID: setup.ProjectID}

	w.printSummary(setup)

	if !w.opts.Yes {
		answer, err := w.prompter.Prompt("Create project? [Y/n] ")
		if err != nil {
			return nil, err
		}
		if a := strings.ToLower(strings.TrimSpace(answer)); a == "n" || a == "no" {
			fmt.Fprintln(w.out, "Aborted.")
			return result, nil
		}
	}

	targetDir := filepath.Join(w.opts.TargetRoot, setup.ProjectID)
	if err := w.materializer.Materialize(ctx, targetDir, tmpl.CloneURL, setup); err != nil {
		return result, err
	}

	result.Created = true
	fmt.Fprintln(w.out, ui.Success.Render(fmt.Sprintf("Project %s created in %s", setup.ProjectName, targetDir)))
	return result, nil
}

func (w *Wizard) selectTemplate(templates []catalog.Template) (int, bool, error) {
	if w.opts.TemplateIndex >= 0 {
		if w.opts.TemplateIndex >= len(templates) {
			return 0, false, &ValidationError{
				Reason: fmt.Sprintf("template index %d out of range [0, %d)", w.opts.TemplateIndex, len(templates)),
			}
		}
		return w.opts.TemplateIndex, false, nil
	}

	if w.picker != nil {
		return w.picker(templates)
	}

	w.printTemplates(templates)
	answer, err := w.prompter.Prompt("Select a template by index: ")
	if err != nil {
		return 0, false, err
	}

	idx, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, false, &ValidationError{Reason: fmt.Sprintf("invalid template index %q", strings.TrimSpace(answer))}
	}
	if idx < 0 || idx >= len(templates) {
		return 0, false, &ValidationError{
			Reason: fmt.Sprintf("template index %d out of range [0, %d)", idx, len(templates)),
		}
	}
	return idx, false, nil
}

func (w *Wizard) projectName() (string, error) {
	raw := w.opts.ProjectName
	if raw == "" {
		var err error
		raw, err = w.prompter.Prompt("Project name: ")
		if err != nil {
			return "", err
		}
	}

	name := strings.TrimSpace(raw)
	if name == "" {
		return "", &ValidationError{Reason: "project name must not be empty"}
	}
	return name, nil
}

func (w *Wizard) printTemplates(templates []catalog.Template) {
	fmt.Fprintln(w.out, ui.Title.Render("Available templates"))
	for i, t := range templates {
		desc := t.Description
		if desc == "" {
			desc = t.RepositoryURL
		}
		fmt.Fprintf(w.out, "  [%d] %s  %s\n", i, ui.Selected.Render(t.Name), ui.Dim.Render(desc))
	}
}

func (w *Wizard) printSummary(setup project.Setup) {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, ui.Title.Render("New project"))
	fmt.Fprintf(w.out, "  Template: %s\n", setup.Template.Name)
	fmt.Fprintf(w.out, "  Name:     %s\n", setup.ProjectName)
	fmt.Fprintf(w.out, "  ID:       %s\n", setup.ProjectID)
	fmt.Fprintf(w.out, "  Author:   %s <%s>\n", setup.AuthorName, setup.AuthorEmail)
	fmt.Fprintln(w.out)
}
