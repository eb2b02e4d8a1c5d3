// Package output writes the result of an extras pass in the formats the
// command line tool offers. Writers are looked up by name from a Registry.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/goliatone/go-formextras/pkg/model"
	"github.com/goliatone/go-formextras/pkg/preview"
	"github.com/goliatone/go-formextras/pkg/render"
)

// Result is a form after the pipeline ran, together with the bag the
// applier wrote into.
type Result struct {
	Form  model.Form
	Attrs *render.Attributes
}

// Writer serialises a Result.
type Writer interface {
	Name() string
	ContentType() string
	Write(ctx context.Context, w io.Writer, result Result) error
}

// TableWriter lists every touched handle with its attribute string.
type TableWriter struct{}

func (TableWriter) Name() string        { return "table" }
func (TableWriter) ContentType() string { return "text/plain" }

func (TableWriter) Write(_ context.Context, w io.Writer, result Result) error {
	attrs := bag(result)
	handles := attrs.Handles()
	if len(handles) == 0 {
		_, err := fmt.Fprintln(w, "No extras applied")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Handle", "Attributes")
	for _, handle := range handles {
		if err := table.Append(handle, attrs.String(handle)); err != nil {
			return fmt.Errorf("output: table row %s: %w", handle, err)
		}
	}
	return table.Render()
}

// JSONWriter emits the bag snapshot keyed by handle then attribute.
type JSONWriter struct {
	Indent string
}

func (JSONWriter) Name() string        { return "json" }
func (JSONWriter) ContentType() string { return "application/json" }

func (j JSONWriter) Write(_ context.Context, w io.Writer, result Result) error {
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(bag(result).Snapshot()); err != nil {
		return fmt.Errorf("output: encode json: %w", err)
	}
	return nil
}

// HTMLWriter renders the preview markup.
type HTMLWriter struct {
	Renderer *preview.Renderer
}

func (HTMLWriter) Name() string        { return "html" }
func (HTMLWriter) ContentType() string { return "text/html" }

func (h HTMLWriter) Write(ctx context.Context, w io.Writer, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	renderer := h.Renderer
	if renderer == nil {
		renderer = preview.New()
	}
	markup, err := renderer.Render(result.Form, bag(result))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, markup)
	return err
}

func bag(result Result) *render.Attributes {
	if result.Attrs == nil {
		return render.NewAttributes()
	}
	return result.Attrs
}
