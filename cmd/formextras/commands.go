package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formextras/pkg/config"
	"github.com/goliatone/go-formextras/pkg/controls"
	"github.com/goliatone/go-formextras/pkg/formfile"
	"github.com/goliatone/go-formextras/pkg/model"
	"github.com/goliatone/go-formextras/pkg/prompt"
)

func newApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply FORM",
		Short: "Apply extras from a JSON or YAML form document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			form, err := formfile.LoadFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("loaded form %q with %d fields", form.Name, len(form.Fields))
			return a.emit(ctx, cmd, cfg, form)
		},
	}
}

func newPromptCmd(a *app) *cobra.Command {
	var fields int
	var name string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Collect field extras interactively and apply them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fields < 1 {
				return fmt.Errorf("--fields must be at least 1")
			}
			ctx, cfg, err := a.load(cmd)
			if err != nil {
				return err
			}

			form := model.Form{Name: name}
			for i := 0; i < fields; i++ {
				field, err := prompt.Collect(ctx, a.driver, i)
				if err != nil {
					return fmt.Errorf("collect field %d: %w", i+1, err)
				}
				form.Fields = append(form.Fields, field)
			}
			return a.emit(ctx, cmd, cfg, form)
		},
	}
	cmd.Flags().IntVar(&fields, "fields", 1, "number of fields to collect")
	cmd.Flags().StringVar(&name, "name", "prompted", "form name")
	return cmd
}

func newControlsCmd(a *app) *cobra.Command {
	var fieldType string

	cmd := &cobra.Command{
		Use:   "controls",
		Short: "List the editor controls that collect field extras",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := a.load(cmd)
			if err != nil {
				return err
			}

			ctrls := controls.Register(widgetControls())
			if fieldType != "" {
				ctrls = controls.ForFieldType(ctrls, fieldType)
			}

			if cfg.Output.Format == config.FormatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ctrls)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Name", "Label", "Type", "Shown for", "Dynamic")
			for _, c := range ctrls {
				if err := table.Append(c.Name, c.Label, string(c.Type), describeCondition(c.Condition), strconv.FormatBool(c.Dynamic)); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVar(&fieldType, "type", "", "only list controls shown for this field type")
	return cmd
}

// widgetControls are the form widget settings the extras controls are
// registered alongside.
func widgetControls() []controls.Control {
	return []controls.Control{
		{Name: controls.FormNameControl, Label: "Form name", Type: controls.TypeText},
	}
}

func describeCondition(c controls.Condition) string {
	if len(c.Values) == 0 {
		return "all"
	}
	values := strings.Join(c.Values, ", ")
	if c.Negate {
		return "all except " + values
	}
	return values
}

func newPolicyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "policy [KEY...]",
		Short: "Show the attribute denylist or check keys against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			p := cfg.BuildPolicy()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, key := range p.Keys() {
					fmt.Fprintln(out, key)
				}
				return nil
			}
			for _, key := range args {
				verdict := "denied"
				if p.Allows(key) {
					verdict = "allowed"
				}
				fmt.Fprintf(out, "%s\t%s\n", key, verdict)
			}
			return nil
		},
	}
}
