package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formextras/pkg/config"
	"github.com/goliatone/go-formextras/pkg/extras"
	"github.com/goliatone/go-formextras/pkg/logger"
	"github.com/goliatone/go-formextras/pkg/model"
	"github.com/goliatone/go-formextras/pkg/output"
	"github.com/goliatone/go-formextras/pkg/pipeline"
	"github.com/goliatone/go-formextras/pkg/preview"
	"github.com/goliatone/go-formextras/pkg/prompt"
	"github.com/goliatone/go-formextras/pkg/render"
)

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"deny":     "policy.extra_disallowed_keys",
	"format":   "output.format",
	"sanitize": "preview.sanitize",
}

type app struct {
	configPath string
	debug      bool
	driver     prompt.Driver
	logger     logger.Logger
}

func newApp() *app {
	return &app{
		driver: prompt.NewSurveyDriver(),
		logger: logger.Nop(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "formextras",
		Short: "Apply per-field CSS classes and attributes to form documents",
		Long: `formextras reads form documents, applies each field's custom classes and
key|value attribute lines through the attribute policy, and prints the
resulting attributes per element as a table, JSON or an HTML preview.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (json, yaml or toml)")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.StringSlice("deny", nil, "extra attribute keys to deny")
	flags.String("format", config.FormatTable, "output format: table, json or html")
	flags.Bool("sanitize", true, "sanitize html previews")

	root.AddCommand(
		newApplyCmd(a),
		newPromptCmd(a),
		newControlsCmd(a),
		newPolicyCmd(a),
	)
	return root
}

// load builds the logger and resolves configuration for cmd.
func (a *app) load(cmd *cobra.Command) (context.Context, config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lgr := logger.NewDefaultLogger("formextras").
		WithOutput(cmd.ErrOrStderr()).
		WithDebug(a.debug)
	a.logger = lgr

	cfg, err := config.NewLoader(
		config.WithFile(a.configPath),
		config.WithFlags(cmd.Flags(), flagKeys),
		config.WithLogger(lgr),
	).Load(ctx)
	if err != nil {
		return nil, config.Config{}, err
	}
	return ctx, cfg, nil
}

// emit runs the extras pipeline over form and writes the result in the
// configured format.
func (a *app) emit(ctx context.Context, cmd *cobra.Command, cfg config.Config, form model.Form) error {
	applier := extras.New(extras.WithPolicy(cfg.BuildPolicy()))
	attrs := render.NewAttributes()
	form = pipeline.New(applier.Apply).Run(form, attrs)
	a.logger.Debug("applied extras to %d fields, %d handles touched", len(form.Fields), len(attrs.Handles()))

	writers := output.NewDefaultRegistry(preview.WithSanitize(cfg.Preview.Sanitize))
	writer, err := writers.Get(cfg.Output.Format)
	if err != nil {
		return err
	}
	return writer.Write(ctx, cmd.OutOrStdout(), output.Result{Form: form, Attrs: attrs})
}
