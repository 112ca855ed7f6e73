package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bjaus/termtable"
	"github.com/bjaus/termtable/internal/document"
)

type renderOptions struct {
	style       styleValue
	rule        ruleValue
	headerColor colorValue
	format      formatValue
	color       ColorMode
}

func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{format: formatValue{format: termtable.Text}}

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render YAML table documents",
		Long: `Render every table document in the given YAML files. With no file, or
with "-", documents are read from standard input.`,
		Example: `  termtable render tables.yaml
  termtable render --style unicode --rule boxed tables.yaml
  cat tables.yaml | termtable render --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.Var(&opts.style, "style", "border style: default, unicode or minimal (overrides documents)")
	f.Var(&opts.rule, "rule", "separator rule: flat or boxed (overrides documents)")
	f.Var(&opts.headerColor, "header-color", "header color (overrides documents)")
	f.VarP(&opts.format, "format", "o", "output format: text, csv, tsv, markdown, html, json, jsonl, yaml or go-template=<tmpl>")
	f.Var(&opts.color, "color", "color mode: auto, always or never")
	return cmd
}

func (a *App) runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var docs []document.Document
	for _, path := range args {
		var (
			loaded []document.Document
			err    error
		)
		if path == "-" {
			loaded, err = document.Decode(cmd.InOrStdin())
			if err != nil {
				err = fmt.Errorf("stdin: %w", err)
			}
		} else {
			loaded, err = document.Load(path)
		}
		if err != nil {
			return err
		}
		a.log.V(1).Info("loaded documents", "source", path, "count", len(loaded))
		docs = append(docs, loaded...)
	}

	flags := cmd.Flags()
	tables := make([]*termtable.Table, len(docs))
	for i, d := range docs {
		t, err := d.Build()
		if err != nil {
			return fmt.Errorf("table %d: %w", i+1, err)
		}
		if flags.Changed("style") {
			t.SetStyle(opts.style.style)
		}
		if flags.Changed("rule") {
			t.SetRule(opts.rule.rule)
		}
		if flags.Changed("header-color") {
			t.SetHeaderColor(opts.headerColor.color)
		}
		t.SetLogger(a.log)
		tables[i] = t
	}

	out, color := output(cmd.OutOrStdout(), opts.color)
	for i, t := range tables {
		if opts.format.format != termtable.Text {
			if err := t.Export(out, opts.format.format); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		if title := docs[i].Title; title != "" {
			if _, err := fmt.Fprintln(out, title); err != nil {
				return err
			}
		}
		if err := t.RenderTo(out, color); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
