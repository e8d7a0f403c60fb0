package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/picksplaydoit-ai/superappprofe/internal/report"
)

type assistantRequest struct {
	SystemInstruction string               `json:"systemInstruction"`
	Prompt            string               `json:"prompt,omitempty"`
	QuickActions      []report.QuickAction `json:"quickActions"`
}

// contextCmd prints the course summary an assistant model is primed with,
// optionally followed by one of the canned questions.
func (cli *commandLine) contextCmd(ctx context.Context, args []string) error {
	fs := cli.flagSet("context")
	key := fs.String("course", "", "Course id or name")
	action := fs.String("action", "", "Quick action: risk, dynamic or monthly")
	format := fs.String("format", "text", "text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := cli.loadCourse(ctx, fs, *key)
	if err != nil {
		return err
	}

	req := assistantRequest{SystemInstruction: report.AssistantContext(c), QuickActions: report.QuickActions}
	if *action != "" {
		qa, ok := report.FindQuickAction(*action)
		if !ok {
			return fmt.Errorf("unknown quick action %q", *action)
		}
		req.Prompt = qa.Prompt
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(req)
	case "text":
		fmt.Fprint(cli.out, req.SystemInstruction)
		if req.Prompt != "" {
			fmt.Fprintf(cli.out, "\n%s\n", req.Prompt)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", *format)
}

func (cli *commandLine) exportsCmd(sub string, args []string) error {
	fs := cli.flagSet("exports " + sub)
	key := fs.String("key", "", "Key printed by report")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch sub {
	case "list":
		keys, err := cli.blobs.List()
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cli.out, k)
		}
		return nil
	case "cat":
		if *key == "" {
			fs.Usage()
			return errHelp
		}
		rc, err := cli.blobs.Get(*key)
		if err != nil {
			return fmt.Errorf("export %q: %w", *key, err)
		}
		defer rc.Close()
		_, err = io.Copy(cli.out, rc)
		return err
	}
	cli.printUsage()
	return errHelp
}
