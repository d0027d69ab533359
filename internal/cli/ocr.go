package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ryuuhei0729/swimtime/internal/ocrmenu"
	"github.com/ryuuhei0729/swimtime/internal/practice"
	"github.com/spf13/cobra"
)

func newOCRCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ocr [text_file]",
		Short: "Extract practice menus from OCR text",
		Long: `Extract structured practice menus from text recognised on a photo of
a practice whiteboard.

The text is split into blocks at horizontal rules and "distance x reps"
headers. Every block with a header and at least one time becomes a menu;
other blocks are dropped and reported with --verbose.

Reads stdin when no file is given or the file is "-".

Examples:
  swimtime ocr board.txt
  swimtime ocr board.txt --json
  swimtime ocr board.txt --style back
  cat board.txt | swimtime ocr -v`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOCR(cmd, args)
		},
	}

	cmd.Flags().Bool("json", false, "Print JSON instead of text")
	cmd.Flags().Bool("precise", false, "Show hundredths in text output")
	cmd.Flags().String("style", "", "Override the detected style (fr, ba, br, fly, im)")

	return cmd
}

func (a *app) runOCR(cmd *cobra.Command, args []string) error {
	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	var override practice.Style
	if styleFlag, _ := cmd.Flags().GetString("style"); styleFlag != "" {
		style, err := practice.ParseStyle(styleFlag)
		if err != nil {
			return fmt.Errorf("invalid --style: %w", err)
		}
		override = style
	}

	text, err := readSource(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}

	a.logger.Debugw("Parsing OCR text",
		"source", source,
		"bytes", len(text),
	)

	res := ocrmenu.Parse(text)
	diag := res.Diagnostics

	if override != "" {
		for i := range res.Menus {
			res.Menus[i].Style = override
		}
		a.logger.Debugw("Overrode detected style", "style", override)
	}

	for _, w := range diag.Warnings {
		a.logger.Debugw("OCR note", "note", w)
	}
	a.logger.Infow("Parsed OCR text",
		"blocks", diag.Blocks,
		"menus", len(res.Menus),
		"dropped", diag.DroppedBlocks,
	)
	if diag.DroppedBlocks > 0 {
		a.logger.Warnw("Some blocks could not be turned into menus",
			"dropped", diag.DroppedBlocks,
		)
	}

	out := cmd.OutOrStdout()
	if a.outputFormat(cmd) == "json" {
		return writeJSON(out, res)
	}
	return writeMenus(out, res.Menus, a.precise(cmd))
}

func readSource(stdin io.Reader, source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	if _, err := os.Stat(source); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", source, err)
	}
	return string(data), nil
}
