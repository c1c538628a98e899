package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	flagExportOut       string
	flagExportClipboard bool
)

var exportCmd = &cobra.Command{
	Use:   "export [board]",
	Short: "Export a board as YAML",
	Long: `Prints a board in the YAML board format. Built-in, directory and stored
boards can all be exported, which makes this the way to copy a stored board
into a board directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().BoolVarP(&flagExportClipboard, "clipboard", "c", false, "Copy to the system clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	b, err := resolveBoard(boardID(args))
	if err != nil {
		return err
	}

	data, err := b.EncodeYAML()
	if err != nil {
		return err
	}

	switch {
	case flagExportClipboard:
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Printf("Copied %s (%d cells) to the clipboard\n", b.ID, len(b.Cells))
	case flagExportOut != "":
		if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
			return fmt.Errorf("writing board: %w", err)
		}
		fmt.Printf("Wrote %s\n", flagExportOut)
	default:
		_, err = os.Stdout.Write(data)
	}
	return err
}
