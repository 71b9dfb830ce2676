package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alfredoptarigan/interview-coach/internal/services"
)

var extractCmd = &cobra.Command{
	Use:   "extract <resume.pdf|resume.docx>",
	Short: "Print the text the API would extract from a resume file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open resume: %w", err)
		}
		defer f.Close()

		text, err := services.NewDocumentParserService().ExtractText(filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		if text == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "no text extracted (unsupported format or empty document)")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
