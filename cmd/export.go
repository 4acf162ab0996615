package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pocketbook/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write everything to a portable JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a previously exported JSON file",
	Long: `Load an export file into the current data set. Imported categories
replace the existing tree wholesale; everything else is added alongside
what is already there, so importing into a fresh data set is the safe
path.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	doc, err := export.Export(s)
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := export.Write(f, doc); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("  Exported %d accounts, %d categories, %d bills to %s\n",
		len(doc.Accounts), len(doc.Categories), len(doc.Bills)+len(doc.Utilities), args[0])
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	doc, err := export.Read(f)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := export.Import(s, doc); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Printf("  Imported %d accounts, %d categories, %d bills from %s\n",
		len(doc.Accounts), len(doc.Categories), len(doc.Bills)+len(doc.Utilities), args[0])
	return nil
}
