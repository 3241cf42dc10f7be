package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/apiforge/tsgen/generator"
	"github.com/apiforge/tsgen/internal/comment"
	"github.com/apiforge/tsgen/schema"
	"github.com/spf13/cobra"
)

const (
	defaultSchemaPath   = ""
	defaultOutputDir    = "./sdk"
	defaultDiffFilePath = ""
	defaultDiffFileName = "tsgen.diff"
	defaultVerify       = false
	defaultDebug        = false
)

var (
	debug      bool
	verify     bool
	schemaPath string
	outputDir  string
	diffFile   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate SDK sources",
	Long:  "generate TypeScript client SDK source files from an API schema",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		Generate()
	},
}

// validateDiffFile checks that the custom diff output path is valid
func validateDiffFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("diff file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("diff file directory does not exist: %v", err)
	}

	return nil
}

// setDiffFilePath returns a complete diff file path based on the provided
// diffFile flag value. An empty flag leaves diff mode off, and a flag that
// names an existing directory gets the default diff file name appended.
func setDiffFilePath(diffFilePath string) (string, error) {
	if diffFilePath == "" {
		return "", nil
	}

	if info, err := os.Stat(diffFilePath); err == nil && info.IsDir() {
		diffFilePath = filepath.Join(diffFilePath, defaultDiffFileName)
	}

	err := validateDiffFile(diffFilePath)
	if err != nil {
		return "", err
	}

	return diffFilePath, nil
}

func Generate() {
	if schemaPath == "" {
		log.Fatal("--schema is required")
	}

	if _, err := os.Stat(schemaPath); err != nil {
		cobra.CheckErr(fmt.Errorf("--schema \"%s\" is invalid: %v", schemaPath, err))
	}

	diffPath, err := setDiffFilePath(diffFile)
	if err != nil {
		cobra.CheckErr(err)
	}

	s, err := schema.Load(schemaPath)
	if err != nil {
		log.Fatal(err)
	}

	manager, err := generator.NewManager(s, generator.Config{
		OutputDir: outputDir,
		DiffFile:  diffPath,
		Verify:    verify,
		Debug:     debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	err = manager.Plan()
	if err != nil {
		log.Fatal(err)
	}

	if diffPath != "" {
		err = manager.CreateDiffFile()
		if err != nil {
			log.Fatal(err)
		}

		err = manager.WriteDiff()
		if err != nil {
			log.Fatal(err)
		}
	} else {
		err = manager.Write()
		if err != nil {
			log.Fatal(err)
		}
	}

	comment.WriteAll()
}

func init() {
	generateCmd.Flags().BoolVar(&debug, "debug", defaultDebug, "enable debugging output")
	generateCmd.Flags().BoolVar(&verify, "verify", defaultVerify, "parse generated files and fail on syntax errors")
	generateCmd.Flags().StringVar(&schemaPath, "schema", defaultSchemaPath, "specify API schema file path")
	generateCmd.Flags().StringVar(&outputDir, "out", defaultOutputDir, "specify output directory for generated files")
	generateCmd.Flags().StringVar(&diffFile, "diff", defaultDiffFilePath, "write a diff of pending changes instead of the files themselves")
	cobra.MarkFlagFilename(generateCmd.Flags(), "schema", "yaml", "yml") // for file completion
	cobra.MarkFlagFilename(generateCmd.Flags(), "diff", ".diff")        // for file completion

	rootCmd.AddCommand(generateCmd)
}
