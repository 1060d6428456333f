// Package main provides the CLI entry point for figwire-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lightplot/figwire-go/pkg/figwire"
	"github.com/lightplot/figwire-go/pkg/figwire/output"
)

var (
	outDir  string
	format  string
	jsonOut bool
	pretty  bool
	legend  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figwire [input.img]",
		Short: "Render serialized figure streams",
		Long: `figwire decodes the binary figure streams written by the Lightning
logging library and renders them to image files or Excel workbooks.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outDir, "out-dir", "d", ".", "Directory save paths resolve against")
	rootCmd.Flags().StringVar(&format, "format", "image", "Rendering backend: image, excel")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the decoded chart as JSON instead of rendering")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&legend, "legend", "auto", "Legend mode: auto, on, off")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts, err := parseOptions()
	if err != nil {
		return err
	}

	spec, err := figwire.DecodeFile(inputPath)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	if jsonOut {
		data, err := output.ToJSON(spec, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	saved, err := figwire.RenderSpec(spec, outDir, opts)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if !saved {
		fmt.Println("decoded chart has no save path; nothing written")
		return nil
	}
	fmt.Printf("figure saved under %s\n", outDir)
	return nil
}

func parseOptions() (figwire.Options, error) {
	opts := figwire.DefaultOptions()

	switch format {
	case "image":
		opts.Format = figwire.FormatImage
	case "excel":
		opts.Format = figwire.FormatExcel
	default:
		return opts, fmt.Errorf("invalid format: %s (must be image or excel)", format)
	}

	switch legend {
	case "auto":
	case "on", "off":
		on := legend == "on"
		opts.Legend = &on
	default:
		return opts, fmt.Errorf("invalid legend mode: %s (must be auto, on, or off)", legend)
	}

	return opts, nil
}
