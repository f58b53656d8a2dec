package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-widgetbind"
	"github.com/goliatone/go-widgetbind/pkg/template"
)

func main() {
	templatePath := flag.String("template", "", "template document path (JSON or YAML)")
	valuesPath := flag.String("values", "", "values document merged during apply (JSON or YAML)")
	mode := flag.String("mode", "bindings", "output mode: bindings, sample, or apply")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for binding values before apply")
	flag.Parse()

	if *templatePath == "" {
		log.Fatalf("missing -template")
	}

	doc, err := template.LoadFile(*templatePath)
	if err != nil {
		log.Fatalf("Failed to load template: %v", err)
	}

	bindings := widgetbind.Collect(doc)

	var result any
	switch *mode {
	case "bindings":
		result = bindings
	case "sample":
		result = widgetbind.BuildSample(doc, bindings)
	case "apply":
		raw, err := loadValues(*valuesPath)
		if err != nil {
			log.Fatalf("Failed to load values: %v", err)
		}
		if *interactive {
			if err := promptValues(bindings, widgetbind.BuildSample(doc, bindings), raw); err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}
		populated, err := widgetbind.Apply(doc, raw, bindings)
		if err != nil {
			log.Fatalf("Failed to apply values: %v", err)
		}
		result = populated
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	payload = append(payload, '\n')

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		os.Stdout.Write(payload)
	}
}

func loadValues(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}
	doc, err := template.LoadFile(path)
	if err != nil {
		return nil, err
	}
	record, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("values document %s is not an object", path)
	}
	return record, nil
}
