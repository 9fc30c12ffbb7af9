package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/jobdesk/jobdesk/app/web/request"
)

// payloads lists every API request body published in the schema document
var payloads = []struct {
	name string
	typ  any
}{
	{"CreateUser", &request.CreateUser{}},
	{"CreateJob", &request.CreateJob{}},
	{"CreateApplication", &request.CreateApplication{}},
	{"CreateCategory", &request.CreateCategory{}},
	{"UpdateApplicationStatus", &request.UpdateApplicationStatus{}},
}

func main() {
	schemas := map[string]*jsonschema.Schema{}
	for _, p := range payloads {
		schema := jsonschema.Reflect(p.typ)
		schema.Title = p.name + " request payload"
		schemas[p.name] = schema
	}

	// marshal to JSON with indentation
	data, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schemas: %v", err)
	}

	// write to file
	outputPath := "api-schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("API schema generated successfully at %s\n", outputPath)
}
