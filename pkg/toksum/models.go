// Package toksum counts and tokenizes text using OpenAI tiktoken encodings.
//
// The package maps model names to encoding names, resolves which encoding a
// caller wants (by model, by encoding name, or by passing an Encoder
// directly), and applies the resulting encoder to strings, files, file lists,
// and directory trees.
package toksum

import "slices"

// modelEncodings maps each supported model to its tiktoken encoding.
// The table is fixed at build time and never mutated.
var modelEncodings = map[string]string{
	"gpt-4o":                    "o200k_base",
	"gpt-4o-mini":               "o200k_base",
	"gpt-4-turbo":               "cl100k_base",
	"gpt-4":                     "cl100k_base",
	"gpt-3.5-turbo":             "cl100k_base",
	"text-embedding-ada-002":    "cl100k_base",
	"text-embedding-3-small":    "cl100k_base",
	"text-embedding-3-large":    "cl100k_base",
	"Codex models":              "p50k_base",
	"text-davinci-002":          "p50k_base",
	"text-davinci-003":          "p50k_base",
	"GPT-3 models like davinci": "r50k_base",
}

// validModels lists the supported models in documentation order.
var validModels = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"gpt-4-turbo",
	"gpt-4",
	"gpt-3.5-turbo",
	"text-embedding-ada-002",
	"text-embedding-3-small",
	"text-embedding-3-large",
	"Codex models",
	"text-davinci-002",
	"text-davinci-003",
	"GPT-3 models like davinci",
}

// validEncodings lists the supported tiktoken encodings.
var validEncodings = []string{
	"o200k_base",
	"cl100k_base",
	"p50k_base",
	"r50k_base",
}

// ModelMappings returns a copy of the model to encoding table.
func ModelMappings() map[string]string {
	mappings := make(map[string]string, len(modelEncodings))
	for model, encoding := range modelEncodings {
		mappings[model] = encoding
	}
	return mappings
}

// ValidModels returns the supported model names.
func ValidModels() []string {
	return slices.Clone(validModels)
}

// ValidEncodings returns the supported encoding names.
func ValidEncodings() []string {
	return slices.Clone(validEncodings)
}

func isValidEncoding(encoding string) bool {
	return slices.Contains(validEncodings, encoding)
}
