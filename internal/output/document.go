package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/temirov/boundtree/internal/crawler"
	"github.com/temirov/boundtree/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "
	yamlIndent   = 2

	xmlHeader = xml.Header

	errorUnsupportedFormat = "unsupported output format %q"
)

// BuildDocument converts a crawl result into its document form. The tree is
// attached only when includeTree is set.
func BuildDocument(result crawler.Result, includeTree bool) types.CrawlDocument {
	document := types.CrawlDocument{
		RunID:   result.RunID.String(),
		Root:    result.Root.Name,
		Status:  result.Status.String(),
		Message: StatusMessage(result.Status, result.MaxDepth),
		Limits: types.CrawlLimits{
			MaxDepth:       result.MaxDepth,
			MaxTimeSeconds: result.MaxDuration.Seconds(),
		},
		Edges:           result.Root.DescendantCount(),
		ListErrors:      result.ListErrors,
		StartedAt:       result.StartedAt.UTC().Format(time.RFC3339),
		DurationSeconds: result.Elapsed.Seconds(),
	}
	if includeTree {
		document.Tree = BuildTreeNode(result.Root)
	}
	return document
}

// BuildTreeNode converts a crawled node and its descendants into output nodes.
func BuildTreeNode(node *crawler.Node) *types.TreeOutputNode {
	if node == nil {
		return nil
	}
	outputNode := &types.TreeOutputNode{
		Name:  node.Name,
		Path:  node.Path(),
		Type:  types.NodeTypeDirectory,
		Depth: node.Depth(),
	}
	if node.Kind == crawler.KindFile {
		outputNode.Type = types.NodeTypeFile
	}
	for _, child := range node.Children {
		outputNode.Children = append(outputNode.Children, BuildTreeNode(child))
	}
	return outputNode
}

// RenderJSON marshals the document as indented JSON.
func RenderJSON(document types.CrawlDocument) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(document, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// RenderXML marshals the document as an indented XML document with header.
func RenderXML(document types.CrawlDocument) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(document, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded), nil
}

// RenderYAML marshals the document as YAML.
func RenderYAML(document types.CrawlDocument) (string, error) {
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(yamlIndent)
	if encodeError := encoder.Encode(document); encodeError != nil {
		return "", encodeError
	}
	if closeError := encoder.Close(); closeError != nil {
		return "", closeError
	}
	return buffer.String(), nil
}

// RenderDocument dispatches to the renderer for a structured format.
func RenderDocument(format string, document types.CrawlDocument) (string, error) {
	switch format {
	case types.FormatJSON:
		return RenderJSON(document)
	case types.FormatXML:
		return RenderXML(document)
	case types.FormatYAML:
		return RenderYAML(document)
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}
