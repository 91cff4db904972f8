// Package types defines the cross-package data structures used by the boundtree CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatYAML = "yaml"
)

// TreeOutputNode is one node of a crawled tree in document form.
type TreeOutputNode struct {
	XMLName  xml.Name          `json:"-" xml:"node" yaml:"-"`
	Name     string            `json:"name" xml:"name" yaml:"name"`
	Path     string            `json:"path" xml:"path" yaml:"path"`
	Type     string            `json:"type" xml:"type" yaml:"type"`
	Depth    int               `json:"depth" xml:"depth" yaml:"depth"`
	Children []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty" yaml:"children,omitempty"`
}

// CrawlLimits echoes the limits a crawl ran with.
type CrawlLimits struct {
	MaxDepth       int     `json:"maxDepth" xml:"maxDepth" yaml:"maxDepth"`
	MaxTimeSeconds float64 `json:"maxTimeSeconds" xml:"maxTimeSeconds" yaml:"maxTimeSeconds"`
}

// CrawlDocument is the structured result of one crawl.
type CrawlDocument struct {
	XMLName         xml.Name        `json:"-" xml:"crawl" yaml:"-"`
	RunID           string          `json:"runId" xml:"runId,attr" yaml:"runId"`
	Root            string          `json:"root" xml:"root" yaml:"root"`
	Status          string          `json:"status" xml:"status" yaml:"status"`
	Message         string          `json:"message" xml:"message" yaml:"message"`
	Limits          CrawlLimits     `json:"limits" xml:"limits" yaml:"limits"`
	Edges           int             `json:"edges" xml:"edges" yaml:"edges"`
	ListErrors      int             `json:"listErrors,omitempty" xml:"listErrors,omitempty" yaml:"listErrors,omitempty"`
	StartedAt       string          `json:"startedAt" xml:"startedAt" yaml:"startedAt"`
	DurationSeconds float64         `json:"durationSeconds" xml:"durationSeconds" yaml:"durationSeconds"`
	Tree            *TreeOutputNode `json:"tree,omitempty" xml:"tree>node,omitempty" yaml:"tree,omitempty"`
}
