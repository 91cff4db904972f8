package output_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/temirov/boundtree/internal/crawler"
	"github.com/temirov/boundtree/internal/output"
	"github.com/temirov/boundtree/internal/types"
)

const sampleRoot = "/data"

func sampleResult(testingHandle *testing.T, maxDepth int) crawler.Result {
	testingHandle.Helper()
	listings := map[string]crawler.Listing{
		sampleRoot:                               {Directories: []string{"a"}, Files: []string{"b.txt"}},
		filepath.Join(sampleRoot, "a"):           {Directories: []string{"éclair"}, Files: []string{"x.txt"}},
		filepath.Join(sampleRoot, "a", "éclair"): {},
	}
	lister := crawler.ListerFunc(func(path string) (crawler.Listing, error) {
		return listings[path], nil
	})
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return crawler.New(crawler.Options{
		MaxDepth:    maxDepth,
		MaxDuration: time.Minute,
		Lister:      lister,
		Clock:       func() time.Time { return startedAt },
	}).Run(sampleRoot)
}

func TestWriteTreeRaw(testingHandle *testing.T) {
	var buffer bytes.Buffer
	output.WriteTreeRaw(&buffer, sampleResult(testingHandle, 3).Root)

	expected := strings.Join([]string{
		sampleRoot,
		"├── a",
		"│   ├── éclair",
		"│   └── x.txt",
		"└── b.txt",
		"",
	}, "\n")
	if buffer.String() != expected {
		testingHandle.Fatalf("unexpected tree:\n%s\nwant:\n%s", buffer.String(), expected)
	}
}

func TestWriteTreeRawNilRoot(testingHandle *testing.T) {
	var buffer bytes.Buffer
	output.WriteTreeRaw(&buffer, nil)
	if buffer.Len() != 0 {
		testingHandle.Fatalf("expected no output for nil root")
	}
}

func TestStatusMessage(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		status   crawler.Status
		expected string
	}{
		{name: "time", status: crawler.StatusMaxTimeExceeded, expected: "Search stopped after reaching the time limit."},
		{name: "depth", status: crawler.StatusMaxDepthReached, expected: "Search completed down to a tree depth of 4."},
		{name: "ok", status: crawler.StatusOK, expected: "Search completed fully (tree depth never exceeded max depth)."},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			if message := output.StatusMessage(testCase.status, 4); message != testCase.expected {
				testingHandle.Fatalf("got %q, want %q", message, testCase.expected)
			}
		})
	}
}

func TestWriteReport(testingHandle *testing.T) {
	result := sampleResult(testingHandle, 1)
	result.Elapsed = 1250 * time.Millisecond

	var buffer bytes.Buffer
	output.WriteReport(&buffer, result)

	expected := "Search completed down to a tree depth of 1.\n" +
		"Tree size (# of edges): 2\n" +
		"Duration: 1.25 seconds\n"
	if buffer.String() != expected {
		testingHandle.Fatalf("unexpected report:\n%s", buffer.String())
	}
}

func TestWriteReportMentionsUnlistableFolders(testingHandle *testing.T) {
	result := sampleResult(testingHandle, 3)
	result.ListErrors = 2

	var buffer bytes.Buffer
	output.WriteReport(&buffer, result)

	if !strings.Contains(buffer.String(), "Unlistable folders treated as empty: 2") {
		testingHandle.Fatalf("missing unlistable count in report:\n%s", buffer.String())
	}
}

func TestWriteCrawlHeader(testingHandle *testing.T) {
	var buffer bytes.Buffer
	output.WriteCrawlHeader(&buffer, sampleRoot, 3)
	if buffer.String() != "Crawling \"/data\" to a maximum depth of 3...\n" {
		testingHandle.Fatalf("unexpected header %q", buffer.String())
	}
}

func TestBuildDocument(testingHandle *testing.T) {
	result := sampleResult(testingHandle, 3)

	withoutTree := output.BuildDocument(result, false)
	if withoutTree.Tree != nil {
		testingHandle.Fatalf("tree should be omitted")
	}
	document := output.BuildDocument(result, true)
	if document.Status != "OK" || document.Edges != 4 || document.Root != sampleRoot {
		testingHandle.Fatalf("unexpected document header: %+v", document)
	}
	if document.RunID != result.RunID.String() {
		testingHandle.Fatalf("run id mismatch")
	}
	if document.StartedAt != "2024-05-01T12:00:00Z" || document.Limits.MaxTimeSeconds != 60 {
		testingHandle.Fatalf("unexpected timing fields: %+v", document)
	}
	if document.Tree == nil || len(document.Tree.Children) != 2 {
		testingHandle.Fatalf("unexpected tree: %+v", document.Tree)
	}
	fileNode := document.Tree.Children[0].Children[1]
	if fileNode.Type != types.NodeTypeFile || fileNode.Depth != 2 || fileNode.Path != filepath.Join(sampleRoot, "a", "x.txt") {
		testingHandle.Fatalf("unexpected file node: %+v", fileNode)
	}
}

func TestRenderDocumentFormats(testingHandle *testing.T) {
	document := output.BuildDocument(sampleResult(testingHandle, 1), true)

	testCases := []struct {
		format string
		decode func(string) (types.CrawlDocument, error)
	}{
		{
			format: types.FormatJSON,
			decode: func(encoded string) (types.CrawlDocument, error) {
				var decoded types.CrawlDocument
				return decoded, json.Unmarshal([]byte(encoded), &decoded)
			},
		},
		{
			format: types.FormatXML,
			decode: func(encoded string) (types.CrawlDocument, error) {
				var decoded types.CrawlDocument
				return decoded, xml.Unmarshal([]byte(strings.TrimPrefix(encoded, xml.Header)), &decoded)
			},
		},
		{
			format: types.FormatYAML,
			decode: func(encoded string) (types.CrawlDocument, error) {
				var decoded types.CrawlDocument
				return decoded, yaml.Unmarshal([]byte(encoded), &decoded)
			},
		},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.format, func(testingHandle *testing.T) {
			rendered, renderError := output.RenderDocument(testCase.format, document)
			if renderError != nil {
				testingHandle.Fatalf("render %s: %v", testCase.format, renderError)
			}
			decoded, decodeError := testCase.decode(rendered)
			if decodeError != nil {
				testingHandle.Fatalf("decode %s: %v\n%s", testCase.format, decodeError, rendered)
			}
			if decoded.Status != "MAX_DEPTH_REACHED" || decoded.Edges != 2 || decoded.RunID != document.RunID {
				testingHandle.Fatalf("unexpected decoded %s document: %+v", testCase.format, decoded)
			}
			if decoded.Tree == nil || len(decoded.Tree.Children) != 2 || decoded.Tree.Children[1].Name != "b.txt" {
				testingHandle.Fatalf("unexpected decoded %s tree: %+v", testCase.format, decoded.Tree)
			}
		})
	}

	if _, renderError := output.RenderDocument(types.FormatRaw, document); renderError == nil {
		testingHandle.Fatalf("raw is not a document format")
	}
}
