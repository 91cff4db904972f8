package output

import (
	"fmt"
	"io"

	"github.com/temirov/boundtree/internal/crawler"
	"github.com/temirov/boundtree/internal/utils"
)

const (
	crawlHeaderFormat      = "Crawling %q to a maximum depth of %d...\n"
	timeLimitMessage       = "Search stopped after reaching the time limit."
	depthLimitFormat       = "Search completed down to a tree depth of %d."
	completedFullyMessage  = "Search completed fully (tree depth never exceeded max depth)."
	treeSizeFormat         = "Tree size (# of edges): %d\n"
	durationFormat         = "Duration: %s seconds\n"
	unlistableFolderFormat = "Unlistable folders treated as empty: %d\n"
)

// StatusMessage returns the human-readable sentence describing how a crawl ended.
func StatusMessage(status crawler.Status, maxDepth int) string {
	switch status {
	case crawler.StatusMaxTimeExceeded:
		return timeLimitMessage
	case crawler.StatusMaxDepthReached:
		return fmt.Sprintf(depthLimitFormat, maxDepth)
	default:
		return completedFullyMessage
	}
}

// WriteCrawlHeader announces a crawl before it starts.
func WriteCrawlHeader(writer io.Writer, rootPath string, maxDepth int) {
	fmt.Fprintf(writer, crawlHeaderFormat, rootPath, maxDepth)
}

// WriteReport prints the status line, the edge count and the elapsed time.
// The unlistable folder count is printed only when it is non-zero.
func WriteReport(writer io.Writer, result crawler.Result) {
	fmt.Fprintln(writer, StatusMessage(result.Status, result.MaxDepth))
	fmt.Fprintf(writer, treeSizeFormat, result.Root.DescendantCount())
	if result.ListErrors > 0 {
		fmt.Fprintf(writer, unlistableFolderFormat, result.ListErrors)
	}
	fmt.Fprintf(writer, durationFormat, utils.FormatSeconds(result.Elapsed))
}
