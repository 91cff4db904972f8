// Package crawler performs a bounded depth-first traversal of a directory
// hierarchy. A crawl stops descending when it reaches the maximum depth or
// when its wall-clock deadline passes, and reports which limit, if any, cut
// the result short.
package crawler

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	logMessageListFailed   = "treating unlistable directory as childless"
	logMessageTimeCut      = "deadline passed, skipping subdirectory"
	logMessageCrawlSkipped = "maximum depth is zero, root not expanded"
	logFieldPath           = "path"
	logFieldRunID          = "run_id"
)

// Options configures a Crawler.
type Options struct {
	// MaxDepth is the deepest level whose directories are still listed,
	// counting the root as level zero. Negative values behave like zero.
	MaxDepth int
	// MaxDuration bounds the wall-clock time of the whole run.
	MaxDuration time.Duration
	// Lister enumerates directories. Defaults to the host filesystem.
	Lister Lister
	// Clock supplies the current time. Defaults to time.Now.
	Clock func() time.Time
	// Logger receives debug diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Result is the outcome of one crawl.
type Result struct {
	RunID       uuid.UUID
	Root        *Node
	Status      Status
	MaxDepth    int
	MaxDuration time.Duration
	StartedAt   time.Time
	Elapsed     time.Duration
	// ListErrors counts directories that could not be listed and were kept
	// as childless nodes. It never influences Status.
	ListErrors int
}

// Crawler runs bounded traversals with a fixed configuration.
type Crawler struct {
	options Options
}

// New returns a Crawler, filling unset options with defaults.
func New(options Options) *Crawler {
	if options.MaxDepth < 0 {
		options.MaxDepth = 0
	}
	if options.Lister == nil {
		options.Lister = NewOSLister()
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	return &Crawler{options: options}
}

// Crawl walks rootPath on the host filesystem and returns the tree together
// with the terminal status.
func Crawl(rootPath string, maxDepth int, maxDuration time.Duration) (*Node, Status) {
	result := New(Options{MaxDepth: maxDepth, MaxDuration: maxDuration}).Run(rootPath)
	return result.Root, result.Status
}

// Run walks rootPath depth-first. The root node always exists; it is listed
// only when MaxDepth is positive. A root that cannot be listed yields a single
// childless node and StatusOK.
func (crawler *Crawler) Run(rootPath string) Result {
	startedAt := crawler.options.Clock()
	deadline := startedAt.Add(crawler.options.MaxDuration)
	result := Result{
		RunID:       uuid.New(),
		Root:        newRootNode(rootPath),
		Status:      StatusOK,
		MaxDepth:    crawler.options.MaxDepth,
		MaxDuration: crawler.options.MaxDuration,
		StartedAt:   startedAt,
	}
	logger := crawler.options.Logger.With(zap.String(logFieldRunID, result.RunID.String()))

	if crawler.options.MaxDepth == 0 {
		logger.Debug(logMessageCrawlSkipped, zap.String(logFieldPath, rootPath))
		result.Status = StatusMaxDepthReached
		result.Elapsed = crawler.options.Clock().Sub(startedAt)
		return result
	}

	pending := []*Node{result.Root}
	for len(pending) > 0 {
		node := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if !node.IsRoot() && crawler.options.Clock().After(deadline) {
			logger.Debug(logMessageTimeCut, zap.String(logFieldPath, node.Path()))
			result.Status = Combine(result.Status, StatusMaxTimeExceeded)
			continue
		}

		nodePath := node.Path()
		listing, listError := crawler.options.Lister.List(nodePath)
		if listError != nil {
			logger.Debug(logMessageListFailed, zap.String(logFieldPath, nodePath), zap.Error(listError))
			result.ListErrors++
			continue
		}

		childDepth := node.Depth() + 1
		var descend []*Node
		for _, directoryName := range listing.Directories {
			child := node.addChild(directoryName, KindDirectory)
			if childDepth >= crawler.options.MaxDepth {
				result.Status = Combine(result.Status, StatusMaxDepthReached)
				continue
			}
			descend = append(descend, child)
		}
		for _, fileName := range listing.Files {
			node.addChild(fileName, KindFile)
		}

		// Reverse push keeps siblings in listing order.
		for index := len(descend) - 1; index >= 0; index-- {
			pending = append(pending, descend[index])
		}
	}

	result.Elapsed = crawler.options.Clock().Sub(startedAt)
	return result
}
