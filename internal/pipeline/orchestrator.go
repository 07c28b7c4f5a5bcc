package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/doc2wiki/internal/convert"
	"github.com/dgallion1/doc2wiki/internal/doctree"
)

// Orchestrator converts a documentation repository into a wiki repository.
// Files are processed one at a time, in discovery order.
type Orchestrator struct {
	out printer
	log *slog.Logger
}

// NewOrchestrator creates an orchestrator that prints progress lines to
// progress and structured diagnostics to log.
func NewOrchestrator(progress io.Writer, log *slog.Logger) *Orchestrator {
	if progress == nil {
		progress = io.Discard
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Orchestrator{
		out: printer{w: progress},
		log: log,
	}
}

type filePair struct {
	src, dst string
}

// Run converts every page and copies every image from the source
// repository's memory directory into the wiki root. It stops at the first
// error; files written before it are left in place. The returned Run is
// non-nil even on error.
func (o *Orchestrator) Run(source, wiki string) (*Run, error) {
	run := newRun(source, wiki)
	log := o.log.With("source", source, "wiki", wiki)

	// Phase 1: Validate roots and collect files.
	if err := requireDir(source, "invalid path to documentation repository"); err != nil {
		run.Fail("validating", err)
		return run, err
	}
	if err := requireDir(wiki, "invalid path to wiki repository"); err != nil {
		run.Fail("validating", err)
		return run, err
	}

	tree, err := doctree.Collect(source)
	if err != nil {
		if errors.Is(err, doctree.ErrNoAnchor) {
			err = &ConfigError{
				Path:   filepath.Join(source, doctree.AnchorDir),
				Reason: "documentation path is not a MindForger repository - memory path is invalid",
				Err:    err,
			}
		}
		run.Fail("collecting", err)
		return run, err
	}
	run.SetTotals(len(tree.Pages), len(tree.Images))
	log.Info("collected files", "pages", len(tree.Pages), "images", len(tree.Images))

	pages, patches, err := mirrorPages(tree, wiki)
	if err != nil {
		run.Fail("collecting", err)
		return run, err
	}
	images, err := mirrorAll(tree, tree.Images, wiki)
	if err != nil {
		run.Fail("collecting", err)
		return run, err
	}

	// Phase 2: Convert pages.
	run.SetStatus(StatusConverting, "converting")
	if err := o.convertPages(run, pages, log); err != nil {
		run.Fail("converting", err)
		return run, err
	}

	// Phase 3: Patch pages already written above.
	run.SetStatus(StatusPatching, "patching")
	if err := o.patchPages(run, patches); err != nil {
		run.Fail("patching", err)
		return run, err
	}

	// Phase 4: Copy images.
	run.SetStatus(StatusCopying, "copying")
	if err := o.copyImages(run, images); err != nil {
		run.Fail("copying", err)
		return run, err
	}

	run.SetStatus(StatusCompleted, "done")
	snap := run.Snapshot()
	log.Info("conversion complete",
		"converted", snap.Progress.PagesConverted,
		"copied", snap.Progress.PagesCopied,
		"patched", snap.Progress.FilesPatched,
		"images", snap.Progress.ImagesCopied,
		"internal_links", snap.Progress.InternalLinks,
		"elapsed", snap.Elapsed,
	)
	return run, nil
}

func (o *Orchestrator) convertPages(run *Run, pages []filePair, log *slog.Logger) error {
	o.out.section("Converting", len(pages))
	for _, p := range pages {
		o.out.pair(p.src, p.dst)

		c, err := convert.ForFile(p.src)
		if err != nil {
			return err
		}
		action, err := c.Convert(p.src, p.dst)
		if err != nil {
			return fmt.Errorf("convert %s: %w", p.src, err)
		}
		o.out.result(action)

		data, err := os.ReadFile(p.dst)
		if err != nil {
			return fmt.Errorf("read back %s: %w", p.dst, err)
		}
		run.RecordOutput(p.dst, data)

		links := convert.CountInternal(data)
		run.update(func(pr *Progress) {
			if action == convert.ActionCopy {
				pr.PagesCopied++
			} else {
				pr.PagesConverted++
			}
			pr.InternalLinks += links
		})
		log.Debug("page written", "page", filepath.Base(p.dst), "action", string(action), "internal_links", links)
	}
	return nil
}

func (o *Orchestrator) patchPages(run *Run, patches []string) error {
	o.out.section("Patching", len(patches))
	for _, path := range patches {
		o.out.item(path)
		if err := convert.PatchFooter(path); err != nil {
			return fmt.Errorf("patch %s: %w", path, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read back %s: %w", path, err)
		}
		run.RecordOutput(path, data)
		run.update(func(pr *Progress) { pr.FilesPatched++ })
	}
	return nil
}

func (o *Orchestrator) copyImages(run *Run, images []filePair) error {
	o.out.section("Copying", len(images))
	for _, img := range images {
		o.out.item(img.src)

		c, err := convert.ForFile(img.src)
		if err != nil {
			return err
		}
		if _, err := c.Convert(img.src, img.dst); err != nil {
			return fmt.Errorf("copy %s: %w", img.src, err)
		}
		data, err := os.ReadFile(img.dst)
		if err != nil {
			return fmt.Errorf("read back %s: %w", img.dst, err)
		}
		run.RecordOutput(img.dst, data)
		run.update(func(pr *Progress) { pr.ImagesCopied++ })
	}
	return nil
}

// mirrorPages maps every page to its wiki path and picks out the footer
// pages that need patching after conversion.
func mirrorPages(tree *doctree.DocTree, wiki string) ([]filePair, []string, error) {
	pages, err := mirrorAll(tree, tree.Pages, wiki)
	if err != nil {
		return nil, nil, err
	}
	var patches []string
	for _, p := range pages {
		if convert.NeedsPatch(p.dst) {
			patches = append(patches, p.dst)
		}
	}
	return pages, patches, nil
}

func mirrorAll(tree *doctree.DocTree, paths []string, wiki string) ([]filePair, error) {
	pairs := make([]filePair, 0, len(paths))
	for _, src := range paths {
		dst, err := tree.Mirror(src, wiki)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, filePair{src: src, dst: dst})
	}
	return pairs, nil
}

func requireDir(path, reason string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &ConfigError{Path: path, Reason: reason}
	}
	return nil
}
