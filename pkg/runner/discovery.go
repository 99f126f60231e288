package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// markdownLanguage is the linguist name go-enry reports for Markdown sources.
const markdownLanguage = "Markdown"

// Discover finds Markdown files matching opts under the given working directory.
// It returns a deterministically sorted list of absolute file paths.
//
// Files named explicitly in opts.Paths are only filtered by extension and
// exclude globs. Files found by walking a directory additionally skip
// hidden entries and, unless disabled in the config, vendored trees.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	walker := &walker{
		ctx:        ctx,
		workDir:    workDir,
		matcher:    newMatcher(opts),
		followLink: opts.FollowSymlinks,
		vendored:   opts.Config.SkipsVendored(),
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if walker.matcher.matchFile(walker.rel(absPath)) {
				walker.add(absPath)
			}
			continue
		}

		if err := walker.walk(absPath); err != nil {
			return nil, err
		}
	}

	slices.Sort(walker.files)

	return walker.files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

type walker struct {
	ctx        context.Context //nolint:containedctx // Scoped to one Discover call.
	workDir    string
	matcher    matcher
	followLink bool
	vendored   bool
	seen       map[string]struct{}
	files      []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

// rel returns path relative to the working directory, in slash form.
func (w *walker) rel(path string) string {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		relPath = path
	}
	return filepath.ToSlash(relPath)
}

func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := w.rel(path)

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if w.skipDir(entry.Name(), relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.walkLink(path, relPath)
		}

		if w.matcher.matchFile(relPath) {
			w.add(path)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}

	return nil
}

// skipDir reports whether the directory at relPath is pruned from the walk.
func (w *walker) skipDir(name, relPath string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if w.vendored && enry.IsVendor(relPath+"/") {
		return true
	}
	return w.matcher.excluded(relPath)
}

// walkLink resolves a symlink found during a walk. File links are treated
// like regular files; directory links are walked only when following links.
func (w *walker) walkLink(path, relPath string) error {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}
	info, err := os.Stat(realPath)
	if err != nil {
		return nil //nolint:nilerr // Unreadable symlink targets are skipped.
	}

	if !info.IsDir() {
		if w.matcher.matchFile(relPath) {
			w.add(path)
		}
		return nil
	}

	if !w.followLink || w.matcher.excluded(relPath) {
		return nil
	}

	// Walk the target, not the link: WalkDir does not descend into a link root.
	return w.walk(realPath)
}

// matcher decides which files are Markdown sources worth linting.
type matcher struct {
	extensions []string
	// byLanguage accepts any file go-enry identifies as Markdown, for runs
	// that did not pin the extension list.
	byLanguage bool
	include    []string
	exclude    []string
}

func newMatcher(opts Options) matcher {
	extensions := opts.effectiveExtensions()
	lowered := make([]string, len(extensions))
	for i, ext := range extensions {
		lowered[i] = strings.ToLower(ext)
	}

	return matcher{
		extensions: lowered,
		byLanguage: len(opts.Extensions) == 0 && (opts.Config == nil || len(opts.Config.Extensions) == 0),
		include:    opts.IncludeGlobs,
		exclude:    opts.excludeGlobs(),
	}
}

func (m matcher) matchFile(relPath string) bool {
	if !m.isMarkdown(relPath) {
		return false
	}
	if m.excluded(relPath) {
		return false
	}
	if len(m.include) > 0 && !matchAny(relPath, m.include) {
		return false
	}
	return true
}

func (m matcher) isMarkdown(relPath string) bool {
	if slices.Contains(m.extensions, strings.ToLower(path.Ext(relPath))) {
		return true
	}
	if !m.byLanguage {
		return false
	}
	lang, _ := enry.GetLanguageByExtension(relPath)
	return lang == markdownLanguage
}

func (m matcher) excluded(relPath string) bool {
	return matchAny(relPath, m.exclude)
}

func matchAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash separated path against a glob pattern. A "**"
// segment matches any number of path segments, including none. A pattern
// without a slash also matches against the base name alone, so "*.md"
// and "CHANGELOG.md" apply at any depth.
func matchGlob(relPath, pattern string) bool {
	relPath = filepath.ToSlash(relPath)
	pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")

	if !strings.Contains(pattern, "/") && pattern != "**" {
		if ok, err := path.Match(pattern, path.Base(relPath)); err == nil && ok {
			return true
		}
	}

	return matchSegments(strings.Split(relPath, "/"), strings.Split(pattern, "/"))
}

func matchSegments(segs, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return true
			}
			for i := range len(segs) + 1 {
				if matchSegments(segs[i:], rest) {
					return true
				}
			}
			return false
		}

		if len(segs) == 0 {
			return false
		}
		if ok, err := path.Match(pattern[0], segs[0]); err != nil || !ok {
			return false
		}
		segs, pattern = segs[1:], pattern[1:]
	}

	return len(segs) == 0
}

// ValidateGlob reports whether pattern is a well-formed glob.
func ValidateGlob(pattern string) error {
	for _, seg := range strings.Split(filepath.ToSlash(pattern), "/") {
		if seg == "**" {
			continue
		}
		if _, err := path.Match(seg, ""); err != nil {
			return fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
	}
	return nil
}
