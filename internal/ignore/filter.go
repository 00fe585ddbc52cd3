// Package ignore decides which directory entries are left out of a rendered tree.
package ignore

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar"

	"github.com/temirov/structree/internal/utils"
)

const (
	globMetacharacters = "*?["

	errorCompilePatternFormat = "compiling ignore pattern %q: %w"
	errorInvalidGlobFormat    = "invalid ignore glob %q: %w"
)

// Filter holds an immutable set of ignore rules. The zero value ignores nothing.
//
// A rule is one of:
//   - an exact, case-sensitive entry name;
//   - a regular expression matched against the entry name;
//   - a glob (filepath.Match syntax) matched against the entry name;
//   - a nested path such as "android/app/build" or "**/fixtures", matched with
//     doublestar against the path relative to the rendered root.
//
// A name, glob, or nested path written with a trailing slash only applies to
// directories.
type Filter struct {
	patterns    []*regexp.Regexp
	entries     ruleSet
	directories ruleSet
}

// ruleSet groups the literal, glob, and nested path rules of one scope.
type ruleSet struct {
	names       map[string]struct{}
	globs       []string
	nestedPaths []string
}

// NewFilter classifies names into exact, glob, and nested path rules and
// compiles the regular expressions in order.
func NewFilter(names []string, patterns []string) (*Filter, error) {
	filter := &Filter{}
	for _, name := range names {
		if err := filter.addName(name); err != nil {
			return nil, err
		}
	}
	for _, pattern := range patterns {
		compiledPattern, compileError := regexp.Compile(pattern)
		if compileError != nil {
			return nil, fmt.Errorf(errorCompilePatternFormat, pattern, compileError)
		}
		filter.patterns = append(filter.patterns, compiledPattern)
	}
	return filter, nil
}

// Default returns a Filter built from the built-in rule set.
func Default() *Filter {
	filter, err := NewFilter(defaultIgnoredNames, defaultIgnoredPatterns)
	if err != nil {
		panic(err)
	}
	return filter
}

// DefaultNames returns a copy of the built-in ignored entry names.
func DefaultNames() []string {
	return append([]string(nil), defaultIgnoredNames...)
}

// WithExclusions returns a copy of the filter extended with user supplied
// exclusions. Exclusions use the same classification as built-in names; a
// trailing slash restricts the exclusion to directories.
func (filter *Filter) WithExclusions(exclusions ...string) (*Filter, error) {
	extended := filter.clone()
	for _, exclusion := range utils.DeduplicatePatterns(exclusions) {
		if err := extended.addName(exclusion); err != nil {
			return nil, err
		}
	}
	return extended, nil
}

// ShouldIgnore reports whether an entry name is excluded by an exact name,
// a regular expression, or a glob rule. Directory-only rules are not consulted.
func (filter *Filter) ShouldIgnore(name string) bool {
	if filter == nil {
		return false
	}
	if filter.entries.matchName(name) {
		return true
	}
	for _, pattern := range filter.patterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// ShouldIgnorePath reports whether a path relative to the rendered root is
// excluded whatever its type. The last segment goes through ShouldIgnore;
// nested path rules are compared against the whole path.
func (filter *Filter) ShouldIgnorePath(relativePath string) bool {
	if filter == nil {
		return false
	}
	pathSegments := utils.SplitPathSegments(relativePath)
	if len(pathSegments) == 0 {
		return false
	}
	if filter.ShouldIgnore(pathSegments[len(pathSegments)-1]) {
		return true
	}
	return filter.entries.matchNestedPath(pathSegments)
}

// ShouldIgnoreEntry is ShouldIgnorePath plus the directory-only rules when
// isDirectory is true.
func (filter *Filter) ShouldIgnoreEntry(relativePath string, isDirectory bool) bool {
	if filter.ShouldIgnorePath(relativePath) {
		return true
	}
	if filter == nil || !isDirectory {
		return false
	}
	pathSegments := utils.SplitPathSegments(relativePath)
	if len(pathSegments) == 0 {
		return false
	}
	return filter.directories.matchName(pathSegments[len(pathSegments)-1]) || filter.directories.matchNestedPath(pathSegments)
}

func (filter *Filter) addName(name string) error {
	trimmedName := strings.TrimSpace(name)
	target := &filter.entries
	if strings.HasSuffix(trimmedName, utils.PathSegmentSeparator) {
		target = &filter.directories
		trimmedName = strings.TrimRight(trimmedName, utils.PathSegmentSeparator)
	}
	if trimmedName == "" {
		return nil
	}
	return target.add(trimmedName)
}

func (filter *Filter) clone() *Filter {
	if filter == nil {
		return &Filter{}
	}
	return &Filter{
		patterns:    append([]*regexp.Regexp(nil), filter.patterns...),
		entries:     filter.entries.clone(),
		directories: filter.directories.clone(),
	}
}

func (rules *ruleSet) add(name string) error {
	switch {
	case strings.Contains(name, utils.PathSegmentSeparator):
		nestedSegments := utils.SplitPathSegments(name)
		for _, segment := range nestedSegments {
			if _, matchError := filepath.Match(segment, ""); matchError != nil {
				return fmt.Errorf(errorInvalidGlobFormat, name, matchError)
			}
		}
		rules.nestedPaths = append(rules.nestedPaths, strings.Join(nestedSegments, utils.PathSegmentSeparator))
	case strings.ContainsAny(name, globMetacharacters):
		if _, matchError := filepath.Match(name, ""); matchError != nil {
			return fmt.Errorf(errorInvalidGlobFormat, name, matchError)
		}
		rules.globs = append(rules.globs, name)
	default:
		if rules.names == nil {
			rules.names = map[string]struct{}{}
		}
		rules.names[name] = struct{}{}
	}
	return nil
}

func (rules ruleSet) matchName(name string) bool {
	if _, listed := rules.names[name]; listed {
		return true
	}
	for _, glob := range rules.globs {
		if isMatched, _ := filepath.Match(glob, name); isMatched {
			return true
		}
	}
	return false
}

func (rules ruleSet) matchNestedPath(pathSegments []string) bool {
	if len(rules.nestedPaths) == 0 {
		return false
	}
	normalizedPath := strings.Join(pathSegments, utils.PathSegmentSeparator)
	for _, nestedPath := range rules.nestedPaths {
		if isMatched, _ := doublestar.Match(nestedPath, normalizedPath); isMatched {
			return true
		}
	}
	return false
}

func (rules ruleSet) clone() ruleSet {
	cloned := ruleSet{
		globs:       append([]string(nil), rules.globs...),
		nestedPaths: append([]string(nil), rules.nestedPaths...),
	}
	if len(rules.names) > 0 {
		cloned.names = make(map[string]struct{}, len(rules.names))
		for name := range rules.names {
			cloned.names[name] = struct{}{}
		}
	}
	return cloned
}
