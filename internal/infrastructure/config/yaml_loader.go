package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cfgpkg "github.com/alexisbeaulieu97/themevars/internal/config"
	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
	"github.com/alexisbeaulieu97/themevars/internal/ports"
	apperrors "github.com/alexisbeaulieu97/themevars/pkg/errors"
)

// ComponentsFileName is the base name (without extension) of the component
// defaults document inside a themes directory.
const ComponentsFileName = "components"

var themeExtensions = map[string]bool{".yaml": true, ".yml": true, ".json": true}

// YAMLLoader implements the ThemeLoader port by reading YAML and JSON files from disk.
type YAMLLoader struct {
	logger ports.Logger
}

func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger}
}

// Load reads every theme file in dir, plus the optional components file, and
// builds the registry. dir may also name a single theme file.
func (l *YAMLLoader) Load(ctx context.Context, dir string) (*ports.ThemeSet, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	themeFiles, componentsFile, err := l.discover(ctx, dir)
	if err != nil {
		return nil, err
	}

	var docs []cfgpkg.ThemeDoc
	for _, path := range themeFiles {
		if err := contextCheck(ctx); err != nil {
			return nil, err
		}

		l.logDebug(ctx, "parsing theme file", map[string]interface{}{"path": path})
		file, err := cfgpkg.ParseThemeFile(path)
		if err != nil {
			l.logError(ctx, "failed to parse theme file", err, map[string]interface{}{"path": path})
			return nil, convertError(err, path)
		}
		docs = append(docs, file.Themes...)
	}

	var defaults theme.ComponentDefaults
	if componentsFile != "" {
		l.logDebug(ctx, "parsing components file", map[string]interface{}{"path": componentsFile})
		file, err := cfgpkg.ParseComponentsFile(componentsFile)
		if err != nil {
			l.logError(ctx, "failed to parse components file", err, map[string]interface{}{"path": componentsFile})
			return nil, convertError(err, componentsFile)
		}
		defaults = file.Defaults()
	}

	if err := cfgpkg.ValidateThemeSet(docs); err != nil {
		l.logError(ctx, "theme set failed validation", err, map[string]interface{}{"path": dir})
		return nil, convertError(err, dir)
	}

	defs := make([]theme.Definition, len(docs))
	for i, doc := range docs {
		defs[i] = doc.Definition()
	}
	registry, err := theme.NewRegistry(defs...)
	if err != nil {
		return nil, err
	}

	files := append([]string(nil), themeFiles...)
	if componentsFile != "" {
		files = append(files, componentsFile)
	}

	l.logInfo(ctx, "themes loaded", map[string]interface{}{
		"path":       dir,
		"themes":     registry.Len(),
		"components": len(defaults),
		"files":      len(files),
	})
	return &ports.ThemeSet{Registry: registry, Defaults: defaults, Files: files}, nil
}

var _ ports.ThemeLoader = (*YAMLLoader)(nil)

// discover lists theme files in lexical order and picks out the components file.
func (l *YAMLLoader) discover(ctx context.Context, dir string) ([]string, string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		l.logError(ctx, "themes path stat failed", err, map[string]interface{}{"path": dir})
		return nil, "", convertError(err, dir)
	}
	if !info.IsDir() {
		if !themeExtensions[strings.ToLower(filepath.Ext(dir))] {
			return nil, "", domainError(theme.ErrCodeValidation, "unsupported theme file extension", nil, map[string]interface{}{"path": dir, "extension": filepath.Ext(dir)})
		}
		return []string{dir}, "", nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", convertError(err, dir)
	}

	var themeFiles []string
	componentsFile := ""
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !themeExtensions[ext] {
			continue
		}
		path := filepath.Join(dir, name)
		if strings.TrimSuffix(name, filepath.Ext(name)) == ComponentsFileName {
			if componentsFile != "" {
				return nil, "", domainError(theme.ErrCodeDuplicate, "more than one components file", nil, map[string]interface{}{"path": dir, "files": []string{componentsFile, path}})
			}
			componentsFile = path
			continue
		}
		themeFiles = append(themeFiles, path)
	}
	sort.Strings(themeFiles)

	if len(themeFiles) == 0 {
		return nil, "", domainError(theme.ErrCodeNotFound, "no theme files found", nil, map[string]interface{}{"path": dir})
	}
	return themeFiles, componentsFile, nil
}

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, os.ErrNotExist) {
			return domainError(theme.ErrCodeNotFound, "theme file not found", parseErr.Err, map[string]interface{}{"path": path})
		}
		return domainError(theme.ErrCodeValidation, "invalid theme syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		context := map[string]interface{}{"path": path}
		if valErr.Field != "" {
			context["field"] = valErr.Field
		}
		code := theme.ErrCodeValidation
		msg := strings.ToLower(valErr.Message)
		switch {
		case strings.Contains(msg, "duplicate"):
			code = theme.ErrCodeDuplicate
		case strings.Contains(msg, "cycle"):
			code = theme.ErrCodeCycle
		}
		return domainError(code, valErr.Message, valErr.Err, context)
	}
	if os.IsNotExist(err) {
		return domainError(theme.ErrCodeNotFound, "themes path not found", err, map[string]interface{}{"path": path})
	}
	return domainError(theme.ErrCodeInternal, "theme load failed", err, map[string]interface{}{"path": path})
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return domainError(theme.ErrCodeCancelled, "operation cancelled", err, nil)
	}
	return nil
}

func domainError(code theme.ErrorCode, message string, cause error, ctx map[string]interface{}) *theme.DomainError {
	return &theme.DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: ctx,
	}
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
