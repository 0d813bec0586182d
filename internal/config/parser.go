package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/ZebulonRouseFrantzich/quilter/internal/platform"
)

// Parser represents a Lua config parser with platform detection.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a new config parser with the given platform detector.
// A nil detector means no platform table is injected.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// DefaultPath returns the conventional config location in projectRoot.
func DefaultPath(projectRoot string) string {
	return filepath.Join(projectRoot, defaultConfigFile)
}

// Load parses the file at path. A missing file yields Default().
func (p *Parser) Load(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return p.ParseString(ctx, string(data))
}

// ParseString parses a Lua config from a string.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()

	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractConfig(L)
}

// ParseError represents a config parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractConfig reads the global "quilter" table. An absent table means
// the file only ran side-effect-free code; defaults apply.
func extractConfig(L *lua.LState) (*Config, error) {
	config := Default()

	root := L.GetGlobal(luaGlobalQuilter)
	switch root.Type() {
	case lua.LTNil:
		return config, nil
	case lua.LTTable:
	default:
		return nil, &ParseError{
			Message: "invalid 'quilter' table",
			Detail:  fmt.Sprintf("expected table, got %s", root.Type()),
		}
	}
	table := root.(*lua.LTable)

	if v := table.RawGetString(luaFieldFetch); v.Type() == lua.LTTable {
		if err := extractFetch(v.(*lua.LTable), &config.Fetch); err != nil {
			return nil, err
		}
	}

	if v := table.RawGetString(luaFieldFFBinary); v.Type() == lua.LTTable {
		if err := extractFFBinaries(v.(*lua.LTable), &config.FFBinaries); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, &ParseError{
			Message: "config validation failed",
			Detail:  err.Error(),
		}
	}

	return config, nil
}

func extractFetch(table *lua.LTable, fetch *FetchConfig) error {
	if err := stringField(table, luaFieldFetch, luaFieldDest, &fetch.Destination); err != nil {
		return err
	}
	return boolField(table, luaFieldFetch, luaFieldHostOnly, &fetch.HostOnly)
}

func extractFFBinaries(table *lua.LTable, ff *FFBinariesConfig) error {
	for field, dst := range map[string]*string{
		luaFieldAPI:     &ff.API,
		luaFieldVersion: &ff.Version,
		luaFieldCache:   &ff.Cache,
	} {
		if err := stringField(table, luaFieldFFBinary, field, dst); err != nil {
			return err
		}
	}
	if err := intField(table, luaFieldFFBinary, luaFieldRetries, &ff.Retries); err != nil {
		return err
	}
	return intField(table, luaFieldFFBinary, luaFieldTimeout, &ff.Timeout)
}

// The field helpers leave dst untouched when the field is nil, and reject
// values of the wrong type.

func stringField(table *lua.LTable, section, field string, dst *string) error {
	v := table.RawGetString(field)
	switch v.Type() {
	case lua.LTNil:
		return nil
	case lua.LTString:
		*dst = v.String()
		return nil
	default:
		return typeError(section, field, "string", v)
	}
}

func boolField(table *lua.LTable, section, field string, dst *bool) error {
	v := table.RawGetString(field)
	switch v.Type() {
	case lua.LTNil:
		return nil
	case lua.LTBool:
		*dst = bool(v.(lua.LBool))
		return nil
	default:
		return typeError(section, field, "boolean", v)
	}
}

func intField(table *lua.LTable, section, field string, dst *int) error {
	v := table.RawGetString(field)
	switch v.Type() {
	case lua.LTNil:
		return nil
	case lua.LTNumber:
		n := float64(lua.LVAsNumber(v))
		if n != float64(int(n)) {
			return &ParseError{
				Message: "invalid config value",
				Detail:  fmt.Sprintf("%s.%s must be an integer, got %v", section, field, n),
			}
		}
		*dst = int(n)
		return nil
	default:
		return typeError(section, field, "number", v)
	}
}

func typeError(section, field, want string, got lua.LValue) error {
	return &ParseError{
		Message: "invalid config value",
		Detail:  fmt.Sprintf("%s.%s must be a %s, got %s", section, field, want, got.Type()),
	}
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw Lua error. Otherwise, show friendly message.
func FormatError(err error, verbose bool) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
