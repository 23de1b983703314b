package gologger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-docpack/internal/logging"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// Config holds the logging options the CLI exposes. Format selects the
// go-logger output type; Focus limits output to the named child loggers.
type Config struct {
	Level  string
	Format string
	Focus  []string
}

var levelNames = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// Provider hands out module-scoped child loggers backed by go-logger.
type Provider struct {
	root *glog.BaseLogger
}

var _ interfaces.LoggerProvider = (*Provider)(nil)

// NewProvider constructs the provider from CLI configuration. An empty level
// keeps go-logger's default; an unknown level or format is a config error.
func NewProvider(cfg Config) (*Provider, error) {
	options := []glog.Option{}

	if name := strings.ToLower(strings.TrimSpace(cfg.Level)); name != "" {
		level, ok := levelNames[name]
		if !ok {
			return nil, fmt.Errorf("logging: unknown level %q", cfg.Level)
		}
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	root := glog.NewLogger(options...)

	var focus []string
	for _, name := range cfg.Focus {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			focus = append(focus, trimmed)
		}
	}
	if len(focus) > 0 {
		root.Focus(focus...)
	}

	return &Provider{root: root}, nil
}

// GetLogger satisfies interfaces.LoggerProvider.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return &adapter{inner: p.root}
	}
	return &adapter{inner: p.root.GetLogger(name)}
}

// adapter carries accumulated structured fields as a sorted key/value slice
// and appends them to every emit, so WithFields works uniformly regardless
// of which go-logger variant sits underneath.
type adapter struct {
	inner glog.Logger
	kv    []any
}

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, l.merge(args)...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, l.merge(args)...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, l.merge(args)...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, l.merge(args)...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, l.merge(args)...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, l.merge(args)...) }

func (l *adapter) merge(args []any) []any {
	if len(l.kv) == 0 {
		return args
	}
	merged := make([]any, 0, len(l.kv)+len(args))
	merged = append(merged, l.kv...)
	return append(merged, args...)
}

func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}

	// Sorted so identical field sets always render identically.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]any, 0, len(l.kv)+len(keys)*2)
	kv = append(kv, l.kv...)
	for _, k := range keys {
		kv = append(kv, k, fields[k])
	}
	return &adapter{inner: l.inner, kv: kv}
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return &adapter{inner: l.inner.WithContext(ctx), kv: l.kv}
}
