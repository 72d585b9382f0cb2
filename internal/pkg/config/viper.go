package config

import (
	"bytes"
	"errors"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ErrConfigTypeRequired is returned by NewViperFromBytes without a config type.
var ErrConfigTypeRequired = errors.New("config type is required")

// Viper is a Config implementation backed by github.com/spf13/viper.
//
// Reads share a lock with the reload done in the change callback.
type Viper struct {
	mu        sync.RWMutex
	v         *viper.Viper
	callbacks []func()
}

// NewViper loads configuration from the given file path, watches the file and
// returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()

	filename := path.Base(pathFile)
	configName := strings.TrimSuffix(filename, path.Ext(filename))

	v.AddConfigPath(path.Dir(pathFile))
	v.SetConfigName(configName)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	vc := &Viper{v: v}

	v.OnConfigChange(func(_ fsnotify.Event) {
		vc.mu.Lock()
		err := v.ReadInConfig()
		callbacks := append([]func(){}, vc.callbacks...)
		vc.mu.Unlock()

		if err != nil {
			slog.Error("config reload failed", "path", pathFile, "error", err)
			return
		}
		slog.Info("config success reloaded", "path", pathFile)

		for _, fn := range callbacks {
			fn()
		}
	})
	v.WatchConfig()

	return vc, nil
}

// NewViperFromBytes loads configuration from memory and returns a Viper-backed Config.
// configType should be a format supported by Viper (e.g. "yaml", "json", "toml").
func NewViperFromBytes(configType string, data []byte) (*Viper, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, ErrConfigTypeRequired
	}

	v := viper.New()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

// Set overrides a value in memory and notifies the OnChange callbacks.
func (vc *Viper) Set(key string, value any) {
	vc.mu.Lock()
	vc.v.Set(key, value)
	callbacks := append([]func(){}, vc.callbacks...)
	vc.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// OnChange registers fn to run after every reload.
func (vc *Viper) OnChange(fn func()) {
	if fn == nil {
		return
	}

	vc.mu.Lock()
	vc.callbacks = append(vc.callbacks, fn)
	vc.mu.Unlock()
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.v.GetBool(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.v.GetString(key)
}

// GetInt returns the value for key as int.
func (vc *Viper) GetInt(key string) int {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.v.GetInt(key)
}

// GetFloat64 returns the value for key as float64.
func (vc *Viper) GetFloat64(key string) float64 {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.v.GetFloat64(key)
}

// GetSecond returns the value for key as seconds.
func (vc *Viper) GetSecond(key string) time.Duration {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return time.Duration(vc.v.GetInt64(key)) * time.Second
}

// GetArray returns the value for key as a list, splitting strings by commas.
func (vc *Viper) GetArray(key string) []string {
	vc.mu.RLock()
	raw := vc.v.Get(key)
	vc.mu.RUnlock()

	var items []string
	switch val := raw.(type) {
	case nil:
		return nil
	case string:
		items = strings.Split(val, ",")
	default:
		items = cast.ToStringSlice(val)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	return nil
}
