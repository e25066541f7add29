package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds settings read from the environment and an optional .env file
type Config struct {
	Scale           float64 `env:"BODYSIZE_SCALE,0"`
	LogLevel        string  `env:"BODYSIZE_LOG_LEVEL,info"`
	LogFile         string  `env:"BODYSIZE_LOG_FILE,"`
	WatchDebounceMS int     `env:"BODYSIZE_WATCH_DEBOUNCE_MS,200"`
}

// Load reads the given .env files (missing files are ignored) and decodes
// the environment into a Config. Variables already set in the environment
// win over .env values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode fills a struct pointer from `env:"KEY,default"` tags.
// A tag without a default marks a required variable.
func Decode(target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: expected a pointer to a struct, got %T", target)
	}
	return decodeStruct(v.Elem())
}

func decodeStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := decodeStruct(field); err != nil {
				return err
			}
			continue
		}

		tag := fieldType.Tag.Get("env")
		if tag == "" {
			continue
		}

		key, defaultVal, hasDefault := parseTag(tag)

		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			if !hasDefault {
				return fmt.Errorf("missing required env variable %q (for field %q)", key, fieldType.Name)
			}
			raw = defaultVal
		}

		if err := setField(field, fieldType.Name, raw); err != nil {
			return err
		}
	}
	return nil
}

// parseTag splits "KEY,default" into its parts
func parseTag(tag string) (string, string, bool) {
	parts := strings.SplitN(tag, ",", 2)
	key := strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		return key, strings.TrimSpace(parts[1]), true
	}
	return key, "", false
}

func setField(field reflect.Value, name, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if raw == "" {
			raw = "0"
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("field %q: cannot parse %q as int: %w", name, raw, err)
		}
		field.SetInt(n)

	case reflect.Bool:
		if raw == "" {
			raw = "false"
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("field %q: cannot parse %q as bool: %w", name, raw, err)
		}
		field.SetBool(b)

	case reflect.Float32, reflect.Float64:
		if raw == "" {
			raw = "0"
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("field %q: cannot parse %q as float: %w", name, raw, err)
		}
		field.SetFloat(f)

	default:
		return fmt.Errorf("field %q: unsupported type %s", name, field.Kind())
	}
	return nil
}
