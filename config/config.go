// Package config loads compiler and machine settings from a file.
//
// Two formats are accepted. A .toml file has a [compiler] and a [machine]
// table whose keys match the struct tags of compiler.Config and vm.Config.
// A .star file is a Starlark script that assigns any of the globals
// capacity, nesting, cells, cell_bits, eof and pointer; the DEFAULT_*
// constants of both packages are predeclared.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bf/compiler"
	"github.com/ezrec/bf/internal"
	"github.com/ezrec/bf/translate"
	"github.com/ezrec/bf/vm"
)

var f = translate.From

// Config is the complete configuration of a run.
type Config struct {
	Compiler compiler.Config `toml:"compiler"`
	Machine  vm.Config       `toml:"machine"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Compiler: compiler.DefaultConfig(),
		Machine:  vm.DefaultConfig(),
	}
}

// Normalize fills defaults and checks both halves of the configuration.
func (cfg Config) Normalize() (out Config, err error) {
	out.Compiler, err = cfg.Compiler.Normalize()
	if err != nil {
		return
	}

	out.Machine, err = cfg.Machine.Normalize()
	return
}

// Load reads a configuration file, choosing the format by extension.
func Load(path string) (cfg Config, err error) {
	switch filepath.Ext(path) {
	case ".toml":
		cfg, err = LoadTOML(path)
	case ".star":
		cfg, err = LoadStarlark(path)
	default:
		err = &ErrConfig{Path: path, Err: ErrFormat}
		return
	}
	if err != nil {
		return
	}

	cfg, err = cfg.Normalize()
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
	}

	return
}

// LoadTOML decodes a TOML configuration file.
func LoadTOML(path string) (cfg Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return DecodeTOML(path, data)
}

// DecodeTOML decodes TOML configuration text. Unknown keys are an error.
func DecodeTOML(path string, data []byte) (cfg Config, err error) {
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		err = &ErrConfig{Path: path, Err: ErrKeyUnknown(undecoded[0].String())}
		return
	}

	return
}

// Predeclared returns the constants visible to configuration scripts.
func Predeclared() starlark.StringDict {
	pred := starlark.StringDict{}
	for key, str := range internal.IterSeq2Concat(compiler.Defines(), vm.Defines()) {
		value, err := strconv.Atoi(str)
		if err != nil {
			// Only integer defines are exposed.
			continue
		}
		pred[key] = starlark.MakeInt(value)
	}

	return pred
}

// LoadStarlark executes a Starlark configuration script.
func LoadStarlark(path string) (cfg Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return DecodeStarlark(path, data)
}

// DecodeStarlark executes Starlark configuration text.
func DecodeStarlark(path string, data []byte) (cfg Config, err error) {
	thread := starlark.Thread{Name: path}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, path, data, Predeclared())
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	ints := map[string]*int{
		"capacity":  &cfg.Compiler.Capacity,
		"nesting":   &cfg.Compiler.Nesting,
		"cells":     &cfg.Machine.Cells,
		"cell_bits": &cfg.Machine.CellBits,
	}

	texts := map[string]interface{ UnmarshalText([]byte) error }{
		"eof":     &cfg.Machine.EOF,
		"pointer": &cfg.Machine.Pointer,
	}

	for name, value := range globals {
		if target, ok := ints[name]; ok {
			var st_int starlark.Int
			st_int, ok = value.(starlark.Int)
			if !ok {
				err = &ErrConfig{Path: path, Err: ErrValue{Name: name, Value: value.String()}}
				return
			}
			var v64 int64
			v64, ok = st_int.Int64()
			if !ok || int64(int(v64)) != v64 {
				err = &ErrConfig{Path: path, Err: ErrValue{Name: name, Value: value.String()}}
				return
			}
			*target = int(v64)
			continue
		}

		if target, ok := texts[name]; ok {
			str, ok := starlark.AsString(value)
			if !ok {
				err = &ErrConfig{Path: path, Err: ErrValue{Name: name, Value: value.String()}}
				return
			}
			err = target.UnmarshalText([]byte(str))
			if err != nil {
				err = &ErrConfig{Path: path, Err: err}
				return
			}
			continue
		}

		// Private helpers in the script are permitted.
		if len(name) > 0 && name[0] == '_' {
			continue
		}

		err = &ErrConfig{Path: path, Err: ErrKeyUnknown(name)}
		return
	}

	return
}
