/*
 *  Copyright 2020 KardiaChain
 *  This file is part of the go-kardia library.
 *
 *  The go-kardia library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The go-kardia library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 *  GNU Lesser General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with the go-kardia library. If not, see <http://www.gnu.org/licenses/>.
 */

package configs

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LoadConfig reads the file at path over the defaults. Files ending in
// .toml are decoded as TOML, anything else as YAML.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "cannot read config")
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = tomlSettings.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		// Add file name to errors that have a line number.
		if _, ok := err.(*toml.LineError); ok {
			err = errors.New(path + ", " + err.Error())
		}
		if err != nil {
			return cfg, errors.Wrap(err, "cannot unmarshal toml config")
		}
	} else if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "cannot unmarshal yaml config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DumpTOML writes c to w in the format accepted by LoadConfig.
func (c *Config) DumpTOML(w io.Writer) error {
	out, err := tomlSettings.Marshal(c)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
