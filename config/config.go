/*
 * config.go, part of godiff.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package config reads and writes the description of a diffusion tensor analysis
//in YAML. Files ending in .zst or .gz are transparently (de)compressed.
package config

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	diffusion "github.com/rmera/godiff"
	"gopkg.in/yaml.v3"
)

//Config describes the set up of one diffusion tensor.
type Config struct {
	Name         string      `yaml:"name"`
	Class        string      `yaml:"class"` //sphere, spheroid or ellipsoid. Empty: from the number of params.
	Params       []float64   `yaml:"params"`
	TimeScale    float64     `yaml:"time_scale"`
	DScale       float64     `yaml:"d_scale"`
	AngleUnits   string      `yaml:"angle_units"`
	ParamTypes   int         `yaml:"param_types"`
	SpheroidType string      `yaml:"spheroid_type"`
	Fixed        *bool       `yaml:"fixed"` //nil means true.
	Set          []Operation `yaml:"set,omitempty"`
	SimNum       int         `yaml:"sim_num,omitempty"`
}

//Operation is a change of parameter values, applied after the tensor is set up.
//Values are in internal units (s, 1/s, radians). A .nan value means the
//default for the parameter.
type Operation struct {
	Names  []string  `yaml:"names"`
	Values []float64 `yaml:"values"`
	Sim    *int      `yaml:"sim,omitempty"` //if given, the change goes to that Monte Carlo replica.
}

//Default returns a configuration with the default values.
func Default() *Config {
	return &Config{TimeScale: 1, DScale: 1, AngleUnits: "deg"}
}

//Error is the error type of the package.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("config file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the error
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//Also, why couldn't *zstd.Decoder implement io.ReadCloser?
type zstdrc struct {
	closefn func()
	*zstd.Decoder
}

func (z zstdrc) Close() error {
	z.closefn()
	return nil
}

//reader returns a reader for the uncompressed content of r, according to
//the extension of name.
func reader(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdrc{d.Close, d}, nil
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(r)
	}
	return io.NopCloser(r), nil
}

func writer(name string, w io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriter(w), nil
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

//Parse reads a configuration from r, which is not compressed.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, Error{err.Error(), "", []string{"Parse"}, true}
	}
	return c, nil
}

//Load reads the configuration in the file name.
func Load(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"Load"}, true}
	}
	defer f.Close()
	r, err := reader(name, f)
	if err != nil {
		return nil, Error{"Can't decompress: " + err.Error(), name, []string{"Load"}, true}
	}
	defer r.Close()
	c, err := Parse(r)
	if err != nil {
		e := err.(Error)
		e.filename = name
		e.deco = e.Decorate("Load")
		return nil, e
	}
	return c, nil
}

//Save writes the configuration to the file name.
func (c *Config) Save(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Config.Save"}, true}
	}
	defer f.Close()
	w, err := writer(name, f)
	if err != nil {
		return Error{err.Error(), name, []string{"Config.Save"}, true}
	}
	enc := yaml.NewEncoder(w)
	if err = enc.Encode(c); err != nil {
		return Error{err.Error(), name, []string{"Config.Save"}, true}
	}
	if err = enc.Close(); err != nil {
		return Error{err.Error(), name, []string{"Config.Save"}, true}
	}
	//The compressed stream is only complete after Close.
	if err = w.Close(); err != nil {
		return Error{err.Error(), name, []string{"Config.Save"}, true}
	}
	return f.Close()
}

//InitOptions translates the configuration into options for diffusion.Context.Init.
func (c *Config) InitOptions() (diffusion.InitOptions, error) {
	o := diffusion.DefaultInitOptions()
	var err error
	if c.Class != "" {
		if o.Class, err = diffusion.ParseClass(c.Class); err != nil {
			return o, err
		}
	}
	if o.SpheroidType, err = diffusion.ParseSpheroidType(c.SpheroidType); err != nil {
		return o, err
	}
	o.Params = append([]float64(nil), c.Params...)
	o.TimeScale = c.TimeScale
	o.DScale = c.DScale
	o.AngleUnits = c.AngleUnits
	o.ParamTypes = c.ParamTypes
	if c.Fixed != nil {
		o.Fixed = *c.Fixed
	}
	return o, nil
}

//Apply sets up the tensor of C following the configuration: Init, then the
//replicas, if requested, then every operation, in order.
func (c *Config) Apply(C *diffusion.Context) error {
	o, err := c.InitOptions()
	if err != nil {
		return err
	}
	if err = C.Init(o); err != nil {
		return err
	}
	if c.SimNum > 0 {
		if err = C.SetSimNum(c.SimNum); err != nil {
			return err
		}
	}
	for i, op := range c.Set {
		if op.Sim != nil {
			err = C.SetSim(*op.Sim, op.Values, op.Names)
		} else {
			err = C.Set(op.Values, op.Names)
		}
		if err != nil {
			if C.Log != nil {
				C.Log.Printf("The set operation %d failed", i)
			}
			return err
		}
	}
	return nil
}
