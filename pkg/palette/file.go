package palette

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/arthur-debert/richconsole/pkg/style"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileColor is one colour of a palette file. Exactly one of Code, Index, RGB
// or Hex must be set.
type fileColor struct {
	Name  string `yaml:"name" toml:"name"`
	Code  *int   `yaml:"code" toml:"code"`
	Index *int   `yaml:"index" toml:"index"`
	RGB   []int  `yaml:"rgb" toml:"rgb"`
	Hex   string `yaml:"hex" toml:"hex"`
}

type paletteFile struct {
	Colors []fileColor `yaml:"colors" toml:"colors"`
}

type fileSource struct {
	path string
}

// File returns a source reading colours from a YAML or TOML file, chosen by
// extension:
//
//	colors:
//	  - name: brand_orange
//	    hex: "#ff8800"
//	  - name: accent
//	    index: 208
//	  - name: warn
//	    code: 33
//	  - name: sky
//	    rgb: [135, 206, 235]
//
// Names are converted to camelCase. A missing file is reported as
// SOURCE_UNAVAILABLE.
func File(path string) Source {
	return fileSource{path: path}
}

func (f fileSource) Name() string { return "file:" + f.path }

func (f fileSource) Entries() ([]style.Style, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrSourceUnavailable, "palette file %s not found", f.path).
				WithDetail("path", f.path)
		}
		return nil, errors.Wrapf(err, errors.ErrSourceInvalid, "failed to read palette file %s", f.path).
			WithDetail("path", f.path)
	}

	var pf paletteFile
	switch ext := strings.ToLower(filepath.Ext(f.path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &pf)
	case ".toml":
		err = toml.Unmarshal(data, &pf)
	default:
		return nil, errors.Newf(errors.ErrSourceInvalid, "unsupported palette file format %q", ext).
			WithDetail("path", f.path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceInvalid, "failed to parse palette file %s", f.path).
			WithDetail("path", f.path)
	}

	entries := make([]style.Style, 0, len(pf.Colors))
	for i, fc := range pf.Colors {
		c, err := fc.style()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSourceInvalid, "invalid colour #%d in %s", i+1, f.path).
				WithDetail("path", f.path).
				WithDetail("entry", i+1)
		}
		entries = append(entries, c)
	}
	return entries, nil
}

func (fc fileColor) style() (style.Style, error) {
	if fc.Name == "" {
		return style.Style{}, errors.New(errors.ErrSourceInvalid, "colour has no name")
	}
	name := CamelCase(fc.Name)

	set := 0
	for _, ok := range []bool{fc.Code != nil, fc.Index != nil, fc.RGB != nil, fc.Hex != ""} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return style.Style{}, errors.Newf(errors.ErrSourceInvalid,
			"colour %s must set exactly one of code, index, rgb or hex", fc.Name)
	}

	switch {
	case fc.Code != nil:
		code := *fc.Code
		if !isBasicCode(code) {
			return style.Style{}, errors.Newf(errors.ErrSourceInvalid, "colour %s: %d is not a basic colour code", fc.Name, code)
		}
		return style.ParseBasicColor(name, code), nil
	case fc.Index != nil:
		if *fc.Index < 0 || *fc.Index > 255 {
			return style.Style{}, errors.Newf(errors.ErrSourceInvalid, "colour %s: index %d out of range", fc.Name, *fc.Index)
		}
		return style.NewIndexedColor(name, uint8(*fc.Index), false), nil
	case fc.RGB != nil:
		if len(fc.RGB) != 3 {
			return style.Style{}, errors.Newf(errors.ErrSourceInvalid, "colour %s: rgb needs 3 components", fc.Name)
		}
		var rgb [3]uint8
		for i, v := range fc.RGB {
			if v < 0 || v > 255 {
				return style.Style{}, errors.Newf(errors.ErrSourceInvalid, "colour %s: rgb component %d out of range", fc.Name, v)
			}
			rgb[i] = uint8(v)
		}
		return style.NewRGBColor(name, rgb[0], rgb[1], rgb[2], false), nil
	default:
		c, err := colorful.Hex(fc.Hex)
		if err != nil {
			return style.Style{}, errors.Wrapf(err, errors.ErrSourceInvalid, "colour %s: bad hex %q", fc.Name, fc.Hex)
		}
		r, g, b := c.RGB255()
		return style.NewRGBColor(name, r, g, b, false), nil
	}
}

// isBasicCode accepts 30-37, 40-47, 90-97 and 100-107.
func isBasicCode(code int) bool {
	switch {
	case code >= 30 && code <= 37, code >= 40 && code <= 47:
		return true
	case code >= 90 && code <= 97, code >= 100 && code <= 107:
		return true
	}
	return false
}
