// Package league reads and writes league settings snapshots: a flat map of
// every setting plus the contextual keys the form needs.
package league

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/leaguekit/leaguesettings/internal/bioinfo"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/rows"
	"github.com/leaguekit/leaguesettings/internal/settings"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

// Format is a snapshot encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	osCreateTemp = os.CreateTemp
	osRename     = os.Rename
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf(messages.LeagueUnknownFormatFmt, filepath.Ext(path))
}

// Load reads the snapshot at path.
func Load(path string) (settings.Values, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.LeagueReadFmt, path, err)
	}
	v, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf(messages.LeagueDecodeFmt, path, err)
	}
	return v, nil
}

// Decode parses a snapshot and converts the structured keys to their typed
// forms. Nullable settings missing from the data are set to nil, since TOML
// cannot hold a null.
func Decode(data []byte, format Format) (settings.Values, error) {
	raw := make(map[string]any)
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf(messages.LeagueUnknownFormatFmt, format)
	}
	if err != nil {
		return nil, err
	}
	values := settings.Values(raw)
	if err := decodeSpecial(values); err != nil {
		return nil, err
	}
	for _, d := range settings.Catalog() {
		if d.Kind != settings.KindFloatOrNull && d.Kind != settings.KindIntOrNull {
			continue
		}
		if _, ok := values[d.Key]; !ok {
			values[d.Key] = nil
		}
	}
	return values, nil
}

func decodeSpecial(values settings.Values) error {
	for _, key := range settings.SpecialKeys {
		raw, ok := values[key]
		if !ok || raw == nil {
			continue
		}
		b, err := json.Marshal(normalize(raw))
		if err != nil {
			return fmt.Errorf(messages.LeagueSpecialDecodeFmt, key, err)
		}
		typed, err := decodeTyped(key, b)
		if err != nil {
			return fmt.Errorf(messages.LeagueSpecialDecodeFmt, key, err)
		}
		values[key] = typed
	}
	return nil
}

func decodeTyped(key string, b []byte) (any, error) {
	switch key {
	case settings.KeyInjuries:
		var v []rows.Injury
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		return v, nil
	case settings.KeyTragicDeaths:
		var v []rows.TragicDeath
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	v := &bioinfo.PlayerBioInfo{}
	if err := json.Unmarshal(b, v); err != nil {
		return nil, err
	}
	return v, nil
}

// normalize turns yaml's map[any]any into map[string]any so it can be
// re-encoded as JSON.
func normalize(v any) any {
	switch x := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	}
	return v
}

// Encode renders values in format. Nil values, including nil pointers and
// slices, are left out of TOML.
func Encode(values settings.Values, format Format) ([]byte, error) {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if format == FormatTOML && isNil(v) {
			continue
		}
		out[k] = v
	}
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(out); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(out)
	}
	return nil, fmt.Errorf(messages.LeagueUnknownFormatFmt, format)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}

// Save writes values to path atomically, in the format of its extension.
func Save(path string, values settings.Values) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(values, format)
	if err != nil {
		return fmt.Errorf(messages.LeagueEncodeFmt, path, err)
	}
	tmp, err := osCreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.LeagueWriteFmt, path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.LeagueWriteFmt, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.LeagueWriteFmt, path, err)
	}
	if err := osRename(tmpName, path); err != nil {
		return fmt.Errorf(messages.LeagueWriteFmt, path, err)
	}
	committed = true
	return nil
}

// VisibilityFor reads the contextual flags of a snapshot.
func VisibilityFor(values settings.Values, newLeague bool) settings.Visibility {
	hasPlayers, _ := values[settings.KeyHasPlayers].(bool)
	realPlayers, _ := values[settings.KeyRealPlayers].(bool)
	return settings.Visibility{NewLeague: newLeague, HasPlayers: hasPlayers, RealPlayers: realPlayers}
}

// FillDefaults sets every missing setting to its catalog default and every
// unset structured table to the worker's built-in one.
func FillDefaults(ctx context.Context, values settings.Values, w worker.Worker) error {
	for k, v := range settings.DefaultValues() {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}
	if injuries, _ := values[settings.KeyInjuries].([]rows.Injury); len(injuries) == 0 {
		d, err := w.DefaultInjuries(ctx)
		if err != nil {
			return err
		}
		values[settings.KeyInjuries] = d
	}
	if deaths, _ := values[settings.KeyTragicDeaths].([]rows.TragicDeath); len(deaths) == 0 {
		d, err := w.DefaultTragicDeaths(ctx)
		if err != nil {
			return err
		}
		values[settings.KeyTragicDeaths] = d
	}
	if _, ok := values[settings.KeyPlayerBioInfo].(*bioinfo.PlayerBioInfo); !ok {
		values[settings.KeyPlayerBioInfo] = &bioinfo.PlayerBioInfo{}
	}
	return nil
}

// MissingKeys lists the catalog keys values lacks.
func MissingKeys(values settings.Values) []string {
	var missing []string
	for _, k := range settings.Keys(settings.Catalog()) {
		if _, ok := values[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Validate runs the full submit pipeline over a snapshot without saving:
// defaults are filled in, the catalog is resolved for vis, and every setting
// is parsed and validated.
func Validate(ctx context.Context, values settings.Values, vis settings.Visibility, w worker.Worker) (settings.Values, error) {
	if err := FillDefaults(ctx, values, w); err != nil {
		return nil, err
	}
	form, err := settings.NewForm(settings.FormOptions{
		Schema:     settings.Catalog(),
		Snapshot:   values,
		Visibility: vis,
		Worker:     w,
	})
	if err != nil {
		return nil, err
	}
	return form.Validate(ctx)
}
