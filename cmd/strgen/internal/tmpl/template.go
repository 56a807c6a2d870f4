package tmpl

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/saylorsolutions/strobf/pkg/obf"
)

var (
	//go:embed strings_embed.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("template").Parse(tmplText))
)

// GenDef is one rendered definition in the generated file.
type GenDef struct {
	Kind       string
	VarName    string
	MethodName string
	Key        string
	Data       string
	GoType     string
	Value      string
}

type Params struct {
	Package   string
	Source    string
	Exposed   bool
	NeedsObf  bool
	Defs      []GenDef
	TableFile string
	TableFunc string
	TableKey  string

	seed           obf.Seed
	seedSet        bool
	emitTable      bool
	defs           []definition
	targetFileName string
}

// ParamOpt operates on Params in a standard and predictable way, and is used in GenerateFile.
// If any ParamOpt returns an error, then file generation ceases and the error is returned.
type ParamOpt = func(params *Params) error

// ExposeFunctions indicates that generated functions should be exposed.
func ExposeFunctions(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.Exposed = val[0]
			return nil
		}
		params.Exposed = true
		return nil
	}
}

// UseSeed sets the generation seed from the given phrase instead of consulting the STROBF_SEED environment variable.
func UseSeed(phrase string) ParamOpt {
	return func(params *Params) error {
		params.seed = obf.NewSeed(phrase)
		params.seedSet = true
		return nil
	}
}

// EmitTable indicates that a screened string table artifact should be written next to the generated file, with a loader function embedded in it.
func EmitTable(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.emitTable = val[0]
			return nil
		}
		params.emitTable = true
		return nil
	}
}

// PackageName specifies the package name of the generated file.
// This is useful for cases where the expected package name doesn't match the name of the containing directory.
func PackageName(name string) ParamOpt {
	name = strings.TrimSpace(name)
	return func(params *Params) error {
		if len(name) == 0 {
			return nil
		}
		params.Package = name
		return nil
	}
}

// GenerateFile will generate a Go file embedding the obfuscated form of every definition in the input file.
// Keys are derived from the seed and each definition's source location, so repeated runs with the same seed produce identical output.
// Various generation options may be passed as zero or more ParamOpt.
func GenerateFile(input string, opts ...ParamOpt) error {
	params := new(Params)
	if err := populateContextData(params); err != nil {
		return err
	}
	if err := populateDefs(params, input); err != nil {
		return err
	}

	for _, opt := range opts {
		if err := opt(params); err != nil {
			return err
		}
	}

	if !params.seedSet {
		params.seed = obf.SeedFromEnv()
	}
	if err := renderDefs(params); err != nil {
		return err
	}
	if params.emitTable {
		if err := writeTable(params); err != nil {
			return err
		}
	}

	out, err := os.Create(params.targetFileName + ".go")
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if err := tmplTemplate.Execute(out, params); err != nil {
		return err
	}
	return nil
}

func populateContextData(params *Params) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	params.Package = filepath.Base(cwd)
	return nil
}

var (
	fileCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

func populateDefs(params *Params, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	defs, err := parseDefs(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	params.defs = defs
	_, fname := filepath.Split(file)
	params.Source = fname
	params.targetFileName = fileCleansePattern.ReplaceAllString(fname, "_")
	return nil
}

// renderDefs derives one key per definition and renders the obfuscated payloads as Go source fragments.
func renderDefs(params *Params) error {
	for _, def := range params.defs {
		entropy := obf.Entropy(params.seed, params.Source, def.line, def.col)
		key := uint32(entropy)
		gen := GenDef{
			VarName:    "obf" + unicap(def.name),
			MethodName: def.name,
			Key:        fmt.Sprintf("0x%08x", key),
		}
		if params.Exposed {
			gen.MethodName = unicap(def.name)
		}
		switch def.kind {
		case kindString:
			gen.Kind = "string"
			gen.Data = fmt.Sprintf("%#v", obf.ObfuscateString(key, def.text).Data())
			params.NeedsObf = true
		case kindWide:
			gen.Kind = "wide"
			gen.Data = fmt.Sprintf("%#v", obf.ObfuscateWide(key, def.text).Data())
			params.NeedsObf = true
		case kindRandom:
			gen.Kind = "random"
			gen.GoType = def.numType.GoType()
			gen.Value = def.numType.Literal(entropy)
		}
		params.Defs = append(params.Defs, gen)
	}
	return nil
}

// writeTable marshals all string definitions into one table artifact, screens it, and wires the loader into the template parameters.
func writeTable(params *Params) error {
	table := obf.NewTable()
	for _, def := range params.defs {
		entropy := obf.Entropy(params.seed, params.Source, def.line, def.col)
		key := uint32(entropy)
		switch def.kind {
		case kindString:
			table.AddString(def.name, obf.ObfuscateString(key, def.text))
		case kindWide:
			table.AddWide(def.name, obf.ObfuscateWide(key, def.text))
		}
	}
	if table.Len() == 0 {
		return fmt.Errorf("no string definitions to store in a table")
	}
	data, err := table.MarshalBinary()
	if err != nil {
		return err
	}

	tableKey := uint32(obf.Entropy(params.seed, params.Source, 0, 0))
	var screened bytes.Buffer
	if _, err := obf.NewWriter(&screened, tableKey).Write(data); err != nil {
		return err
	}

	params.TableFile = params.targetFileName + ".obf"
	params.TableKey = fmt.Sprintf("0x%08x", tableKey)
	params.TableFunc = "loadStringTable"
	if params.Exposed {
		params.TableFunc = "LoadStringTable"
	}
	params.NeedsObf = true
	return os.WriteFile(params.TableFile, screened.Bytes(), 0o644)
}

func unicap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(runes[0]))
	default:
		return string(append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...))
	}
}
