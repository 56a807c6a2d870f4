package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/strobf/cmd/internal"
	"github.com/saylorsolutions/strobf/cmd/strgen/internal/tmpl"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		versionFlag bool
		exposedFlag bool
		tableFlag   bool
		packageName string
		seedPhrase  string
	)
	flags := flag.NewFlagSet("strgen", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&versionFlag, "version", "v", false, "Prints the version of this tool.")
	flags.BoolVarP(&exposedFlag, "exposed", "E", false, "Make the generated accessor functions exposed from the file. It's recommended to only expose from within an internal package.")
	flags.BoolVarP(&tableFlag, "table", "t", false, "Also emit a screened string table artifact next to the generated file, embedded with a loader function.")
	flags.StringVarP(&packageName, "package", "p", "", "Overrides the package name of the generated file, which defaults to the name of the current directory.")
	flags.StringVarP(&seedPhrase, "seed", "s", "", "Seed phrase for key derivation. Defaults to the STROBF_SEED environment variable, or a fixed default if that is unset.")
	flags.Usage = func() {
		fmt.Printf(`
strgen generates code that embeds obfuscated string constants, so the plain text never appears in the binary's static data. This pairs well with go:generate comments.
Each definition gets its own 32-bit key, derived deterministically from the seed and the definition's position in the input file, so repeated runs with the same seed are reproducible and never store the plain text.
The name of the generated Go file will be based on the name of the input file, replacing characters that match the regex pattern [^a-zA-Z0-9_] with "_".
For example, given a file called app.defs, a Go file will be created in the current directory called app_defs.go, containing one accessor and one equality function per definition.

USAGE:  strgen [FLAGS] FILE

ARGS:
    FILE is the definitions file, one definition per line:
        name = "a Go-quoted string"
        name = L"a Go-quoted string stored as UTF-16 code units"
        name = random TYPE    (TYPE is one of u8 u16 u32 u64 usize i8 i16 i32 i64 isize bool f32 f64)
    Lines starting with # and blank lines are skipped.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
The decode key for every constant is stored right next to its payload, so this hides strings from passive binary analysis only.
Changing the seed changes every generated key, so regenerate everything instead of mixing output from different seeds.
`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		internal.Echo("strgen version %s", version)
		return
	}

	switch flags.NArg() {
	case 0:
		flags.Usage()
		internal.Fatal("Missing required FILE argument")
	case 1:
		opts := []tmpl.ParamOpt{
			tmpl.ExposeFunctions(exposedFlag),
			tmpl.EmitTable(tableFlag),
			tmpl.PackageName(packageName),
		}
		if flags.Changed("seed") {
			opts = append(opts, tmpl.UseSeed(seedPhrase))
		}
		if err := tmpl.GenerateFile(flags.Arg(0), opts...); err != nil {
			internal.Fatal("Failed to generate file: %v", err)
		}
	default:
		flags.Usage()
		internal.Fatal("Expected exactly one FILE argument")
	}
}
