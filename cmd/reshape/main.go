package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/segmentio/encoding/json"
	"github.com/starkandwayne/goutils/ansi"
	"github.com/voxelbrain/goptions"
	"gopkg.in/yaml.v3"

	"github.com/graftlang/reshape/internal/cliconfig"
	"github.com/graftlang/reshape/internal/mcpserver"
	"github.com/graftlang/reshape/log"
	"github.com/graftlang/reshape/pkg/reshape"
	_ "github.com/graftlang/reshape/pkg/reshape/ops" // register operators
)

// Version is set at release time; "(development)" is the teacher's own
// placeholder convention for unreleased builds.
var Version = "(development)"

var getopts = func(o interface{}) {
	if err := goptions.Parse(o); err != nil {
		usage()
	}
}

var exit = func(code int) { os.Exit(code) }

var usage = func() {
	goptions.PrintHelp()
	exit(1)
}

type runOpts struct {
	Config string             `goptions:"-c, --config, obligatory, description='Pipeline config file (JSON or YAML)'"`
	Out    string             `goptions:"-o, --out, description='Write output here instead of stdout'"`
	Help   bool               `goptions:"--help, -h"`
	Files  goptions.Remainder `goptions:"description='Input document; omit or use - for stdin'"`
}

type validateOpts struct {
	Config string `goptions:"-c, --config, obligatory, description='Pipeline config file (JSON or YAML)'"`
	Help   bool   `goptions:"--help, -h"`
}

type diffOpts struct {
	Help  bool               `goptions:"--help, -h"`
	Files goptions.Remainder `goptions:"description='Two JSON documents: before and after'"`
}

type mcpOpts struct {
	Help bool `goptions:"--help, -h"`
}

func main() {
	var options struct {
		Debug    bool   `goptions:"-D, --debug, description='Enable debugging'"`
		Trace    bool   `goptions:"-T, --trace, description='Enable trace mode debugging (very verbose)'"`
		Version  bool   `goptions:"-v, --version, description='Display version information'"`
		Color    string `goptions:"--color, description='Control color output (on/off/auto, default: auto)'"`
		Action   goptions.Verbs
		Run      runOpts      `goptions:"run"`
		Validate validateOpts `goptions:"validate"`
		Diff     diffOpts     `goptions:"diff"`
		Mcp      mcpOpts      `goptions:"mcp"`
	}
	getopts(&options)

	settings := cliconfig.Load()

	if cliconfig.EnvBool("RESHAPE_DEBUG") || options.Debug {
		log.DebugOn = true
	}
	if cliconfig.EnvBool("RESHAPE_TRACE") || options.Trace {
		log.TraceOn = true
		log.DebugOn = true
	}

	if options.Version {
		fmt.Fprintf(os.Stdout, "%s - Version %s\n", os.Args[0], Version)
		exit(0)
		return
	}

	color := options.Color
	if color == "" {
		color = settings.Color
	}
	ansi.Color(resolveColor(color))

	runID := uuid.NewString()

	switch options.Action {
	case "run":
		if err := cmdRun(runID, options.Run); err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(2)
			return
		}
	case "validate":
		if err := cmdValidate(options.Validate); err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(1)
			return
		}
	case "diff":
		if err := cmdDiff(options.Diff); err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(2)
			return
		}
	case "mcp":
		if err := mcpserver.Run(); err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(2)
			return
		}
	default:
		usage()
	}
}

func resolveColor(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd())
	}
}

// readDocument loads a JSON or YAML file (by extension) into a reshape.Value.
// path == "" or "-" reads from stdin as JSON.
func readDocument(path string) (reshape.Value, error) {
	var raw []byte
	var err error
	if path == "" || path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return reshape.Null(), err
	}

	var decoded interface{}
	if isYAMLPath(path) {
		err = yaml.Unmarshal(raw, &decoded)
	} else {
		err = json.Unmarshal(raw, &decoded)
	}
	if err != nil {
		return reshape.Null(), fmt.Errorf("parsing %s: %w", displayPath(path), err)
	}
	return reshape.FromRaw(normalizeYAML(decoded)), nil
}

func isYAMLPath(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// normalizeYAML recursively converts the map[string]interface{}/
// []interface{} shapes that gopkg.in/yaml.v3 already produces (unlike
// yaml.v2, v3 decodes mappings as map[string]interface{} directly) into
// the shapes reshape.FromRaw expects; numbers decoded as int are widened
// to float64 so FromRaw's switch recognizes them uniformly.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	case int:
		return float64(val)
	default:
		return val
	}
}

func writeDocument(path string, v reshape.Value) error {
	encoded, err := json.MarshalIndent(v.Raw(), "", "  ")
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')
	if path == "" || path == "-" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(path, encoded, 0o644)
}

func cmdRun(runID string, opts runOpts) error {
	config, err := readDocument(opts.Config)
	if err != nil {
		return err
	}
	inputPath := ""
	if len(opts.Files) > 0 {
		inputPath = opts.Files[0]
	}
	input, err := readDocument(inputPath)
	if err != nil {
		return err
	}

	ev := &reshape.Evaluator{RunID: runID}
	result := ev.Execute(input, config)
	return writeDocument(opts.Out, result)
}

func cmdValidate(opts validateOpts) error {
	config, err := readDocument(opts.Config)
	if err != nil {
		return err
	}
	ok, message := reshape.Validate(config)
	if !ok {
		return fmt.Errorf("invalid pipeline: %s", message)
	}
	fmt.Fprintln(os.Stdout, "ok")
	return nil
}

func cmdDiff(opts diffOpts) error {
	if len(opts.Files) != 2 {
		return fmt.Errorf("diff requires exactly two files")
	}
	before, err := readDocument(opts.Files[0])
	if err != nil {
		return err
	}
	after, err := readDocument(opts.Files[1])
	if err != nil {
		return err
	}
	beforeJSON, err := json.Marshal(before.Raw())
	if err != nil {
		return err
	}
	afterJSON, err := json.Marshal(after.Raw())
	if err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch(beforeJSON, afterJSON)
	if err != nil {
		return fmt.Errorf("computing diff: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(patch))
	return nil
}
