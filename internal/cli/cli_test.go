package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/unitix/internal/domain"
	"github.com/aalvaropc/unitix/internal/infra/fsworkspace"
)

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init workspace: %v", err)
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"convert", "categories", "units", "formula", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"debug", "workspace"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected --%s persistent flag", flag)
		}
	}
}

func TestConvertCmd_Flags(t *testing.T) {
	cmd := convertCmd(&rootOptions{})
	if cmd.Name() != "convert" {
		t.Errorf("expected name convert, got %q", cmd.Name())
	}
	for _, flag := range []string{"category", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on convert command", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- convert ---

func TestConvert_Pretty(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "convert", "-w", ws, "-c", "Length", "1", "Meter", "Foot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1 Meter = 3.280839895 Foot\nFormula: divide the Meter value by 3.28084\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out, want)
	}
}

func TestConvert_UsesWorkspaceDefaultCategory(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "convert", "-w", ws, "1", "Kilometer", "Meter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "1 Kilometer = 1000 Meter\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConvert_NegativeValueAfterDashes(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "convert", "-w", ws, "-c", "Temperature", "--", "-40", "Celsius", "Fahrenheit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "-40 Celsius = -40 Fahrenheit") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Formula: (°C x 9/5) + 32 = °F") {
		t.Fatalf("missing formula:\n%s", out)
	}
}

func TestConvert_JSON(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "convert", "-w", ws, "--format", "json", "-c", "Data", "1", "Byte", "Bit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"category", "from", "to", "input", "status", "result", "formula"} {
		if _, ok := got[key]; !ok {
			t.Errorf("expected key %q in %s", key, out)
		}
	}
	if got["status"] != "ok" {
		t.Errorf("expected status ok, got %v", got["status"])
	}
	if got["result"] != 8.0 {
		t.Errorf("expected result 8, got %v", got["result"])
	}
	if got["formula"] != "divide the Byte value by 8" {
		t.Errorf("unexpected formula %v", got["formula"])
	}
}

func TestConvert_InvalidInput(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "convert", "-w", ws, "-c", "Length", "abc", "Meter", "Foot")
	if err == nil {
		t.Fatal("expected error for invalid input")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input kind, got %v", err)
	}
	if !strings.HasPrefix(out, "Invalid input\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConvert_InvalidInputJSONHasNullResult(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "convert", "-w", ws, "--format", "json", "-c", "Length", "abc", "Meter", "Foot")
	if err == nil {
		t.Fatal("expected error for invalid input")
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got["status"] != "invalid_input" {
		t.Errorf("expected invalid_input status, got %v", got["status"])
	}
	if got["result"] != nil {
		t.Errorf("expected null result, got %v", got["result"])
	}
}

func TestConvert_UnknownCategory(t *testing.T) {
	ws := newWorkspace(t)

	_, err := runCLI(t, "convert", "-w", ws, "-c", "Nope", "1", "Meter", "Foot")
	if !domain.IsKind(err, domain.KindUnknownCategory) {
		t.Fatalf("expected unknown_category, got %v", err)
	}
}

func TestConvert_UnsupportedFormat(t *testing.T) {
	_, err := runCLI(t, "convert", "--format", "xml", "1", "Meter", "Foot")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestConvert_WorkspaceTablesAreMerged(t *testing.T) {
	ws := newWorkspace(t)

	extra := `categories:
  - name: Distance
    units:
      - {name: Step, base: 1}
      - {name: Stride, base: 0.5}
`
	if err := os.WriteFile(filepath.Join(ws, "tables", "distance.yaml"), []byte(extra), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}

	out, err := runCLI(t, "convert", "-w", ws, "-c", "Distance", "1", "Step", "Stride")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "1 Step = 2 Stride\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConvert_BrokenTableFails(t *testing.T) {
	ws := newWorkspace(t)

	if err := os.WriteFile(filepath.Join(ws, "tables", "bad.yaml"), []byte("categories: [\n"), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}

	_, err := runCLI(t, "convert", "-w", ws, "1", "Meter", "Foot")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

// --- catalog commands ---

func TestCategoriesList(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "categories", "list", "-w", ws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 14 {
		t.Fatalf("expected 14 categories, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "- Length") {
		t.Errorf("expected Length first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[13], "- Currency") {
		t.Errorf("expected Currency last, got %q", lines[13])
	}
}

func TestUnitsList_CurrencyShowsNote(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "units", "list", "-w", ws, "-c", "Currency")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Category: Currency", "- USD  (linear)", "- INR  (linear)", domain.RateNote} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestUnitsList_FuelEconomyShowsInverse(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "units", "list", "-w", ws, "-c", "Fuel Economy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "- Liter per 100 kilometers  (inverse_linear)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, domain.RateNote) {
		t.Fatalf("did not expect the rate note:\n%s", out)
	}
}

func TestFormulaCmd(t *testing.T) {
	ws := newWorkspace(t)

	out, err := runCLI(t, "formula", "-w", ws, "-c", "Temperature", "Celsius", "Kelvin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "°C + 273.15 = K\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFormulaCmd_UnknownUnit(t *testing.T) {
	ws := newWorkspace(t)

	_, err := runCLI(t, "formula", "-w", ws, "-c", "Length", "Meter", "Parsec")
	if !domain.IsKind(err, domain.KindUnknownUnit) {
		t.Fatalf("expected unknown_unit, got %v", err)
	}
}

// --- init / version ---

func TestInitCmd_CreatesWorkspace(t *testing.T) {
	root := t.TempDir()

	out, err := runCLI(t, "init", "--path", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Workspace ready at") {
		t.Fatalf("unexpected output %q", out)
	}
	for _, rel := range []string{"unitix.yaml", filepath.Join("tables", "rates.yaml"), ".gitignore"} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "unitix dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- resolveWorkspace ---

func TestResolveWorkspace_ExplicitPath(t *testing.T) {
	ws := newWorkspace(t)

	got, cfg, err := resolveWorkspace(ws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ws {
		t.Errorf("expected %q, got %q", ws, got)
	}
	if cfg.Defaults.From != "Meter" {
		t.Errorf("expected template defaults, got %+v", cfg.Defaults)
	}
}

func TestResolveWorkspace_ExplicitPathWithoutConfig(t *testing.T) {
	_, _, err := resolveWorkspace(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory without unitix.yaml")
	}
	if !strings.Contains(err.Error(), "unitix init") {
		t.Errorf("expected init tip, got %v", err)
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected not_found kind, got %v", err)
	}
}

func TestAppCtx_ResolveCategory(t *testing.T) {
	app := &appCtx{cfg: domain.DefaultConfig()}
	if got := app.resolveCategory(""); got != "Length" {
		t.Errorf("expected default category, got %q", got)
	}
	if got := app.resolveCategory(" Data "); got != "Data" {
		t.Errorf("expected trimmed flag, got %q", got)
	}
}
