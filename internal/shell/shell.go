//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab -text
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// ShellType is the dialect an assignment statement is written in.
type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// VarName normalizes key into an environment variable name: upper case with
// '-' replaced by '_', e.g. "my-seq" -> "MY_SEQ".
func VarName(key string) (string, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(key), "-", "_"))
	if !validName.MatchString(name) {
		return "", fmt.Errorf("invalid variable name %q", key)
	}
	return name, nil
}

// Assignment returns a statement setting name to value in the given shell.
// persist asks for a variable that outlives the statement: "export" for sh,
// the user environment for PowerShell, setx for cmd.
func Assignment(t ShellType, name, value string, persist bool) (string, error) {
	switch t {
	case ShellTypeSh:
		if persist {
			return "export " + name + "=" + posixLiteral(value), nil
		}
		return name + "=" + posixLiteral(value), nil
	case ShellTypePowershell:
		if persist {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", psQuote(name), powershellLiteral(value)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", name, powershellLiteral(value)), nil
	case ShellTypeCmd:
		lit := cmdLiteral(value)
		if persist {
			return fmt.Sprintf("setx %s %s", name, lit), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", name, strings.Trim(lit, `"`)), nil
	}
	return "", fmt.Errorf("unsupported shell type: %v", t)
}

// splitLines splits s into text runs and line breaks, keeping each "\r\n",
// "\r" or "\n" as its own element: "a\r\nb\nc" -> ["a", "\r\n", "b", "\n", "c"].
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	start := 0
	for i := 0; i < len(s); {
		if s[i] != '\r' && s[i] != '\n' {
			i++
			continue
		}
		if start < i {
			parts = append(parts, s[start:i])
		}
		n := 1
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			n = 2
		}
		parts = append(parts, s[i:i+n])
		i += n
		start = i
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// posixLiteral single-quotes s, closing and reopening the quote around
// each embedded single quote.
func posixLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// powershellLiteral builds a single expression, concatenating quoted runs
// with "`n"-style line breaks.
func powershellLiteral(s string) string {
	var out []string
	for _, p := range splitLines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, psQuote(p))
		}
	}
	return strings.Join(out, " + ")
}

// cmdLiteral double-quotes each run and spells line breaks as \\n.
func cmdLiteral(s string) string {
	var b strings.Builder
	for _, p := range splitLines(s) {
		switch p {
		case "\n":
			b.WriteString(`"\\n"`)
		case "\r":
			b.WriteString(`"\\r"`)
		case "\r\n":
			b.WriteString(`"\\r\\n"`)
		default:
			b.WriteString(`"` + strings.ReplaceAll(p, `"`, `\"`) + `"`)
		}
	}
	return b.String()
}

// Resolve maps ShellTypeAuto to the dialect of the calling shell.
func Resolve(t ShellType) (ShellType, error) {
	if t != ShellTypeAuto {
		return t, nil
	}
	name, err := Detect()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	return FromName(name), nil
}

// FromName maps a shell executable name to its dialect. Unknown shells are
// treated as POSIX sh.
func FromName(name string) ShellType {
	switch strings.TrimSuffix(strings.ToLower(name), ".exe") {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	}
	return ShellTypeSh
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "dash", "tcsh", "csh", "sh",
	"powershell", "pwsh", "cmd",
}

// Detect returns the name of the shell that started this process by walking
// up the parent process chain. It falls back to $SHELL and %COMSPEC%, which
// only name the default shell.
func Detect() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return fallbackShell()
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		// login shells are reported as "-bash"
		base := strings.TrimPrefix(strings.TrimSuffix(strings.ToLower(name), ".exe"), "-")
		if slices.Contains(knownShells, base) {
			return strings.TrimPrefix(name, "-"), nil
		}

		parent, err := p.Parent()
		if err != nil {
			break
		}
		p = parent
	}
	return fallbackShell()
}

func fallbackShell() (string, error) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}
