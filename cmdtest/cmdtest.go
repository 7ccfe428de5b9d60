// Package cmdtest runs in-process golden tests described in YAML files.
//
// Each file holds a list of cases, either at the top level or under a "tests"
// key:
//
//	tests:
//	  - name: list
//	    cmd: progression
//	    args: [list, "1..10 step 4"]
//	    env: {PROGRESSION_FORMAT: json}
//	    expect:
//	      stdout: "[1,5,9]\n"
//	      exitCode: 0
//
// Args are a YAML sequence, so arguments containing spaces or quotes need no
// shell escaping.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// Expect is the recorded result of a case.
type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// Case is a single invocation.
type Case struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	Expect      Expect            `yaml:"expect"`
}

// file is one YAML file together with the node tree it was decoded from, so
// updated expectations can be written back without losing comments or order.
type file struct {
	name  string
	path  string
	cases []Case
	root  *yaml.Node
	nodes []*yaml.Node
}

// Suite is the set of cases read from a directory.
type Suite struct {
	files    []*file
	commands map[string]func() int
}

// Read loads every .yaml and .yml file under dir.
func Read(dir string) (*Suite, error) {
	s := &Suite{commands: map[string]func() int{}}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}
		f, err := readFile(path)
		if err != nil {
			return err
		}
		s.files = append(s.files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readFile(path string) (*file, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: empty yaml", path)
	}
	seq, err := casesNode(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f := &file{name: filepath.Base(path), path: path, root: &root, nodes: seq.Content}
	if err := seq.Decode(&f.cases); err != nil {
		return nil, fmt.Errorf("%s: decode cases: %w", path, err)
	}
	return f, nil
}

func casesNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		v := lookup(doc, "tests")
		if v == nil {
			return nil, fmt.Errorf("missing 'tests' key")
		}
		if v.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("tests must be a sequence")
		}
		return v, nil
	}
	return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
}

// Register binds the cmd name used in the YAML files to an entry point that
// reads os.Args and returns an exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes all cases as subtests named after the file and the case.
func (s *Suite) Run(t *testing.T) {
	s.RunWithUpdate(t, false)
}

// RunWithUpdate is Run that, when update is set, rewrites the files with the
// observed results instead of failing.
func (s *Suite) RunWithUpdate(t *testing.T, update bool) {
	for _, f := range s.files {
		t.Run(f.name, func(t *testing.T) {
			dirty := false
			for i := range f.cases {
				c := &f.cases[i]
				name := c.Name
				if name == "" {
					name = fmt.Sprintf("case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					got := s.invoke(t, c)
					if s.compare(t, f, i, got, update) {
						dirty = true
					}
				})
			}
			if dirty {
				if err := f.write(); err != nil {
					t.Fatalf("write %s: %v", f.path, err)
				}
				t.Logf("updated %s", f.path)
			}
		})
	}
}

// invoke runs c in process with os.Args, the environment, os.Stdout and
// os.Stderr replaced for the duration of the call.
func (s *Suite) invoke(t *testing.T, c *Case) Expect {
	run, ok := s.commands[c.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", c.Cmd)
	}
	for k, v := range c.Env {
		t.Setenv(k, v)
	}

	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	defer func() {
		os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	}()
	os.Args = append([]string{c.Cmd}, c.Args...)

	closeStdout := pipe(t, &os.Stdout)
	closeStderr := pipe(t, &os.Stderr)

	var res Expect
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				res.ExitCode = -1
			}
		}()
		res.ExitCode = run()
	}()
	res.Stdout = closeStdout()
	res.Stderr = closeStderr()
	return res
}

// pipe points *target at the write end of a new pipe. The returned function
// closes it and returns everything written.
func pipe(t *testing.T, target **os.File) func() string {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	*target = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()
	return func() string {
		_ = w.Close()
		return <-done
	}
}

// compare checks got against the recorded expectation of case idx. With
// update it records got instead and reports whether anything changed.
func (s *Suite) compare(t *testing.T, f *file, idx int, got Expect, update bool) bool {
	want := &f.cases[idx].Expect
	expectNode := ensure(f.nodes[idx], "expect")
	changed := false

	if got.ExitCode != want.ExitCode {
		if update {
			want.ExitCode = got.ExitCode
			setInt(ensure(expectNode, "exitCode"), got.ExitCode)
			changed = true
		} else {
			t.Errorf("exit code: want %d, got %d", want.ExitCode, got.ExitCode)
		}
	}
	for _, out := range []struct {
		key  string
		want *string
		got  string
	}{
		{"stdout", &want.Stdout, got.Stdout},
		{"stderr", &want.Stderr, got.Stderr},
	} {
		if out.got == *out.want {
			continue
		}
		if update {
			*out.want = out.got
			setString(ensure(expectNode, out.key), out.got)
			changed = true
			t.Logf("%s=%q", out.key, abbreviate(out.got))
		} else {
			t.Errorf("%s mismatch:\nwant:\n%s\ngot:\n%s", out.key, *out.want, out.got)
		}
	}
	return changed
}

func (f *file) write() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.root.Content[0]); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// ensure returns the value of key in m, adding an empty scalar if missing.
func ensure(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		m.Kind = yaml.MappingNode
		m.Content = nil
	}
	if v := lookup(m, key); v != nil {
		return v
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	m.Content = append(m.Content, k, v)
	return v
}

func setString(n *yaml.Node, val string) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!str"
	n.Style = 0
	// a lone line break would be emitted as an empty literal block
	if val == "\n" || val == "\r\n" {
		n.Style = yaml.DoubleQuotedStyle
	}
	n.Value = val
}

func setInt(n *yaml.Node, val int) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!int"
	n.Style = 0
	n.Value = strconv.Itoa(val)
}

func abbreviate(s string) string {
	s = strings.NewReplacer("\n", `\n`, "\t", `\t`).Replace(s)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}
