package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarName(t *testing.T) {
	name, err := VarName("my-seq")
	require.NoError(t, err)
	assert.Equal(t, "MY_SEQ", name)

	for _, bad := range []string{"", "1abc", "a b", "a$"} {
		_, err := VarName(bad)
		assert.Error(t, err, bad)
	}
}

func TestAssignment(t *testing.T) {
	cases := []struct {
		name    string
		shell   ShellType
		value   string
		persist bool
		exp     string
	}{
		{"sh", ShellTypeSh, "3 4 5", false, "SEQ='3 4 5'"},
		{"sh_export", ShellTypeSh, "3 4 5", true, "export SEQ='3 4 5'"},
		{"sh_quote", ShellTypeSh, "a'b", false, `SEQ='a'\''b'`},
		{"sh_empty", ShellTypeSh, "", false, "SEQ=''"},
		{"powershell", ShellTypePowershell, "3 4", false, "$Env:SEQ = '3 4'"},
		{"powershell_newline", ShellTypePowershell, "3\n4", false, "$Env:SEQ = '3' + \"`n\" + '4'"},
		{"powershell_persist", ShellTypePowershell, "it's", true, "[System.Environment]::SetEnvironmentVariable('SEQ','it''s','User')"},
		{"cmd", ShellTypeCmd, "3,4", false, `set "SEQ=3,4"`},
		{"cmd_persist", ShellTypeCmd, "3,4", true, `setx SEQ "3,4"`},
		{"cmd_newline", ShellTypeCmd, "3\r\n4", false, `set "SEQ=3""\\r\\n""4"`},
	}
	for _, tc := range cases {
		got, err := Assignment(tc.shell, "SEQ", tc.value, tc.persist)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.exp, got, tc.name)
	}

	_, err := Assignment(ShellTypeAuto, "SEQ", "1", false)
	assert.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "\r\n", "b", "\n", "c", "\r"}, splitLines("a\r\nb\nc\r"))
	assert.Equal(t, []string{""}, splitLines(""))
	assert.Equal(t, []string{"\n", "\n"}, splitLines("\n\n"))
}

func TestFromName(t *testing.T) {
	assert.Equal(t, ShellTypePowershell, FromName("pwsh.exe"))
	assert.Equal(t, ShellTypePowershell, FromName("PowerShell"))
	assert.Equal(t, ShellTypeCmd, FromName("cmd.exe"))
	assert.Equal(t, ShellTypeSh, FromName("zsh"))
}

func TestResolve_Explicit(t *testing.T) {
	got, err := Resolve(ShellTypeCmd)
	require.NoError(t, err)
	assert.Equal(t, ShellTypeCmd, got)
}

func TestFallbackShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/fish")
	name, err := fallbackShell()
	require.NoError(t, err)
	assert.Equal(t, "fish", name)
}
