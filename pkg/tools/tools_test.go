package tools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		tag      string
		wantExe  string
		wantArgs []string
	}{
		{"java", "spotbugs", []string{"-textui", "Main.java"}},
		{"python", "bandit", []string{"-r", "Main.java"}},
		{"c", "cppcheck", []string{"--enable=all", "Main.java"}},
		{"c++", "cppcheck", []string{"--enable=all", "Main.java"}},
		{"javascript", "eslint", []string{"Main.java"}},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			cmd, err := Dispatch(tt.tag, "Main.java", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExe, cmd.Executable)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestDispatch_CAndCppShareCommand(t *testing.T) {
	c, err := Dispatch("c", "x.c", nil)
	require.NoError(t, err)
	cpp, err := Dispatch("c++", "x.c", nil)
	require.NoError(t, err)
	assert.Equal(t, c, cpp)
}

func TestDispatch_Unsupported(t *testing.T) {
	for _, tag := range []string{"rust", "", "JAVA", "golang"} {
		_, err := Dispatch(tag, "x", nil)
		require.Error(t, err)

		var ue *UnsupportedLanguageError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, tag, ue.Tag)
		assert.Equal(t, "Unsupported Language: "+tag, err.Error())
	}
}

func TestDispatch_PathIsSingleArgument(t *testing.T) {
	path := "evil; rm -rf / $(whoami) `id`.py"
	cmd, err := Dispatch("python", path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"-r", path}, cmd.Args)
}

func TestDispatch_Override(t *testing.T) {
	overrides := map[string]string{"spotbugs": "/opt/spotbugs/bin/spotbugs"}

	cmd, err := Dispatch("java", "A.java", overrides)
	require.NoError(t, err)
	assert.Equal(t, "/opt/spotbugs/bin/spotbugs", cmd.Executable)
	assert.Equal(t, "spotbugs", cmd.Tool)

	cmd, err = Dispatch("python", "a.py", overrides)
	require.NoError(t, err)
	assert.Equal(t, "bandit", cmd.Executable)
}

func TestSupportedIsCopy(t *testing.T) {
	s := Supported()
	s[0].Args[0] = "mutated"
	s[0].Executable = "mutated"

	cmd, err := Dispatch("java", "A.java", nil)
	require.NoError(t, err)
	assert.Equal(t, "spotbugs", cmd.Executable)
	assert.Equal(t, "-textui", cmd.Args[0])
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"c", "c++", "java", "javascript", "python"}, Languages())
}

func TestBanner(t *testing.T) {
	tool, err := Lookup("c++")
	require.NoError(t, err)
	assert.Equal(t, "Scanning C/C++ Code for any security vulnerabilities ... ", tool.Banner())
}

func TestIsKnownTool(t *testing.T) {
	assert.True(t, IsKnownTool("bandit"))
	assert.False(t, IsKnownTool("python"))
}

func TestCommandString(t *testing.T) {
	cmd, err := Dispatch("c", "x.c", nil)
	require.NoError(t, err)
	assert.Equal(t, "cppcheck --enable=all x.c", cmd.String())
}
