package tools

import (
	"fmt"
	"sort"
	"strings"
)

// Tool describes how one external analyzer is invoked. The file path is
// appended after Args.
type Tool struct {
	Name       string   `json:"name" yaml:"name"`
	Label      string   `json:"label" yaml:"label"`
	Languages  []string `json:"languages" yaml:"languages"`
	Executable string   `json:"executable" yaml:"executable"`
	Args       []string `json:"args" yaml:"args"`
}

// Command is a discrete argument vector. It is never handed to a shell.
type Command struct {
	Tool       string
	Executable string
	Args       []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Executable}, c.Args...), " ")
}

type UnsupportedLanguageError struct {
	Tag string
}

func (e *UnsupportedLanguageError) Error() string {
	return "Unsupported Language: " + e.Tag
}

var registry = []Tool{
	{
		Name:       "spotbugs",
		Label:      "Java",
		Languages:  []string{"java"},
		Executable: "spotbugs",
		Args:       []string{"-textui"},
	},
	{
		Name:       "bandit",
		Label:      "Python",
		Languages:  []string{"python"},
		Executable: "bandit",
		Args:       []string{"-r"},
	},
	{
		Name:       "cppcheck",
		Label:      "C/C++",
		Languages:  []string{"c", "c++"},
		Executable: "cppcheck",
		Args:       []string{"--enable=all"},
	},
	{
		Name:       "eslint",
		Label:      "JavaScript",
		Languages:  []string{"javascript"},
		Executable: "eslint",
	},
}

// Supported returns a copy of the tool table in its fixed order.
func Supported() []Tool {
	out := make([]Tool, len(registry))
	for i, t := range registry {
		t.Languages = append([]string(nil), t.Languages...)
		t.Args = append([]string(nil), t.Args...)
		out[i] = t
	}
	return out
}

// Languages returns every accepted language tag, sorted.
func Languages() []string {
	var langs []string
	for _, t := range registry {
		langs = append(langs, t.Languages...)
	}
	sort.Strings(langs)
	return langs
}

// IsKnownTool reports whether name is the name of a registered tool.
func IsKnownTool(name string) bool {
	for _, t := range registry {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Lookup finds the tool for a normalized language tag.
func Lookup(tag string) (Tool, error) {
	for _, t := range registry {
		for _, lang := range t.Languages {
			if lang == tag {
				return t, nil
			}
		}
	}
	return Tool{}, &UnsupportedLanguageError{Tag: tag}
}

// Banner is the line printed before the analyzer runs.
func (t Tool) Banner() string {
	return fmt.Sprintf("Scanning %s Code for any security vulnerabilities ... ", t.Label)
}

// Command builds the argument vector for filePath. A non-empty override
// replaces the executable.
func (t Tool) Command(filePath, override string) Command {
	exe := t.Executable
	if override != "" {
		exe = override
	}
	args := make([]string, 0, len(t.Args)+1)
	args = append(args, t.Args...)
	args = append(args, filePath)
	return Command{Tool: t.Name, Executable: exe, Args: args}
}

// Dispatch maps tag to the command that analyzes filePath. overrides maps
// tool names to alternative executables and may be nil.
func Dispatch(tag, filePath string, overrides map[string]string) (Command, error) {
	t, err := Lookup(tag)
	if err != nil {
		return Command{}, err
	}
	return t.Command(filePath, overrides[t.Name]), nil
}
