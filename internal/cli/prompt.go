package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/tacogips/cobnew/internal/template/model"
)

// kindLabels are the menu entries for each template kind, in menu order.
var kindLabels = map[model.Kind]string{
	model.KindExecutable: "Executable",
	model.KindModule:     "Module",
	model.KindEmpty:      "Empty",
}

// kindDescriptions are shown next to each menu entry.
var kindDescriptions = map[model.Kind]string{
	model.KindExecutable: "main program with a procedure division",
	model.KindModule:     "subprogram called with a linkage section",
	model.KindEmpty:      "blank file",
}

// promptKind asks for the template kind.
func promptKind(defaultKind model.Kind) (model.Kind, error) {
	kinds := model.Kinds()
	options := make([]string, 0, len(kinds))
	for _, k := range kinds {
		options = append(options, kindLabels[k])
	}

	var index int
	prompt := &survey.Select{
		Message: "Template:",
		Options: options,
		Default: kindLabels[defaultKind],
		Description: func(value string, i int) string {
			return kindDescriptions[kinds[i]]
		},
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, err
	}
	return kinds[index], nil
}

// promptName asks for the file name without extension.
func promptName() (string, error) {
	var result string
	prompt := &survey.Input{
		Message: "File name (without extension):",
		Help:    "The extension is chosen in the next step",
	}
	validator := func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return ValidateName(str)
	}
	if err := survey.AskOne(prompt, &result, survey.WithValidator(validator)); err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// promptDirectory asks for the target directory. Tab completes directory names.
func promptDirectory(defaultDir string) (string, error) {
	var result string
	prompt := &survey.Input{
		Message: "Directory:",
		Default: defaultDir,
		Help:    "The directory must already exist",
		Suggest: suggestDirectories,
	}
	validator := func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return ValidateDirectory(expandHome(str))
	}
	if err := survey.AskOne(prompt, &result, survey.WithValidator(validator)); err != nil {
		return "", err
	}
	return expandHome(result), nil
}

// promptExtension asks for the file extension.
func promptExtension(choices []string) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: "Extension:",
		Options: choices,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

// confirmOverwrite asks before replacing an existing file. Any prompt
// failure (including Ctrl-C) counts as "no".
func confirmOverwrite(path string) bool {
	answer := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("The file %s already exists. Do you want to overwrite it?", path),
		Default: false,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false
	}
	return answer
}

// suggestDirectories lists directories whose path starts with toComplete.
func suggestDirectories(toComplete string) []string {
	expanded := expandHome(toComplete)
	matches, err := filepath.Glob(expanded + "*")
	if err != nil {
		return nil
	}

	var dirs []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, m)
	}
	sort.Strings(dirs)
	return dirs
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
